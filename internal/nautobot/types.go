package nautobot

import (
	"encoding/json"
	"fmt"
)

// StatusRef is a value/label pair used by Nautobot for status, role, tenant,
// VRF, site and VLAN references.
type StatusRef struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// IPAddress represents a Nautobot IP address record.
type IPAddress struct {
	ID           string         `json:"id"`
	URL          string         `json:"url,omitempty"`
	Address      string         `json:"address"` // CIDR form, e.g. 192.168.1.100/24
	Status       StatusRef      `json:"status"`
	Role         *StatusRef     `json:"role,omitempty"`
	Tenant       *StatusRef     `json:"tenant,omitempty"`
	VRF          *StatusRef     `json:"vrf,omitempty"`
	DNSName      string         `json:"dns_name,omitempty"`
	Description  string         `json:"description,omitempty"`
	Comments     string         `json:"comments,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
	CustomFields map[string]any `json:"custom_fields,omitempty"`
	Created      string         `json:"created,omitempty"`
	LastUpdated  string         `json:"last_updated,omitempty"`
}

// Validate checks the mandatory fields of an IP address record.
func (ip *IPAddress) Validate() error {
	if ip.ID == "" {
		return fmt.Errorf("ip address record missing id")
	}
	if ip.Address == "" {
		return fmt.Errorf("ip address record %s missing address", ip.ID)
	}
	return nil
}

// Prefix represents a Nautobot network prefix record.
type Prefix struct {
	ID           string         `json:"id"`
	URL          string         `json:"url,omitempty"`
	Prefix       string         `json:"prefix"` // CIDR form, e.g. 192.168.1.0/24
	Status       StatusRef      `json:"status"`
	Site         *StatusRef     `json:"site,omitempty"`
	Role         *StatusRef     `json:"role,omitempty"`
	Tenant       *StatusRef     `json:"tenant,omitempty"`
	VRF          *StatusRef     `json:"vrf,omitempty"`
	VLAN         *StatusRef     `json:"vlan,omitempty"`
	IsPool       bool           `json:"is_pool,omitempty"`
	Description  string         `json:"description,omitempty"`
	Comments     string         `json:"comments,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
	CustomFields map[string]any `json:"custom_fields,omitempty"`
	Created      string         `json:"created,omitempty"`
	LastUpdated  string         `json:"last_updated,omitempty"`
}

// Validate checks the mandatory fields of a prefix record.
func (p *Prefix) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("prefix record missing id")
	}
	if p.Prefix == "" {
		return fmt.Errorf("prefix record %s missing prefix", p.ID)
	}
	return nil
}

// listEnvelope is Nautobot's paginated list response shape. Results stay raw
// so each element can be decoded and validated independently.
type listEnvelope struct {
	Count    int               `json:"count"`
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
	Results  []json.RawMessage `json:"results"`
}

// decodeIPAddresses parses list results tolerantly: entries that fail to
// decode or that miss a mandatory field are dropped, never escalated to a
// batch-level error. Returns the valid records in provider order and the
// number of entries dropped.
func decodeIPAddresses(results []json.RawMessage) ([]IPAddress, int) {
	addrs := make([]IPAddress, 0, len(results))
	dropped := 0
	for _, raw := range results {
		var ip IPAddress
		if err := json.Unmarshal(raw, &ip); err != nil {
			dropped++
			continue
		}
		if err := ip.Validate(); err != nil {
			dropped++
			continue
		}
		addrs = append(addrs, ip)
	}
	return addrs, dropped
}

// decodePrefixes parses list results with the same tolerant policy as
// decodeIPAddresses.
func decodePrefixes(results []json.RawMessage) ([]Prefix, int) {
	prefixes := make([]Prefix, 0, len(results))
	dropped := 0
	for _, raw := range results {
		var p Prefix
		if err := json.Unmarshal(raw, &p); err != nil {
			dropped++
			continue
		}
		if err := p.Validate(); err != nil {
			dropped++
			continue
		}
		prefixes = append(prefixes, p)
	}
	return prefixes, dropped
}
