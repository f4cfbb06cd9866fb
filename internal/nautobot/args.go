package nautobot

// GetIPAddressesArgs contains parameters for listing IP addresses
type GetIPAddressesArgs struct {
	Address string `json:"address,omitempty" jsonschema_description:"Specific IP address to search for"`
	Prefix  string `json:"prefix,omitempty" jsonschema_description:"Network prefix to filter by (e.g. 10.0.0.0/24)"`
	Status  string `json:"status,omitempty" jsonschema_description:"Status to filter by (e.g. active, reserved, deprecated)"`
	Role    string `json:"role,omitempty" jsonschema_description:"Role to filter by (e.g. loopback, secondary, anycast)"`
	Tenant  string `json:"tenant,omitempty" jsonschema_description:"Tenant to filter by"`
	VRF     string `json:"vrf,omitempty" jsonschema_description:"VRF to filter by"`
	Limit   int    `json:"limit,omitempty" jsonschema_description:"Maximum number of results to return (default 100, max 1000)"`
	Offset  int    `json:"offset,omitempty" jsonschema_description:"Number of results to skip for pagination (default 0)"`
}

// GetIPAddressesResult is the result of listing IP addresses
type GetIPAddressesResult struct {
	Count          int               `json:"count"`
	FiltersApplied map[string]string `json:"filters_applied,omitempty"`
	Results        []IPAddress       `json:"results"`
}

// GetPrefixesArgs contains parameters for listing prefixes
type GetPrefixesArgs struct {
	Prefix string `json:"prefix,omitempty" jsonschema_description:"Specific network prefix to search for"`
	Status string `json:"status,omitempty" jsonschema_description:"Status to filter by"`
	Site   string `json:"site,omitempty" jsonschema_description:"Site to filter by"`
	Role   string `json:"role,omitempty" jsonschema_description:"Role to filter by"`
	Tenant string `json:"tenant,omitempty" jsonschema_description:"Tenant to filter by"`
	VRF    string `json:"vrf,omitempty" jsonschema_description:"VRF to filter by"`
	Limit  int    `json:"limit,omitempty" jsonschema_description:"Maximum number of results to return (default 100, max 1000)"`
	Offset int    `json:"offset,omitempty" jsonschema_description:"Number of results to skip for pagination (default 0)"`
}

// GetPrefixesResult is the result of listing prefixes
type GetPrefixesResult struct {
	Count          int               `json:"count"`
	FiltersApplied map[string]string `json:"filters_applied,omitempty"`
	Results        []Prefix          `json:"results"`
}

// GetIPAddressByIDArgs contains parameters for an item lookup
type GetIPAddressByIDArgs struct {
	IPID string `json:"ip_id" jsonschema:"required" jsonschema_description:"The Nautobot ID of the IP address"`
}

// GetIPAddressByIDResult is the result of an item lookup
type GetIPAddressByIDResult struct {
	Found     bool       `json:"found"`
	IPAddress *IPAddress `json:"ip_address,omitempty"`
	Message   string     `json:"message,omitempty"`
}

// SearchIPAddressesArgs contains parameters for free-text search
type SearchIPAddressesArgs struct {
	Query string `json:"query" jsonschema:"required" jsonschema_description:"Search query (can match IP address, DNS name, description)"`
	Limit int    `json:"limit,omitempty" jsonschema_description:"Maximum number of results to return (default 50, max 500)"`
}

// SearchIPAddressesResult is the result of free-text search
type SearchIPAddressesResult struct {
	Query   string      `json:"query"`
	Count   int         `json:"count"`
	Results []IPAddress `json:"results"`
}

// TestConnectionArgs contains parameters for the connectivity probe
type TestConnectionArgs struct{}

// TestConnectionResult is the result of the connectivity probe
type TestConnectionResult struct {
	Connected   bool   `json:"connected"`
	NautobotURL string `json:"nautobot_url"`
}
