package nautobot

import (
	"context"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP
// integration: argument validation, limit clamping, and result shaping.

// GetIPAddressesMCP is the MCP wrapper for GetIPAddresses.
func (c *Client) GetIPAddressesMCP(ctx context.Context, args GetIPAddressesArgs) (GetIPAddressesResult, error) {
	if err := ValidateOffset(args.Offset); err != nil {
		return GetIPAddressesResult{}, err
	}
	limit := NormalizeLimit(args.Limit, DefaultListLimit, MaxListLimit)

	filters := IPAddressFilters{
		Address: args.Address,
		Prefix:  args.Prefix,
		Status:  args.Status,
		Role:    args.Role,
		Tenant:  args.Tenant,
		VRF:     args.VRF,
	}

	addrs, err := c.GetIPAddresses(ctx, filters, limit, args.Offset)
	if err != nil {
		return GetIPAddressesResult{}, err
	}

	return GetIPAddressesResult{
		Count:          len(addrs),
		FiltersApplied: appliedFilters(filters.values()),
		Results:        addrs,
	}, nil
}

// GetPrefixesMCP is the MCP wrapper for GetPrefixes.
func (c *Client) GetPrefixesMCP(ctx context.Context, args GetPrefixesArgs) (GetPrefixesResult, error) {
	if err := ValidateOffset(args.Offset); err != nil {
		return GetPrefixesResult{}, err
	}
	limit := NormalizeLimit(args.Limit, DefaultListLimit, MaxListLimit)

	filters := PrefixFilters{
		Prefix: args.Prefix,
		Status: args.Status,
		Site:   args.Site,
		Role:   args.Role,
		Tenant: args.Tenant,
		VRF:    args.VRF,
	}

	prefixes, err := c.GetPrefixes(ctx, filters, limit, args.Offset)
	if err != nil {
		return GetPrefixesResult{}, err
	}

	return GetPrefixesResult{
		Count:          len(prefixes),
		FiltersApplied: appliedFilters(filters.values()),
		Results:        prefixes,
	}, nil
}

// GetIPAddressByIDMCP is the MCP wrapper for GetIPAddressByID. A missing
// record is reported in the result, not as an error.
func (c *Client) GetIPAddressByIDMCP(ctx context.Context, args GetIPAddressByIDArgs) (GetIPAddressByIDResult, error) {
	if err := ValidateID(args.IPID); err != nil {
		return GetIPAddressByIDResult{}, err
	}

	ip, err := c.GetIPAddressByID(ctx, args.IPID)
	if err != nil {
		return GetIPAddressByIDResult{}, err
	}
	if ip == nil {
		return GetIPAddressByIDResult{
			Found:   false,
			Message: "IP address with ID '" + args.IPID + "' not found in Nautobot.",
		}, nil
	}
	return GetIPAddressByIDResult{Found: true, IPAddress: ip}, nil
}

// SearchIPAddressesMCP is the MCP wrapper for SearchIPAddresses.
func (c *Client) SearchIPAddressesMCP(ctx context.Context, args SearchIPAddressesArgs) (SearchIPAddressesResult, error) {
	if err := ValidateSearchQuery(args.Query); err != nil {
		return SearchIPAddressesResult{}, err
	}
	limit := NormalizeLimit(args.Limit, DefaultSearchLimit, MaxSearchLimit)

	addrs, err := c.SearchIPAddresses(ctx, args.Query, limit)
	if err != nil {
		return SearchIPAddressesResult{}, err
	}

	return SearchIPAddressesResult{
		Query:   args.Query,
		Count:   len(addrs),
		Results: addrs,
	}, nil
}

// TestConnectionMCP is the MCP wrapper for TestConnection.
func (c *Client) TestConnectionMCP(ctx context.Context, args TestConnectionArgs) (TestConnectionResult, error) {
	connected, err := c.TestConnection(ctx)
	if err != nil {
		return TestConnectionResult{}, err
	}
	return TestConnectionResult{
		Connected:   connected,
		NautobotURL: c.BaseURL(),
	}, nil
}

// Remediation returns user-facing guidance for a client error, keyed off
// the error kind.
func Remediation(err error) string {
	switch {
	case IsAuth(err):
		return "Please check your Nautobot API token and permissions."
	case IsConnection(err):
		return "Please check your Nautobot URL and network connectivity."
	case IsAPI(err):
		return "Please check your request parameters and try again."
	default:
		return ""
	}
}

// appliedFilters converts the dispatched query parameters into a flat map
// for echoing back to the caller.
func appliedFilters(params map[string][]string) map[string]string {
	if len(params) == 0 {
		return nil
	}
	applied := make(map[string]string, len(params))
	for key, values := range params {
		if len(values) > 0 {
			applied[key] = values[0]
		}
	}
	return applied
}
