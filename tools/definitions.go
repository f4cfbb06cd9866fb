package tools

// AllTools contains all tool specifications for the Nautobot MCP server.
// Every tool is read-only: the server never writes to Nautobot.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// IPAM TOOLS
	// ==========================================================================
	{
		Name:     "get_ip_addresses",
		Method:   "GetIPAddresses",
		Title:    "Get IP Addresses",
		Category: "ipam",
		Description: `List IP addresses from Nautobot with optional filters.

USE WHEN: User asks "list IPs in 10.0.0.0/24", "show active IP addresses", "which IPs belong to tenant X".

NOT FOR: Free-text lookup by DNS name or description (use search_ip_addresses). Not for fetching one record by its Nautobot ID (use get_ip_address_by_id).

PARAMETERS:
- address: Exact IP address to match (optional)
- prefix: Containing network prefix, e.g. 10.0.0.0/24 (optional)
- status: active, reserved, deprecated (optional)
- role, tenant, vrf: Additional filters (optional)
- limit: Max results (default 100, max 1000)
- offset: Pagination offset (default 0)

RETURNS: Matching IP address records with status, DNS name, and assignment details. Malformed records are skipped.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_prefixes",
		Method:   "GetPrefixes",
		Title:    "Get Prefixes",
		Category: "ipam",
		Description: `List network prefixes (subnets) from Nautobot with optional filters.

USE WHEN: User asks "list subnets", "show prefixes at site X", "what networks exist in VRF Y".

NOT FOR: Individual IP addresses (use get_ip_addresses).

PARAMETERS:
- prefix: Specific prefix to match, e.g. 10.0.0.0/16 (optional)
- status, site, role, tenant, vrf: Filters (optional)
- limit: Max results (default 100, max 1000)
- offset: Pagination offset (default 0)

RETURNS: Matching prefix records with status, site, VLAN, and utilization flags.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_ip_address_by_id",
		Method:   "GetIPAddressByID",
		Title:    "Get IP Address by ID",
		Category: "ipam",
		Description: `Fetch a single IP address record by its Nautobot UUID.

USE WHEN: User has a specific record ID from a previous listing and wants full details.

NOT FOR: Looking up by the IP address itself (use get_ip_addresses with the address filter).

PARAMETERS:
- ip_id: The Nautobot ID of the IP address (required)

RETURNS: The full record, or found=false when no record has that ID.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "search_ip_addresses",
		Method:   "SearchIPAddresses",
		Title:    "Search IP Addresses",
		Category: "ipam",
		Description: `Free-text search across IP addresses.

USE WHEN: User asks "find the IP for server web01", "search for anything mentioning VPN", or gives a partial address like "10.0.1".

NOT FOR: Structured filtering by prefix or status (use get_ip_addresses).

PARAMETERS:
- query: Search text; matches address, DNS name, and description (required)
- limit: Max results (default 50, max 500)

RETURNS: Matching IP address records ranked by Nautobot's search.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// DIAGNOSTIC TOOLS
	// ==========================================================================
	{
		Name:     "test_connection",
		Method:   "TestConnection",
		Title:    "Test Nautobot Connection",
		Category: "diagnostics",
		Description: `Verify that the Nautobot API is reachable with the configured credentials.

USE WHEN: User asks "is Nautobot up", "check the connection", or other tools are failing unexpectedly.

PARAMETERS: None

RETURNS: connected=true/false and the configured Nautobot URL.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
