package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aiopnet/mcp-nautobot/internal/nautobot"
)

// Resource URIs exposed by the server.
const (
	ResourceStatus      = "nautobot://status"
	ResourceIPAddresses = "nautobot://ip-addresses"
	ResourcePrefixes    = "nautobot://prefixes"
)

// resourceSampleLimit bounds how many records a browsable resource returns.
const resourceSampleLimit = 10

// RegisterResources registers the browsable Nautobot resources with the
// MCP server. Resources give clients a read-only snapshot without having
// to issue a tool call.
func (h *HandlerRegistry) RegisterResources(server *mcp.Server) {
	server.AddResource(&mcp.Resource{
		URI:         ResourceStatus,
		Name:        "Nautobot Connection Status",
		Description: "Current status of the Nautobot API connection",
		MIMEType:    "application/json",
	}, h.readStatus)

	server.AddResource(&mcp.Resource{
		URI:         ResourceIPAddresses,
		Name:        "IP Addresses",
		Description: "Nautobot IP address data with filtering capabilities",
		MIMEType:    "application/json",
	}, h.readIPAddresses)

	server.AddResource(&mcp.Resource{
		URI:         ResourcePrefixes,
		Name:        "Network Prefixes",
		Description: "Nautobot network prefix data with filtering capabilities",
		MIMEType:    "application/json",
	}, h.readPrefixes)

	h.logger.Info("Registered resources", "count", 3)
}

func (h *HandlerRegistry) readStatus(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	connected, err := h.client.TestConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("status check failed: %w", err)
	}
	return jsonResource(req.Params.URI, map[string]any{
		"connected":   connected,
		"base_url":    h.client.BaseURL(),
		"api_version": "2.0",
	})
}

func (h *HandlerRegistry) readIPAddresses(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	addrs, err := h.client.GetIPAddresses(ctx, nautobot.IPAddressFilters{}, resourceSampleLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to read IP addresses: %w", err)
	}
	return jsonResource(req.Params.URI, map[string]any{
		"count":   len(addrs),
		"results": addrs,
	})
}

func (h *HandlerRegistry) readPrefixes(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	prefixes, err := h.client.GetPrefixes(ctx, nautobot.PrefixFilters{}, resourceSampleLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to read prefixes: %w", err)
	}
	return jsonResource(req.Params.URI, map[string]any{
		"count":   len(prefixes),
		"results": prefixes,
	})
}

func jsonResource(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
