package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aiopnet/mcp-nautobot/internal/nautobot"
)

// Prompt names exposed by the server.
const (
	PromptIPSummaryReport    = "ip-summary-report"
	PromptNetworkUtilization = "network-utilization"
)

// promptRecordCap bounds how many records are inlined into a prompt body.
const promptRecordCap = 20

// RegisterPrompts registers the analysis prompts with the MCP server.
// Each prompt fetches current data from Nautobot and embeds it in a
// user message for the model to analyze.
func (h *HandlerRegistry) RegisterPrompts(server *mcp.Server) {
	server.AddPrompt(&mcp.Prompt{
		Name:        PromptIPSummaryReport,
		Description: "Generate a comprehensive IP address summary report",
		Arguments: []*mcp.PromptArgument{
			{Name: "network", Description: "Network prefix to analyze (e.g., 10.0.0.0/8)"},
			{Name: "status", Description: "Filter by IP status (active, reserved, deprecated)"},
			{Name: "include_details", Description: "Include detailed information (true/false)"},
		},
	}, h.promptIPSummaryReport)

	server.AddPrompt(&mcp.Prompt{
		Name:        PromptNetworkUtilization,
		Description: "Analyze network prefix utilization and capacity",
		Arguments: []*mcp.PromptArgument{
			{Name: "prefix", Description: "Network prefix to analyze", Required: true},
			{Name: "depth", Description: "Analysis depth (summary/detailed)"},
		},
	}, h.promptNetworkUtilization)

	h.logger.Info("Registered prompts", "count", 2)
}

func (h *HandlerRegistry) promptIPSummaryReport(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	network := req.Params.Arguments["network"]
	status := req.Params.Arguments["status"]
	includeDetails := strings.EqualFold(req.Params.Arguments["include_details"], "true")

	addrs, err := h.client.GetIPAddresses(ctx, nautobot.IPAddressFilters{
		Prefix: network,
		Status: status,
	}, nautobot.DefaultListLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to gather report data: %w", err)
	}

	var b strings.Builder
	b.WriteString("IP Address Summary Report for Nautobot\n")
	fmt.Fprintf(&b, "Generated from %s\n\n", h.client.BaseURL())

	if network != "" {
		fmt.Fprintf(&b, "Network: %s\n", network)
	}
	if status != "" {
		fmt.Fprintf(&b, "Status Filter: %s\n", status)
	}
	fmt.Fprintf(&b, "Total IP Addresses Found: %d\n\nIP Address Data:\n", len(addrs))

	for i, ip := range addrs {
		if i == promptRecordCap {
			fmt.Fprintf(&b, "... and %d more\n", len(addrs)-promptRecordCap)
			break
		}
		if includeDetails {
			fmt.Fprintf(&b, "- %s | Status: %s | Description: %s\n",
				ip.Address, statusLabel(ip.Status), orNA(ip.Description))
		} else {
			fmt.Fprintf(&b, "- %s\n", ip.Address)
		}
	}

	b.WriteString("\nPlease analyze this IP address data and provide insights about:\n")
	b.WriteString("1. Address utilization patterns\n")
	b.WriteString("2. Status distribution\n")
	b.WriteString("3. Any potential issues or recommendations\n")

	scope := network
	if scope == "" {
		scope = "all networks"
	}
	return promptResult("IP Summary Report for "+scope, b.String()), nil
}

func (h *HandlerRegistry) promptNetworkUtilization(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	prefix := req.Params.Arguments["prefix"]
	if prefix == "" {
		return nil, errors.New("network prefix is required for utilization analysis")
	}
	depth := req.Params.Arguments["depth"]
	if depth == "" {
		depth = "summary"
	}

	addrs, err := h.client.GetIPAddresses(ctx, nautobot.IPAddressFilters{Prefix: prefix}, nautobot.MaxListLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to gather utilization data: %w", err)
	}
	prefixes, err := h.client.GetPrefixes(ctx, nautobot.PrefixFilters{Prefix: prefix}, nautobot.DefaultListLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to gather utilization data: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Network Utilization Analysis for %s\n", prefix)
	fmt.Fprintf(&b, "Generated from %s\n\n", h.client.BaseURL())
	fmt.Fprintf(&b, "Analysis Depth: %s\n\n", depth)
	fmt.Fprintf(&b, "IP Addresses in Network: %d\n", len(addrs))
	fmt.Fprintf(&b, "Sub-prefixes Found: %d\n\n", len(prefixes))

	if depth == "detailed" {
		statusCounts := make(map[string]int)
		var order []string
		for _, ip := range addrs {
			label := statusLabel(ip.Status)
			if _, seen := statusCounts[label]; !seen {
				order = append(order, label)
			}
			statusCounts[label]++
		}

		b.WriteString("Status Distribution:\n")
		for _, label := range order {
			fmt.Fprintf(&b, "- %s: %d\n", label, statusCounts[label])
		}
		b.WriteString("\n")

		if len(prefixes) > 0 {
			b.WriteString("Sub-prefixes:\n")
			for i, p := range prefixes {
				if i == 10 {
					fmt.Fprintf(&b, "... and %d more\n", len(prefixes)-10)
					break
				}
				fmt.Fprintf(&b, "- %s | Status: %s\n", p.Prefix, statusLabel(p.Status))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("Please analyze this network utilization data and provide:\n")
	b.WriteString("1. Capacity assessment\n")
	b.WriteString("2. Utilization efficiency\n")
	b.WriteString("3. Growth recommendations\n")
	b.WriteString("4. Any potential optimization opportunities\n")

	return promptResult("Network Utilization Analysis for "+prefix, b.String()), nil
}

func promptResult(description, text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Description: description,
		Messages: []*mcp.PromptMessage{{
			Role:    "user",
			Content: &mcp.TextContent{Text: text},
		}},
	}
}

func statusLabel(s nautobot.StatusRef) string {
	if s.Label == "" {
		return "Unknown"
	}
	return s.Label
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
