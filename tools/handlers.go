package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/aiopnet/mcp-nautobot/internal/nautobot"
	"github.com/aiopnet/mcp-nautobot/metrics"
	"github.com/aiopnet/mcp-nautobot/tracing"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	client *nautobot.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *nautobot.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		client: client,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "GetIPAddresses":
		register(h, server, tool, spec, h.client.GetIPAddressesMCP)
	case "GetPrefixes":
		register(h, server, tool, spec, h.client.GetPrefixesMCP)
	case "GetIPAddressByID":
		register(h, server, tool, spec, h.client.GetIPAddressByIDMCP)
	case "SearchIPAddresses":
		register(h, server, tool, spec, h.client.SearchIPAddressesMCP)
	case "TestConnection":
		register(h, server, tool, spec, h.client.TestConnectionMCP)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		tracing.AddToolAttributes(span, spec.Name, spec.Category)
		span.SetAttributes(attribute.Bool("mcp.tool.readonly", spec.ReadOnly))

		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, toolError(spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// toolError wraps a client error with remediation guidance for the caller.
func toolError(toolName string, err error) error {
	if hint := nautobot.Remediation(err); hint != "" {
		return fmt.Errorf("%s failed: %w. %s", toolName, err, hint)
	}
	return fmt.Errorf("%s failed: %w", toolName, err)
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case nautobot.GetIPAddressesArgs:
		if a.Prefix != "" {
			attrs = append(attrs, "prefix", a.Prefix)
		}
		if a.Address != "" {
			attrs = append(attrs, "address", a.Address)
		}
	case nautobot.GetPrefixesArgs:
		if a.Prefix != "" {
			attrs = append(attrs, "prefix", a.Prefix)
		}
		if a.Site != "" {
			attrs = append(attrs, "site", a.Site)
		}
	case nautobot.GetIPAddressByIDArgs:
		attrs = append(attrs, "ip_id", a.IPID)
	case nautobot.SearchIPAddressesArgs:
		attrs = append(attrs, "query", a.Query)
	case nautobot.TestConnectionArgs:
		// No args to log
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case nautobot.GetIPAddressesResult:
		attrs = append(attrs, "results_count", r.Count)
	case nautobot.GetPrefixesResult:
		attrs = append(attrs, "results_count", r.Count)
	case nautobot.GetIPAddressByIDResult:
		attrs = append(attrs, "found", r.Found)
	case nautobot.SearchIPAddressesResult:
		attrs = append(attrs, "results_count", r.Count)
	case nautobot.TestConnectionResult:
		attrs = append(attrs, "connected", r.Connected)
	}

	h.logger.Info("Tool executed", attrs...)
}
