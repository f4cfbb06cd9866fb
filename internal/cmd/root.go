// Package cmd wires configuration, logging, tracing, and the MCP server
// into the mcp-nautobot command line interface.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/aiopnet/mcp-nautobot/internal/nautobot"
	"github.com/aiopnet/mcp-nautobot/tools"
	"github.com/aiopnet/mcp-nautobot/tracing"
	"github.com/aiopnet/mcp-nautobot/version"
)

const serverInstructions = `Nautobot MCP Server provides read-only access to Nautobot network inventory (IPAM) data.

Available tools:
- get_ip_addresses: List IP addresses with filters (prefix, status, role, tenant, vrf)
- get_prefixes: List network prefixes with filters (status, site, role, tenant, vrf)
- get_ip_address_by_id: Fetch a single IP address record by its Nautobot ID
- search_ip_addresses: Free-text search across addresses, DNS names, and descriptions
- test_connection: Verify Nautobot API connectivity

Configure via environment variables:
- NAUTOBOT_URL: Nautobot base URL (e.g. https://nautobot.example.com)
- NAUTOBOT_TOKEN: Nautobot API token
- NAUTOBOT_VERIFY_SSL: Verify TLS certificates (default true)
- NAUTOBOT_TIMEOUT: Request timeout in seconds (default 30)
- NAUTOBOT_RATE_LIMIT: Max requests per minute (default 100)`

// IOStreams represents standard input, output, and error streams
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

type serverFlags struct {
	url        string
	token      string
	configFile string
	logLevel   string
	timeout    time.Duration
	rateLimit  int
	insecure   bool
}

// NewMCPServer creates the root cobra command for the Nautobot MCP server.
func NewMCPServer(streams IOStreams) *cobra.Command {
	fl := &serverFlags{
		logLevel:  "info",
		timeout:   nautobot.DefaultTimeout,
		rateLimit: nautobot.DefaultRateLimit,
	}

	cmd := &cobra.Command{
		Use:   "mcp-nautobot",
		Short: "Nautobot MCP Server - Model Context Protocol server for Nautobot network inventory",
		Long: `Nautobot MCP Server is a Model Context Protocol (MCP) server that provides
read-only access to Nautobot IPAM data: IP addresses, network prefixes,
item lookup, and free-text search.

The server speaks MCP over stdio. Connection settings come from
environment variables, an optional YAML config file, and flags, in
increasing order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, fl, streams)
		},
	}

	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	cmd.Flags().StringVar(&fl.url, "url", "", "Nautobot base URL (overrides NAUTOBOT_URL)")
	cmd.Flags().StringVar(&fl.token, "token", "", "Nautobot API token (overrides NAUTOBOT_TOKEN)")
	cmd.Flags().StringVar(&fl.configFile, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&fl.logLevel, "log-level", fl.logLevel, "Log level (debug, info, warn, error)")
	cmd.Flags().DurationVar(&fl.timeout, "timeout", fl.timeout, "API request timeout")
	cmd.Flags().IntVar(&fl.rateLimit, "rate-limit", fl.rateLimit, "Max API requests per minute")
	cmd.Flags().BoolVar(&fl.insecure, "insecure", false, "Skip TLS certificate verification")

	cmd.AddCommand(newVersionCommand(streams))

	return cmd
}

// runServer loads configuration, builds the client, and serves MCP on stdio.
func runServer(cmd *cobra.Command, fl *serverFlags, streams IOStreams) error {
	// stdout carries the MCP protocol, so all logging goes to stderr
	logger := slog.New(slog.NewTextHandler(streams.ErrOut, &slog.HandlerOptions{
		Level: parseLogLevel(fl.logLevel),
	}))

	cfg, err := loadConfig(cmd, fl)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	ctx := context.Background()

	shutdown, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		logger.Warn("Tracing setup failed, continuing without traces", "error", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Warn("Tracing shutdown failed", "error", err)
			}
		}()
	}

	client := nautobot.NewClient(cfg, logger)
	defer client.Close()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    version.BinaryName,
		Version: version.Version,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions,
	})

	registry := tools.NewHandlerRegistry(client, logger)
	registry.RegisterAll(server)
	registry.RegisterResources(server)
	registry.RegisterPrompts(server)

	logger.Info("Starting Nautobot MCP Server",
		"name", version.BinaryName,
		"version", version.Version,
		"nautobot_url", cfg.BaseURL(),
		"rate_limit", cfg.RateLimit,
	)

	return server.Run(ctx, &mcp.StdioTransport{})
}

// loadConfig merges environment, optional config file, and flag overrides.
func loadConfig(cmd *cobra.Command, fl *serverFlags) (*nautobot.Config, error) {
	var cfg *nautobot.Config
	var err error

	if fl.configFile != "" {
		cfg, err = nautobot.LoadConfigFile(fl.configFile)
	} else {
		cfg, err = nautobot.LoadConfig()
	}
	if err != nil {
		return nil, err
	}

	// Flags beat both the environment and the file
	if cmd.Flags().Changed("url") {
		cfg.URL = fl.url
	}
	if cmd.Flags().Changed("token") {
		cfg.Token = fl.token
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = fl.timeout
	}
	if cmd.Flags().Changed("rate-limit") {
		cfg.RateLimit = fl.rateLimit
	}
	if cmd.Flags().Changed("insecure") {
		cfg.VerifySSL = !fl.insecure
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newVersionCommand creates the version command.
func newVersionCommand(streams IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(streams.Out, "%s\n", version.GetVersionInfo())
		},
	}

	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	return cmd
}
