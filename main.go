// Nautobot MCP Server - a Model Context Protocol server exposing read-only
// Nautobot network inventory (IPAM) data to LLM clients.
package main

import (
	"fmt"
	"os"

	"github.com/aiopnet/mcp-nautobot/internal/cmd"
)

func main() {
	command := cmd.NewMCPServer(cmd.IOStreams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	})

	if err := command.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
