package tools

import (
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/aiopnet/mcp-nautobot/internal/nautobot"
)

func testClient(t *testing.T) (*nautobot.Client, *slog.Logger) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	cfg := &nautobot.Config{
		URL:       "https://nautobot.example.com",
		Token:     "test-token",
		VerifySSL: true,
		Timeout:   5 * time.Second,
		RateLimit: 100,
	}
	client := nautobot.NewClient(cfg, logger)
	t.Cleanup(client.Close)
	return client, logger
}

func TestNewHandlerRegistry(t *testing.T) {
	client, logger := testClient(t)

	registry := NewHandlerRegistry(client, logger)

	if registry == nil {
		t.Fatal("Expected non-nil registry")
	}
	if registry.client != client {
		t.Error("Registry should hold the client reference")
	}
	if registry.logger != logger {
		t.Error("Registry should hold the logger reference")
	}
}

func TestBuildTool(t *testing.T) {
	client, logger := testClient(t)
	registry := NewHandlerRegistry(client, logger)

	tests := []struct {
		name     string
		spec     ToolSpec
		wantName string
		wantDesc string
		wantRO   bool
		wantIdem bool
		wantOpen bool
	}{
		{
			name: "read-only open-world tool",
			spec: ToolSpec{
				Name:        "get_ip_addresses",
				Title:       "Get IP Addresses",
				Description: "List IP addresses with filters",
				Method:      "GetIPAddresses",
				Category:    "ipam",
				ReadOnly:    true,
				Idempotent:  true,
				OpenWorld:   true,
			},
			wantName: "get_ip_addresses",
			wantDesc: "List IP addresses with filters",
			wantRO:   true,
			wantIdem: true,
			wantOpen: true,
		},
		{
			name: "closed-world tool",
			spec: ToolSpec{
				Name:        "some_tool",
				Title:       "Some Tool",
				Description: "Does something",
				Method:      "Something",
			},
			wantName: "some_tool",
			wantDesc: "Does something",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := registry.buildTool(tt.spec)

			if tool.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", tool.Name, tt.wantName)
			}
			if tool.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", tool.Description, tt.wantDesc)
			}
			if tool.Annotations == nil {
				t.Fatal("Expected annotations")
			}
			if tool.Annotations.ReadOnlyHint != tt.wantRO {
				t.Errorf("ReadOnlyHint = %v, want %v", tool.Annotations.ReadOnlyHint, tt.wantRO)
			}
			if tool.Annotations.IdempotentHint != tt.wantIdem {
				t.Errorf("IdempotentHint = %v, want %v", tool.Annotations.IdempotentHint, tt.wantIdem)
			}
			if tt.wantOpen && (tool.Annotations.OpenWorldHint == nil || !*tool.Annotations.OpenWorldHint) {
				t.Error("Expected OpenWorldHint to be true")
			}
			if !tt.wantOpen && tool.Annotations.OpenWorldHint != nil {
				t.Error("Expected OpenWorldHint to be unset")
			}
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	client, logger := testClient(t)
	registry := NewHandlerRegistry(client, logger)

	// recoverPanic must swallow the panic without panicking itself
	func() {
		defer registry.recoverPanic("test_tool")
		panic("test panic")
	}()
}

func TestLogExecution(t *testing.T) {
	client, logger := testClient(t)
	registry := NewHandlerRegistry(client, logger)
	spec := ToolSpec{Name: "test_tool", Category: "ipam"}

	registry.logExecution(spec,
		nautobot.GetIPAddressesArgs{Prefix: "10.0.0.0/24"},
		nautobot.GetIPAddressesResult{Count: 2})

	registry.logExecution(spec,
		nautobot.GetIPAddressByIDArgs{IPID: "abc-123"},
		nautobot.GetIPAddressByIDResult{Found: true})

	registry.logExecution(spec,
		nautobot.SearchIPAddressesArgs{Query: "web01"},
		nautobot.SearchIPAddressesResult{Query: "web01", Count: 1})

	registry.logExecution(spec,
		nautobot.TestConnectionArgs{},
		nautobot.TestConnectionResult{Connected: true})
}

func TestToolError_IncludesRemediation(t *testing.T) {
	err := toolError("get_ip_addresses", &nautobot.AuthError{StatusCode: 401})

	if !strings.Contains(err.Error(), "get_ip_addresses failed") {
		t.Errorf("error should name the tool: %v", err)
	}
	if !strings.Contains(err.Error(), "Please check your Nautobot API token and permissions.") {
		t.Errorf("error should carry remediation guidance: %v", err)
	}
	if !nautobot.IsAuth(err) {
		t.Error("wrapped error should keep its kind")
	}
}

func TestAllToolsNotEmpty(t *testing.T) {
	if len(AllTools) == 0 {
		t.Error("AllTools should not be empty")
	}

	seen := make(map[string]bool)
	for i, spec := range AllTools {
		if spec.Name == "" {
			t.Errorf("Tool %d has empty Name", i)
		}
		if spec.Method == "" {
			t.Errorf("Tool %s has empty Method", spec.Name)
		}
		if spec.Description == "" {
			t.Errorf("Tool %s has empty Description", spec.Name)
		}
		if spec.Category == "" {
			t.Errorf("Tool %s has empty Category", spec.Name)
		}
		if !spec.ReadOnly {
			t.Errorf("Tool %s must be read-only", spec.Name)
		}
		if seen[spec.Name] {
			t.Errorf("Duplicate tool name %s", spec.Name)
		}
		seen[spec.Name] = true
	}
}

func TestToolSpecMethods(t *testing.T) {
	knownMethods := map[string]bool{
		"GetIPAddresses":    true,
		"GetPrefixes":       true,
		"GetIPAddressByID":  true,
		"SearchIPAddresses": true,
		"TestConnection":    true,
	}

	for _, spec := range AllTools {
		if !knownMethods[spec.Method] {
			t.Errorf("Tool %s references unknown method %s", spec.Name, spec.Method)
		}
	}
}
