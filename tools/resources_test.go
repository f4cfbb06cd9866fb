package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestReadStatusResource(t *testing.T) {
	registry := testRegistryWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/status/" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"django-version": "4.2"}`))
	})

	result, err := registry.readStatus(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: ResourceStatus},
	})
	if err != nil {
		t.Fatalf("readStatus failed: %v", err)
	}

	if len(result.Contents) != 1 {
		t.Fatalf("got %d contents, want 1", len(result.Contents))
	}
	content := result.Contents[0]
	if content.URI != ResourceStatus {
		t.Errorf("URI = %q", content.URI)
	}
	if content.MIMEType != "application/json" {
		t.Errorf("MIMEType = %q", content.MIMEType)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(content.Text), &payload); err != nil {
		t.Fatalf("resource body is not JSON: %v", err)
	}
	if payload["connected"] != true {
		t.Errorf("connected = %v", payload["connected"])
	}
}

func TestReadIPAddressesResource(t *testing.T) {
	registry := testRegistryWithServer(t, ipListHandler(t))

	result, err := registry.readIPAddresses(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: ResourceIPAddresses},
	})
	if err != nil {
		t.Fatalf("readIPAddresses failed: %v", err)
	}

	text := result.Contents[0].Text
	if !strings.Contains(text, `"count": 2`) {
		t.Errorf("resource body missing count:\n%s", text)
	}
	if !strings.Contains(text, "10.0.1.1/24") {
		t.Errorf("resource body missing records:\n%s", text)
	}
}

func TestReadPrefixesResource(t *testing.T) {
	registry := testRegistryWithServer(t, ipListHandler(t))

	result, err := registry.readPrefixes(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: ResourcePrefixes},
	})
	if err != nil {
		t.Fatalf("readPrefixes failed: %v", err)
	}

	text := result.Contents[0].Text
	if !strings.Contains(text, "10.0.1.0/24") {
		t.Errorf("resource body missing prefix:\n%s", text)
	}
}

func TestReadIPAddressesResource_Unreachable(t *testing.T) {
	registry := testRegistryWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := registry.readIPAddresses(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: ResourceIPAddresses},
	})
	if err == nil {
		t.Error("expected error when Nautobot returns a server error")
	}
}
