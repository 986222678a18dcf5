// ABOUTME: Tests for MCP server creation and validation.
// ABOUTME: Verifies the server requires a post source.
package mcp

import (
	"testing"

	"blogdeck/internal/storage"
)

func TestNewServerRequiresSource(t *testing.T) {
	_, err := NewServer(nil)
	if err == nil {
		t.Error("expected error when post source is nil")
	}
}

func TestNewServerSuccess(t *testing.T) {
	server, err := NewServer(&stubSource{})
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	if server == nil {
		t.Error("expected non-nil server")
	}
	if server.saved != nil {
		t.Error("expected no saved store by default")
	}
}

func TestNewServerWithSavedStore(t *testing.T) {
	saved, err := storage.NewSavedStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewSavedStore error: %v", err)
	}

	server, err := NewServer(&stubSource{}, WithSavedStore(saved))
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	if server.saved == nil {
		t.Error("expected saved store to be set")
	}
}
