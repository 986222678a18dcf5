// ABOUTME: MCP server initialization and configuration for blogdeck.
// ABOUTME: Sets up server with blog listing, search, and save tools.
package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"blogdeck/internal/api"
	"blogdeck/internal/storage"
)

// PostSource fetches pages of posts from the remote blog.
type PostSource interface {
	ListPosts(ctx context.Context, page int) (*api.PageResult, error)
	SearchPosts(ctx context.Context, query string, page int) (*api.PageResult, error)
}

// Server wraps the MCP server with the blog client and saved-post store.
type Server struct {
	mcp    *gomcp.Server
	source PostSource
	saved  *storage.SavedStore
}

// ServerOption configures optional Server dependencies.
type ServerOption func(*Server)

// WithSavedStore enables the save_post tool backed by the given store.
func WithSavedStore(store *storage.SavedStore) ServerOption {
	return func(s *Server) {
		s.saved = store
	}
}

// NewServer creates an MCP server exposing the blog to AI agents.
func NewServer(source PostSource, opts ...ServerOption) (*Server, error) {
	if source == nil {
		return nil, fmt.Errorf("post source is required")
	}

	mcpServer := gomcp.NewServer(
		&gomcp.Implementation{
			Name:    "blogdeck",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcp:    mcpServer,
		source: source,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.registerBlogTools()

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &gomcp.StdioTransport{})
}
