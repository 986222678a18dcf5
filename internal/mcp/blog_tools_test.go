// ABOUTME: Tests for blog MCP tool handlers.
// ABOUTME: Covers list_posts, search_posts, and save_post tools.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"blogdeck/internal/api"
	"blogdeck/internal/models"
	"blogdeck/internal/storage"
)

type stubSource struct {
	listResult   *api.PageResult
	searchResult *api.PageResult
	err          error
	lastQuery    string
	lastPage     int
}

func (s *stubSource) ListPosts(_ context.Context, page int) (*api.PageResult, error) {
	s.lastPage = page
	if s.err != nil {
		return nil, s.err
	}
	return s.listResult, nil
}

func (s *stubSource) SearchPosts(_ context.Context, query string, page int) (*api.PageResult, error) {
	s.lastQuery = query
	s.lastPage = page
	if s.err != nil {
		return nil, s.err
	}
	return s.searchResult, nil
}

func makeBlogServer(t *testing.T, source *stubSource) *Server {
	t.Helper()
	saved, err := storage.NewSavedStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewSavedStore error: %v", err)
	}
	server, err := NewServer(source, WithSavedStore(saved))
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	return server
}

func callTool(t *testing.T, s *Server, name string, args interface{}) *gomcp.CallToolResult {
	t.Helper()
	argsJSON, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("failed to marshal args: %v", err)
	}

	req := &gomcp.CallToolRequest{
		Params: &gomcp.CallToolParamsRaw{
			Name:      name,
			Arguments: argsJSON,
		},
	}

	ctx := context.Background()

	var result *gomcp.CallToolResult
	switch name {
	case "list_posts":
		result, err = s.handleListPosts(ctx, req)
	case "search_posts":
		result, err = s.handleSearchPosts(ctx, req)
	case "save_post":
		result, err = s.handleSavePost(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return result
}

func getTextContent(result *gomcp.CallToolResult) string {
	var sb strings.Builder
	for _, c := range result.Content {
		if tc, ok := c.(*gomcp.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String()
}

func samplePage(hasNext bool) *api.PageResult {
	return &api.PageResult{
		Posts: []models.Post{
			{Title: "Borrow Checking", Author: "jo", PubDate: "Jan 5, 2026", Tags: "rust, memory", URL: "/posts/1/"},
			{Title: "Goroutine Leaks", Author: "sam", URL: "/posts/2/"},
		},
		HasNext:      hasNext,
		TotalResults: 2,
		Page:         1,
	}
}

func TestListPostsFormatsPage(t *testing.T) {
	source := &stubSource{listResult: samplePage(true)}
	s := makeBlogServer(t, source)

	result := callTool(t, s, "list_posts", map[string]int{"page": 2})

	if result.IsError {
		t.Fatalf("expected success, got error: %s", getTextContent(result))
	}
	if source.lastPage != 2 {
		t.Errorf("expected page 2 requested, got %d", source.lastPage)
	}
	text := getTextContent(result)
	if !strings.Contains(text, "Borrow Checking") || !strings.Contains(text, "#rust") {
		t.Errorf("expected post details in response, got: %s", text)
	}
	if !strings.Contains(text, "More posts on page") {
		t.Errorf("expected next-page hint, got: %s", text)
	}
}

func TestListPostsDefaultsPageOne(t *testing.T) {
	source := &stubSource{listResult: samplePage(false)}
	s := makeBlogServer(t, source)

	callTool(t, s, "list_posts", map[string]int{})

	if source.lastPage != 1 {
		t.Errorf("expected default page 1, got %d", source.lastPage)
	}
}

func TestListPostsFetchError(t *testing.T) {
	source := &stubSource{err: errors.New("boom")}
	s := makeBlogServer(t, source)

	result := callTool(t, s, "list_posts", map[string]int{"page": 1})

	if !result.IsError {
		t.Error("expected error result when fetch fails")
	}
}

func TestSearchPostsRequiresQuery(t *testing.T) {
	source := &stubSource{searchResult: samplePage(false)}
	s := makeBlogServer(t, source)

	result := callTool(t, s, "search_posts", map[string]string{"query": "   "})

	if !result.IsError {
		t.Error("expected error when query is blank")
	}
	if source.lastQuery != "" {
		t.Errorf("blank query still hit the server with %q", source.lastQuery)
	}
}

func TestSearchPostsIncludesTotal(t *testing.T) {
	source := &stubSource{searchResult: samplePage(false)}
	s := makeBlogServer(t, source)

	result := callTool(t, s, "search_posts", map[string]interface{}{
		"query": "rust",
	})

	if result.IsError {
		t.Fatalf("expected success, got error: %s", getTextContent(result))
	}
	if source.lastQuery != "rust" {
		t.Errorf("expected query forwarded, got %q", source.lastQuery)
	}
	text := getTextContent(result)
	if !strings.Contains(text, "(2 total)") {
		t.Errorf("expected total count in header, got: %s", text)
	}
}

func TestSavePostRoundTrip(t *testing.T) {
	source := &stubSource{}
	s := makeBlogServer(t, source)

	result := callTool(t, s, "save_post", map[string]string{
		"title": "Borrow Checking",
		"url":   "/posts/1/",
		"tags":  "rust, memory",
	})

	if result.IsError {
		t.Fatalf("expected success, got error: %s", getTextContent(result))
	}

	saved, err := s.saved.List("")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(saved) != 1 || saved[0].Post.Title != "Borrow Checking" {
		t.Errorf("expected saved post, got %v", saved)
	}
}

func TestSavePostRequiresTitle(t *testing.T) {
	source := &stubSource{}
	s := makeBlogServer(t, source)

	result := callTool(t, s, "save_post", map[string]string{"url": "/posts/1/"})

	if !result.IsError {
		t.Error("expected error when title is missing")
	}
}

func TestSavePostWithoutStore(t *testing.T) {
	source := &stubSource{}
	s, err := NewServer(source)
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}

	result := callTool(t, s, "save_post", map[string]string{"title": "x"})

	if !result.IsError {
		t.Error("expected error when save store is absent")
	}
}

func TestEmptyPageMessage(t *testing.T) {
	source := &stubSource{listResult: &api.PageResult{Page: 1}}
	s := makeBlogServer(t, source)

	result := callTool(t, s, "list_posts", map[string]int{})
	text := getTextContent(result)
	if !strings.Contains(text, "No posts found") {
		t.Errorf("expected empty-page message, got: %s", text)
	}
}
