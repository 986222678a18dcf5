// ABOUTME: MCP tool implementations for blog operations.
// ABOUTME: Registers list_posts, search_posts, and save_post tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"blogdeck/internal/api"
	"blogdeck/internal/models"
)

const excerptLength = 200

func (s *Server) registerBlogTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "list_posts",
		Description: "Retrieve a page of the latest blog posts.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"page": {"type": "number", "description": "Page number to retrieve (default 1)"}
			}
		}`),
	}, s.handleListPosts)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "search_posts",
		Description: "Search blog posts by text or tag.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "Search text or tag name.", "minLength": 1},
				"page": {"type": "number", "description": "Page number to retrieve (default 1)"}
			},
			"required": ["query"]
		}`),
	}, s.handleSearchPosts)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "save_post",
		Description: "Save a blog post to the local reading list.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Post title.", "minLength": 1},
				"url": {"type": "string", "description": "Post URL, used for de-duplication."},
				"content": {"type": "string", "description": "Post body or excerpt."},
				"author": {"type": "string", "description": "Post author."},
				"pub_date": {"type": "string", "description": "Publication date."},
				"tags": {"type": "string", "description": "Comma-separated tags."},
				"category": {"type": "string", "description": "Post category."}
			},
			"required": ["title"]
		}`),
	}, s.handleSavePost)
}

func (s *Server) handleListPosts(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Page int `json:"page"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	if args.Page <= 0 {
		args.Page = 1
	}

	result, err := s.source.ListPosts(ctx, args.Page)
	if err != nil {
		return toolError("failed to list posts: %v", err), nil
	}

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{
			Text: formatPage(result, fmt.Sprintf("Latest posts, page %d", args.Page)),
		}},
	}, nil
}

func (s *Server) handleSearchPosts(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Query string `json:"query"`
		Page  int    `json:"page"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	args.Query = strings.TrimSpace(args.Query)
	if args.Query == "" {
		return toolError("query is required"), nil
	}
	if args.Page <= 0 {
		args.Page = 1
	}

	result, err := s.source.SearchPosts(ctx, args.Query, args.Page)
	if err != nil {
		return toolError("failed to search posts: %v", err), nil
	}

	header := fmt.Sprintf("Search results for %q, page %d (%d total)",
		args.Query, args.Page, result.TotalResults)
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{
			Text: formatPage(result, header),
		}},
	}, nil
}

func (s *Server) handleSavePost(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Title    string `json:"title"`
		URL      string `json:"url"`
		Content  string `json:"content"`
		Author   string `json:"author"`
		PubDate  string `json:"pub_date"`
		Tags     string `json:"tags"`
		Category string `json:"category"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	if args.Title == "" {
		return toolError("title is required"), nil
	}
	if s.saved == nil {
		return toolError("saving is not configured"), nil
	}

	post := models.Post{
		Title:    args.Title,
		URL:      args.URL,
		Content:  args.Content,
		Author:   args.Author,
		PubDate:  args.PubDate,
		Tags:     args.Tags,
		Category: args.Category,
	}

	saved, err := s.saved.Save(post)
	if err != nil {
		return toolError("failed to save post: %v", err), nil
	}

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{
			Text: fmt.Sprintf("Post saved (ID: %s)", saved.ID.String()[:8]),
		}},
	}, nil
}

// formatPage renders a page of posts as readable text for the calling agent.
func formatPage(result *api.PageResult, header string) string {
	if len(result.Posts) == 0 {
		return header + "\n\nNo posts found."
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")
	for i := range result.Posts {
		post := &result.Posts[i]
		sb.WriteString(fmt.Sprintf("---\n%s", post.DisplayTitle()))
		if post.Author != "" {
			sb.WriteString(fmt.Sprintf(" — %s", post.DisplayAuthor()))
		}
		if post.PubDate != "" {
			sb.WriteString(fmt.Sprintf(" [%s]", post.PubDate))
		}
		if tags := post.TagList(); len(tags) > 0 {
			sb.WriteString(fmt.Sprintf(" #%s", strings.Join(tags, " #")))
		}
		sb.WriteString("\n")
		if excerpt := post.Excerpt(excerptLength); excerpt != "" {
			sb.WriteString(excerpt)
			sb.WriteString("\n")
		}
		if post.URL != "" {
			sb.WriteString(post.URL)
			sb.WriteString("\n")
		}
	}
	if result.HasNext {
		sb.WriteString(fmt.Sprintf("---\nMore posts on page %d.\n", result.Page+1))
	}
	return sb.String()
}

// toolError creates an error result for MCP tool responses.
func toolError(format string, args ...interface{}) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}
