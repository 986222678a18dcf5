// ABOUTME: HTTP client for the blog listing and search JSON endpoints.
// ABOUTME: Fetches one page at a time and maps payloads to domain models.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"blogdeck/internal/diag"
	"blogdeck/internal/models"
)

// Client fetches paginated blog posts from a remote server. Both the
// listing and search endpoints answer the same envelope; the server only
// returns JSON when the XMLHttpRequest header is present.
type Client struct {
	baseURL    string
	searchPath string
	client     *http.Client
}

// NewClient creates a client for the blog endpoints rooted at baseURL.
func NewClient(baseURL, searchPath string) *Client {
	baseURL = strings.TrimRight(baseURL, "/") + "/"
	searchPath = strings.Trim(searchPath, "/") + "/"
	return &Client{
		baseURL:    baseURL,
		searchPath: searchPath,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

// postPayload maps a single post from the server response.
type postPayload struct {
	Title          string `json:"title"`
	Content        string `json:"content"`
	Author         string `json:"author"`
	PubDate        string `json:"pub_date"`
	URL            string `json:"url"`
	Tags           string `json:"tags"`
	Category       string `json:"category"`
	Thumbnail      string `json:"thumbnail"`
	ThumbnailSmall string `json:"thumbnail_small"`
	Image          string `json:"image"`
}

// pageEnvelope is the top-level response from both endpoints.
type pageEnvelope struct {
	BlogPosts    json.RawMessage `json:"blog_posts"`
	HasNext      bool            `json:"has_next"`
	TotalResults int             `json:"total_results"`
}

// PageResult is one decoded page of posts.
type PageResult struct {
	Posts        []models.Post
	HasNext      bool
	TotalResults int
	Page         int
}

// ListPosts fetches one page of the default listing stream.
func (c *Client) ListPosts(ctx context.Context, page int) (*PageResult, error) {
	return c.fetchPage(ctx, c.baseURL, page, "")
}

// ResolveURL resolves a possibly-relative post URL against the base URL.
// Unparseable references come back unchanged.
func (c *Client) ResolveURL(ref string) string {
	if ref == "" {
		return ""
	}
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return ref
	}
	resolved, err := base.Parse(ref)
	if err != nil {
		return ref
	}
	return resolved.String()
}

// SearchPosts fetches one page of search results. An empty query hits the
// search endpoint unfiltered, matching the server contract.
func (c *Client) SearchPosts(ctx context.Context, query string, page int) (*PageResult, error) {
	return c.fetchPage(ctx, c.baseURL+c.searchPath, page, query)
}

func (c *Client) fetchPage(ctx context.Context, endpoint string, page int, query string) (*PageResult, error) {
	if page < 1 {
		page = 1
	}

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	q := req.URL.Query()
	q.Set("page", fmt.Sprintf("%d", page))
	if query != "" {
		q.Set("search", query)
	}
	req.URL.RawQuery = q.Encode()

	requestID := uuid.New().String()
	logger := diag.Logger("api")
	logger.Debug().Str("request_id", requestID).Str("url", req.URL.String()).Msg("fetching page")

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error().Str("request_id", requestID).Err(err).Msg("request failed")
		return nil, fmt.Errorf("blog API request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		logger.Error().Str("request_id", requestID).Int("status", resp.StatusCode).Msg("non-2xx response")
		return nil, fmt.Errorf("blog API returned %d: %s", resp.StatusCode, string(respBody))
	}

	var envelope pageEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// blog_posts must be a JSON array; anything else is a malformed payload.
	var payloads []postPayload
	if len(envelope.BlogPosts) == 0 {
		return nil, fmt.Errorf("malformed response: missing blog_posts")
	}
	if err := json.Unmarshal(envelope.BlogPosts, &payloads); err != nil {
		return nil, fmt.Errorf("malformed response: blog_posts is not an array: %w", err)
	}

	posts := make([]models.Post, 0, len(payloads))
	for _, pp := range payloads {
		posts = append(posts, models.Post{
			Title:          pp.Title,
			Content:        pp.Content,
			Author:         pp.Author,
			PubDate:        pp.PubDate,
			URL:            pp.URL,
			Tags:           pp.Tags,
			Category:       pp.Category,
			Thumbnail:      pp.Thumbnail,
			ThumbnailSmall: pp.ThumbnailSmall,
			Image:          pp.Image,
		})
	}

	logger.Debug().
		Str("request_id", requestID).
		Int("page", page).
		Int("count", len(posts)).
		Bool("has_next", envelope.HasNext).
		Msg("page fetched")

	return &PageResult{
		Posts:        posts,
		HasNext:      envelope.HasNext,
		TotalResults: envelope.TotalResults,
		Page:         page,
	}, nil
}
