// ABOUTME: Tests for the blog endpoint client using httptest servers.
// ABOUTME: Covers query encoding, header passing, error statuses, and bad payloads.
package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListPosts(t *testing.T) {
	var receivedHeader string
	var receivedPage string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedHeader = r.Header.Get("X-Requested-With")
		receivedPage = r.URL.Query().Get("page")
		if r.URL.Query().Has("search") {
			t.Error("listing request must not carry a search parameter")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"blog_posts": [
				{"title": "First", "content": "<p>Body</p>", "author": "ada", "tags": "tech, career", "url": "/blog/1/"},
				{"title": "Second"}
			],
			"has_next": true
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "search/")
	result, err := client.ListPosts(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListPosts error: %v", err)
	}

	if receivedHeader != "XMLHttpRequest" {
		t.Errorf("expected XMLHttpRequest header, got %q", receivedHeader)
	}
	if receivedPage != "2" {
		t.Errorf("expected page=2, got %q", receivedPage)
	}
	if len(result.Posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(result.Posts))
	}
	if !result.HasNext {
		t.Error("expected has_next true")
	}
	if result.Page != 2 {
		t.Errorf("expected page 2 in result, got %d", result.Page)
	}
	if result.Posts[0].Title != "First" {
		t.Errorf("unexpected first post title %q", result.Posts[0].Title)
	}
	if result.Posts[0].Tags != "tech, career" {
		t.Errorf("unexpected tags %q", result.Posts[0].Tags)
	}
}

func TestSearchPostsEncodesQuery(t *testing.T) {
	var receivedPath string
	var receivedSearch string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedPath = r.URL.Path
		receivedSearch = r.URL.Query().Get("search")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"blog_posts": [], "has_next": false, "total_results": 0}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "search/")
	result, err := client.SearchPosts(context.Background(), "rust & go", 1)
	if err != nil {
		t.Fatalf("SearchPosts error: %v", err)
	}

	if receivedPath != "/search/" {
		t.Errorf("expected /search/ path, got %q", receivedPath)
	}
	if receivedSearch != "rust & go" {
		t.Errorf("expected decoded search query, got %q", receivedSearch)
	}
	if len(result.Posts) != 0 {
		t.Errorf("expected empty result, got %d posts", len(result.Posts))
	}
	if result.TotalResults != 0 {
		t.Errorf("expected 0 total results, got %d", result.TotalResults)
	}
}

func TestSearchPostsOmitsEmptyQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("search") {
			t.Error("empty query must omit the search parameter")
		}
		_, _ = w.Write([]byte(`{"blog_posts": [], "has_next": false}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "search/")
	if _, err := client.SearchPosts(context.Background(), "", 1); err != nil {
		t.Fatalf("SearchPosts error: %v", err)
	}
}

func TestListPostsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "Unable to load posts"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "search/")
	_, err := client.ListPosts(context.Background(), 2)
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestListPostsMalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"blog_posts not an array", `{"blog_posts": "nope", "has_next": false}`},
		{"missing blog_posts", `{"has_next": false}`},
		{"not json", `<html>oops</html>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, "search/")
			if _, err := client.ListPosts(context.Background(), 1); err == nil {
				t.Error("expected error for malformed payload")
			}
		})
	}
}

func TestPageClampedToOne(t *testing.T) {
	var receivedPage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedPage = r.URL.Query().Get("page")
		_, _ = w.Write([]byte(`{"blog_posts": [], "has_next": false}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "search/")
	if _, err := client.ListPosts(context.Background(), 0); err != nil {
		t.Fatalf("ListPosts error: %v", err)
	}
	if receivedPage != "1" {
		t.Errorf("expected page clamped to 1, got %q", receivedPage)
	}
}
