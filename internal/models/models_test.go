// ABOUTME: Unit tests for post display fallbacks and category resolution.
// ABOUTME: Covers HTML stripping, tag splitting, and image fallback chains.
package models

import (
	"reflect"
	"testing"
)

func TestDisplayFallbacks(t *testing.T) {
	p := &Post{}
	if got := p.DisplayTitle(); got != "Untitled Post" {
		t.Errorf("expected 'Untitled Post', got %q", got)
	}
	if got := p.DisplayContent(); got != "" {
		t.Errorf("expected empty content, got %q", got)
	}
	if got := p.DisplayAuthor(); got != "Anonymous" {
		t.Errorf("expected 'Anonymous', got %q", got)
	}
}

func TestDisplayTitleStripsHTML(t *testing.T) {
	p := &Post{Title: "<script>alert(1)</script>Hello <b>World</b>"}
	if got := p.DisplayTitle(); got != "alert(1)Hello World" {
		t.Errorf("expected stripped title, got %q", got)
	}
}

func TestDisplayContentUnescapesEntities(t *testing.T) {
	p := &Post{Content: "<p>Fish &amp; Chips</p>"}
	if got := p.DisplayContent(); got != "Fish & Chips" {
		t.Errorf("expected 'Fish & Chips', got %q", got)
	}
}

func TestTagListDropsBlankSegments(t *testing.T) {
	p := &Post{Tags: "tech,  , career ,  rust, "}
	got := p.TagList()
	want := []string{"tech", "career", "rust"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTagListWellFormed(t *testing.T) {
	p := &Post{Tags: "Tech, Career, Stories"}
	got := p.TagList()
	want := []string{"Tech", "Career", "Stories"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTagListEmpty(t *testing.T) {
	p := &Post{Tags: "   "}
	if got := p.TagList(); got != nil {
		t.Errorf("expected nil for blank tags, got %v", got)
	}
}

func TestPrimaryCategory(t *testing.T) {
	tests := []struct {
		name string
		post Post
		want string
	}{
		{"explicit category", Post{Category: "Tech", Tags: "career"}, "tech"},
		{"first tag", Post{Tags: "Career, Stories"}, "career"},
		{"default", Post{}, "post"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.post.PrimaryCategory(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCategoryLabel(t *testing.T) {
	known := &Post{Category: "career"}
	if got := known.CategoryLabel(); got != "Career" {
		t.Errorf("expected 'Career', got %q", got)
	}
	unknown := &Post{Category: "machine learning"}
	if got := unknown.CategoryLabel(); got != "Machine Learning" {
		t.Errorf("expected generic title case, got %q", got)
	}
}

func TestFeaturedImageChain(t *testing.T) {
	p := &Post{Thumbnail: "full.jpg", ThumbnailSmall: "small.jpg", Image: "orig.jpg"}
	if got := p.FeaturedImage(0); got != "full.jpg" {
		t.Errorf("hero slot should use full thumbnail, got %q", got)
	}
	if got := p.FeaturedImage(1); got != "small.jpg" {
		t.Errorf("slot 1 should use small thumbnail, got %q", got)
	}

	noSmall := &Post{Thumbnail: "full.jpg", Image: "orig.jpg"}
	if got := noSmall.FeaturedImage(2); got != "full.jpg" {
		t.Errorf("slot 2 should fall back to full thumbnail, got %q", got)
	}

	imageOnly := &Post{Image: "orig.jpg"}
	if got := imageOnly.FeaturedImage(0); got != "orig.jpg" {
		t.Errorf("hero slot should fall back to image, got %q", got)
	}
	if got := imageOnly.SmallImage(); got != "orig.jpg" {
		t.Errorf("small image should fall back to image, got %q", got)
	}

	bare := &Post{}
	if got := bare.SmallImage(); got != "" {
		t.Errorf("expected empty image for bare post, got %q", got)
	}
}

func TestExcerptCutsAtWordBoundary(t *testing.T) {
	p := &Post{Content: "one two three four five six seven"}
	got := p.Excerpt(15)
	if got != "one two three..." {
		t.Errorf("expected word-boundary cut, got %q", got)
	}
	short := &Post{Content: "tiny"}
	if got := short.Excerpt(15); got != "tiny" {
		t.Errorf("expected passthrough for short content, got %q", got)
	}
}
