// ABOUTME: Tests for section titles, result counters, and feed placeholders.
package render

import (
	"strings"
	"testing"
)

func TestSectionTitleByMode(t *testing.T) {
	tests := []struct {
		name  string
		query string
		tag   string
		want  string
	}{
		{"listing", "", "", "Latest Posts"},
		{"search", "rust", "", `Search results for "rust"`},
		{"tag filter", "career", "career", `Posts tagged "career"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SectionTitle(tt.query, tt.tag)
			if !strings.Contains(got, tt.want) {
				t.Errorf("SectionTitle(%q, %q) = %q, want substring %q", tt.query, tt.tag, got, tt.want)
			}
		})
	}
}

func TestResultCountPluralization(t *testing.T) {
	if got := ResultCount(0); !strings.Contains(got, "0 results") {
		t.Errorf("expected %q in %q", "0 results", got)
	}
	if got := ResultCount(1); !strings.Contains(got, "1 result") || strings.Contains(got, "results") {
		t.Errorf("expected singular form, got %q", got)
	}
	if got := ResultCount(42); !strings.Contains(got, "42 results") {
		t.Errorf("expected %q in %q", "42 results", got)
	}
}

func TestNoResultsOffersRecovery(t *testing.T) {
	got := NoResults()
	if !strings.Contains(got, "No posts found") {
		t.Errorf("expected empty state text, got %q", got)
	}
	if !strings.Contains(got, "esc") {
		t.Errorf("expected a way back to all posts, got %q", got)
	}
}

func TestSearchUnavailableOffersRecovery(t *testing.T) {
	got := SearchUnavailable()
	if !strings.Contains(got, "unavailable") || !strings.Contains(got, "esc") {
		t.Errorf("expected notice with recovery hint, got %q", got)
	}
}
