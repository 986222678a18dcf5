// ABOUTME: Section titles, result counters, and placeholder states for the feed.
// ABOUTME: Covers empty search results and the search-unavailable notice.
package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	sectionStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	countStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(1, 2)
	noticeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Padding(1, 2)
	bannerStyle      = lipgloss.NewStyle().
				Foreground(lipgloss.Color("232")).
				Background(lipgloss.Color("203")).
				Padding(0, 1)
)

// SectionTitle renders the posts-section heading for the current mode.
func SectionTitle(query, tag string) string {
	switch {
	case tag != "":
		return sectionStyle.Render(fmt.Sprintf("Posts tagged %q", tag))
	case query != "":
		return sectionStyle.Render(fmt.Sprintf("Search results for %q", query))
	default:
		return sectionStyle.Render("Latest Posts")
	}
}

// ResultCount renders the "N results" status line.
func ResultCount(n int) string {
	if n == 1 {
		return countStyle.Render("1 result")
	}
	return countStyle.Render(fmt.Sprintf("%d results", n))
}

// NoResults is the placeholder shown when a search returns nothing.
func NoResults() string {
	return placeholderStyle.Render("No posts found.\nPress esc to view all posts.")
}

// SearchUnavailable is the persistent notice shown when a search fetch
// fails, offering the way back to the unfiltered view.
func SearchUnavailable() string {
	return noticeStyle.Render("Search is temporarily unavailable.\nPress esc to view all posts.")
}

// ErrorBanner renders the transient error banner.
func ErrorBanner(msg string) string {
	return bannerStyle.Render(msg)
}

// LoadingPlaceholder is shown while a replacement page is being fetched.
func LoadingPlaceholder() string {
	return placeholderStyle.Render("Loading posts...")
}
