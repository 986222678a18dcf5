// ABOUTME: Lipgloss card rendering for featured and regular blog posts.
// ABOUTME: Handles image placeholders, tag chips, and per-record failure isolation.
package render

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"blogdeck/internal/diag"
	"blogdeck/internal/models"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	heroCardStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1)

	selectedBorder = lipgloss.Color("212")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	excerptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	metaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	chipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	mediaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Background(lipgloss.Color("236"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// categoryColors is the terminal analogue of the per-category CSS classes:
// the placeholder block is tinted by the lowercased category slug.
var categoryColors = map[string]lipgloss.Color{
	"tech":     lipgloss.Color("39"),
	"thoughts": lipgloss.Color("141"),
	"stories":  lipgloss.Color("214"),
	"career":   lipgloss.Color("42"),
	"project":  lipgloss.Color("203"),
	"post":     lipgloss.Color("245"),
}

// FeaturedCard renders one of the up-to-three highlighted posts. Slot 0 is
// the hero with the full-size image; slots 1-2 use the small-thumbnail
// chain. A panic while building the card is isolated and replaced with a
// fallback card so one bad record never blocks the batch.
func FeaturedCard(post *models.Post, index, width int, selected bool) string {
	var out string
	err := diag.Recover("render", func() {
		out = featuredCard(post, index, width, selected)
	})
	if err != nil {
		diag.Error("render", err, map[string]string{"post": post.Title, "slot": fmt.Sprintf("%d", index)})
		return ErrorCard(width)
	}
	return out
}

func featuredCard(post *models.Post, index, width int, selected bool) string {
	inner := innerWidth(width)
	bannerHeight := 3
	if index == 0 {
		bannerHeight = 5
	}

	var b strings.Builder
	b.WriteString(mediaBlock(post, post.FeaturedImage(index), inner, bannerHeight))
	b.WriteString("\n")
	b.WriteString(titleStyle.Width(inner).Render(post.DisplayTitle()))
	b.WriteString("\n")
	b.WriteString(excerptStyle.Width(inner).Render(post.Excerpt(excerptLen(index))))
	b.WriteString("\n")
	b.WriteString(metaLine(post, inner))

	style := cardStyle
	if index == 0 {
		style = heroCardStyle
	}
	if selected {
		style = style.BorderForeground(selectedBorder)
	}
	return style.Width(width).Render(b.String())
}

// RegularCard renders a post in the standard grid. Regular cards always
// prefer the small thumbnail.
func RegularCard(post *models.Post, width int, selected bool) string {
	var out string
	err := diag.Recover("render", func() {
		out = regularCard(post, width, selected)
	})
	if err != nil {
		diag.Error("render", err, map[string]string{"post": post.Title})
		return ErrorCard(width)
	}
	return out
}

func regularCard(post *models.Post, width int, selected bool) string {
	inner := innerWidth(width)

	var b strings.Builder
	b.WriteString(mediaBlock(post, post.SmallImage(), inner, 2))
	b.WriteString("\n")
	b.WriteString(titleStyle.Width(inner).Render(post.DisplayTitle()))
	b.WriteString("\n")
	b.WriteString(excerptStyle.Width(inner).Render(post.Excerpt(90)))
	b.WriteString("\n")
	b.WriteString(metaLine(post, inner))

	style := cardStyle
	if selected {
		style = style.BorderForeground(selectedBorder)
	}
	return style.Width(width).Render(b.String())
}

// ErrorCard is the minimal fallback for a record that failed to render.
func ErrorCard(width int) string {
	return cardStyle.Width(width).Render(errorStyle.Render("Error loading post"))
}

// mediaBlock renders the card's image area. When the post carries no usable
// image the block becomes a category placeholder: the category display text
// on a block tinted by the category slug.
func mediaBlock(post *models.Post, image string, width, height int) string {
	if image != "" {
		label := " " + path.Base(image) + " "
		return mediaStyle.Width(width).Height(height).Align(lipgloss.Center, lipgloss.Center).Render(label)
	}
	color, ok := categoryColors[post.PrimaryCategory()]
	if !ok {
		color = categoryColors["post"]
	}
	placeholder := lipgloss.NewStyle().
		Foreground(lipgloss.Color("232")).
		Background(color).
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)
	return placeholder.Render(post.CategoryLabel())
}

// metaLine renders author, date, and tag chips on the card's last line.
func metaLine(post *models.Post, width int) string {
	meta := post.DisplayAuthor()
	if post.PubDate != "" {
		meta += " · " + post.PubDate
	}
	line := metaStyle.Render(meta)
	if chips := TagChips(post); chips != "" {
		line += "\n" + chips
	}
	return lipgloss.NewStyle().Width(width).Render(line)
}

// TagChips renders the post's tags as chips. Blank segments are dropped by
// the model's tag splitting.
func TagChips(post *models.Post) string {
	tags := post.TagList()
	if len(tags) == 0 {
		return ""
	}
	chips := make([]string, 0, len(tags))
	for _, tag := range tags {
		chips = append(chips, chipStyle.Render("["+tag+"]"))
	}
	return strings.Join(chips, " ")
}

func innerWidth(width int) int {
	// border + padding on each side
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	return inner
}

func excerptLen(index int) int {
	if index == 0 {
		return 200
	}
	return 110
}
