// ABOUTME: Core data model for blog posts fetched from the remote listing API.
// ABOUTME: Provides display fallbacks, category resolution, and tag splitting.
package models

import (
	"html"
	"regexp"
	"strings"
)

// Post represents one blog post record from the server. Every field is
// optional; the display helpers below must never fail on a missing one.
type Post struct {
	Title          string
	Content        string
	Author         string
	PubDate        string
	URL            string
	Tags           string // comma-separated display string, ", " between names
	Category       string
	Thumbnail      string
	ThumbnailSmall string
	Image          string
}

// categoryLabels maps known category slugs to their display form.
var categoryLabels = map[string]string{
	"tech":     "Tech",
	"thoughts": "Thoughts",
	"stories":  "Stories",
	"career":   "Career",
	"project":  "Project",
	"post":     "Post",
}

// tagPattern matches HTML tags for stripping post markup before display.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripHTML removes markup from post-provided text so injected tags render
// as plain characters rather than live formatting.
func StripHTML(s string) string {
	stripped := tagPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(html.UnescapeString(stripped))
}

// DisplayTitle returns the post title as plain text, or "Untitled Post".
func (p *Post) DisplayTitle() string {
	if t := StripHTML(p.Title); t != "" {
		return t
	}
	return "Untitled Post"
}

// DisplayContent returns the post body as plain text. Empty content stays
// empty; a missing body is not an error.
func (p *Post) DisplayContent() string {
	return StripHTML(p.Content)
}

// DisplayAuthor returns the author name, or "Anonymous".
func (p *Post) DisplayAuthor() string {
	if a := strings.TrimSpace(p.Author); a != "" {
		return a
	}
	return "Anonymous"
}

// PrimaryCategory resolves the post's category slug: the explicit category
// field, else the first tag, else "post".
func (p *Post) PrimaryCategory() string {
	if c := strings.TrimSpace(p.Category); c != "" {
		return strings.ToLower(c)
	}
	if tags := p.TagList(); len(tags) > 0 {
		return strings.ToLower(tags[0])
	}
	return "post"
}

// CategoryLabel returns the display text for the post's primary category.
// Known categories use a fixed table; anything else is title-cased.
func (p *Post) CategoryLabel() string {
	slug := p.PrimaryCategory()
	if label, ok := categoryLabels[slug]; ok {
		return label
	}
	return TitleCase(slug)
}

// TagList splits the comma-separated tag string into trimmed, non-empty
// tag names. The server joins names with ", ".
func (p *Post) TagList() []string {
	if strings.TrimSpace(p.Tags) == "" {
		return nil
	}
	parts := strings.Split(p.Tags, ", ")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// FeaturedImage returns the image field for a featured slot. Slot 0 is the
// hero and prefers the full-size image; slots 1-2 fall through the
// small-thumbnail chain.
func (p *Post) FeaturedImage(index int) string {
	if index == 0 {
		return firstNonEmpty(p.Thumbnail, p.Image)
	}
	return p.SmallImage()
}

// SmallImage returns the preferred image for a regular card.
func (p *Post) SmallImage() string {
	return firstNonEmpty(p.ThumbnailSmall, p.Thumbnail, p.Image)
}

// Excerpt returns up to max bytes of plain-text content, cut at a word
// boundary where possible.
func (p *Post) Excerpt(max int) string {
	text := p.DisplayContent()
	if max <= 0 || len(text) <= max {
		return text
	}
	cut := text[:max]
	if idx := strings.LastIndexByte(cut, ' '); idx > max/2 {
		cut = cut[:idx]
	}
	return cut + "..."
}

// TitleCase capitalizes the first letter of each space-separated word.
func TitleCase(s string) string {
	parts := strings.Fields(s)
	for i, part := range parts {
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
