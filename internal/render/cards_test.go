// ABOUTME: Tests for card rendering fallbacks and tag chips.
// ABOUTME: Ensures malformed records degrade to fallback cards instead of panicking.
package render

import (
	"strings"
	"testing"

	"blogdeck/internal/models"
)

func TestRegularCardRendersFallbacks(t *testing.T) {
	card := RegularCard(&models.Post{}, 40, false)
	if !strings.Contains(card, "Untitled Post") {
		t.Error("expected title fallback in card")
	}
	if !strings.Contains(card, "Anonymous") {
		t.Error("expected author fallback in card")
	}
}

func TestMediaBlockPlaceholderCarriesCategory(t *testing.T) {
	post := &models.Post{Tags: "career, tech"}
	card := RegularCard(post, 40, false)
	if !strings.Contains(card, "Career") {
		t.Error("expected category label placeholder for missing image")
	}
}

func TestMediaBlockShowsImageName(t *testing.T) {
	post := &models.Post{ThumbnailSmall: "/media/blog_images/gopher.png"}
	card := RegularCard(post, 40, false)
	if !strings.Contains(card, "gopher.png") {
		t.Error("expected image basename in media block")
	}
}

func TestFeaturedCardImageSlots(t *testing.T) {
	post := &models.Post{Thumbnail: "/media/full.jpg", ThumbnailSmall: "/media/small.jpg"}

	hero := FeaturedCard(post, 0, 60, false)
	if !strings.Contains(hero, "full.jpg") {
		t.Error("expected hero slot to use the full-size image")
	}

	side := FeaturedCard(post, 1, 40, false)
	if !strings.Contains(side, "small.jpg") {
		t.Error("expected slot 1 to use the small thumbnail")
	}
}

func TestTagChips(t *testing.T) {
	post := &models.Post{Tags: "tech,  , career"}
	chips := TagChips(post)
	if !strings.Contains(chips, "[tech]") || !strings.Contains(chips, "[career]") {
		t.Errorf("expected chips for tech and career, got %q", chips)
	}
	if strings.Contains(chips, "[]") {
		t.Error("blank tag segment rendered as an empty chip")
	}
}

func TestErrorCard(t *testing.T) {
	card := ErrorCard(40)
	if !strings.Contains(card, "Error loading post") {
		t.Error("expected fallback text in error card")
	}
}
