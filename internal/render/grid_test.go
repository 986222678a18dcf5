// ABOUTME: Tests for grid layout and ghost-row filling.
// ABOUTME: Covers remainder math, idempotence, and the unmeasured-container no-op.
package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestCardsPerRow(t *testing.T) {
	tests := []struct {
		name       string
		totalWidth int
		cardMin    int
		want       int
	}{
		{"zero width container", 0, 38, 0},
		{"narrower than one card", 20, 38, 1},
		{"two across", 80, 38, 2},
		{"three across", 120, 38, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CardsPerRow(tt.totalWidth, tt.cardMin); got != tt.want {
				t.Errorf("CardsPerRow(%d, %d) = %d, want %d", tt.totalWidth, tt.cardMin, got, tt.want)
			}
		})
	}
}

func TestFillLastRowPadsRemainder(t *testing.T) {
	cards := []string{"a", "b", "c", "d", "e"}
	filled := FillLastRow(cards, 3, 10)
	if len(filled) != 6 {
		t.Fatalf("expected 6 cards after fill, got %d", len(filled))
	}
	if lipgloss.Width(filled[5]) != 10 {
		t.Errorf("expected ghost width 10, got %d", lipgloss.Width(filled[5]))
	}
}

func TestFillLastRowIdempotent(t *testing.T) {
	cards := []string{"a", "b", "c", "d", "e"}
	once := FillLastRow(cards, 3, 10)
	twice := FillLastRow(FillLastRow(cards, 3, 10), 3, 10)
	if len(once) != len(twice) {
		t.Errorf("repeated fill changed card count: %d vs %d", len(once), len(twice))
	}
	// The source slice is untouched.
	if len(cards) != 5 {
		t.Errorf("input slice mutated to length %d", len(cards))
	}
}

func TestFillLastRowNoOps(t *testing.T) {
	full := []string{"a", "b", "c", "d"}
	if got := FillLastRow(full, 2, 10); len(got) != 4 {
		t.Errorf("expected no fillers for a complete row, got %d cards", len(got))
	}
	single := []string{"a", "b", "c"}
	if got := FillLastRow(single, 1, 10); len(got) != 3 {
		t.Errorf("expected no fillers with one card per row, got %d cards", len(got))
	}
	if got := FillLastRow(nil, 3, 10); got != nil {
		t.Errorf("expected nil passthrough for empty input, got %v", got)
	}
}

func TestGhostCardMatchesHeight(t *testing.T) {
	ghost := GhostCard(12, 4)
	if lipgloss.Height(ghost) != 4 {
		t.Errorf("expected height 4, got %d", lipgloss.Height(ghost))
	}
	if lipgloss.Width(ghost) != 12 {
		t.Errorf("expected width 12, got %d", lipgloss.Width(ghost))
	}
}

func TestGridZeroWidthIsEmpty(t *testing.T) {
	if got := Grid([]string{"a"}, 0, 38); got != "" {
		t.Errorf("expected empty grid for unmeasured container, got %q", got)
	}
}

func TestGridRowsShareWidth(t *testing.T) {
	cards := []string{
		GhostCard(10, 2), GhostCard(10, 2), GhostCard(10, 2),
		GhostCard(10, 2), GhostCard(10, 2),
	}
	grid := Grid(cards, 30, 10)
	lines := lipgloss.Height(grid)
	if lines != 4 {
		t.Fatalf("expected 2 rows of height 2, got total height %d", lines)
	}
	if lipgloss.Width(grid) != 30 {
		t.Errorf("expected uniform row width 30, got %d", lipgloss.Width(grid))
	}
}
