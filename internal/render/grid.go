// ABOUTME: Grid assembly for post cards with ghost-row filling.
// ABOUTME: Pads the final row with invisible cards so it keeps the grid width.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CardsPerRow computes how many cards fit in totalWidth. Zero means the
// container has no measured width yet and the grid should not be built.
func CardsPerRow(totalWidth, cardMinWidth int) int {
	if totalWidth <= 0 || cardMinWidth <= 0 {
		return 0
	}
	per := totalWidth / cardMinWidth
	if per < 1 {
		per = 1
	}
	return per
}

// GhostCard returns an invisible, non-interactive filler sized like a real
// card. It only occupies layout space.
func GhostCard(width, height int) string {
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// FillLastRow pads cards so the final row holds exactly perRow entries.
// The input is never mutated, so repeated calls on the same slice cannot
// accumulate fillers. With one card per row (or none needed) the cards are
// returned as-is.
func FillLastRow(cards []string, perRow, cardWidth int) []string {
	if perRow <= 1 || len(cards) == 0 {
		return cards
	}
	remainder := len(cards) % perRow
	if remainder == 0 {
		return cards
	}
	height := lipgloss.Height(cards[len(cards)-1])
	out := make([]string, len(cards), len(cards)+perRow-remainder)
	copy(out, cards)
	for i := 0; i < perRow-remainder; i++ {
		out = append(out, GhostCard(cardWidth, height))
	}
	return out
}

// Grid lays cards out in rows of perRow, ghost-filling the last row. A zero
// perRow (unmeasured container) produces an empty grid.
func Grid(cards []string, totalWidth, cardMinWidth int) string {
	perRow := CardsPerRow(totalWidth, cardMinWidth)
	if perRow == 0 || len(cards) == 0 {
		return ""
	}
	cardWidth := totalWidth / perRow
	filled := FillLastRow(cards, perRow, cardWidth)

	var rows []string
	for i := 0; i < len(filled); i += perRow {
		end := i + perRow
		if end > len(filled) {
			end = len(filled)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, filled[i:end]...))
	}
	return strings.Join(rows, "\n")
}
