package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// ColumnOptions controls how one column is drawn.
type ColumnOptions struct {
	Width       int  // outer width
	Height      int  // outer height
	Selected    bool // column holds the cursor
	SelectedRow int  // row of the cursor, -1 for none
	DropTarget  bool // a dragged card would land here
	GrabbedID   int  // card being dragged, 0 for none
	Spinner     string
}

// VisibleCards is how many cards fit in a column of the given outer height.
func VisibleCards(height int) int {
	return max((height-ColumnChrome)/CardHeight, 1)
}

// ScrollOffset returns the first visible row so that selected stays on screen.
func ScrollOffset(selected, count, visible int) int {
	if selected < visible || count <= visible {
		return 0
	}
	return min(selected-visible+1, count-visible)
}

// RenderColumn renders a complete column with its title and cards.
//
//	Title (count)
//	▲ n more
//	{card}
//	{card}
//	▼ n more
func RenderColumn(col board.Column, cards []*board.Card, opts ColumnOptions) string {
	inner := max(opts.Width-columnPadding, 8)
	line := lipgloss.NewStyle().Width(inner)

	var b strings.Builder
	b.WriteString(line.Inherit(titleStyle()).Render(fmt.Sprintf("%s (%d)", col.Title, len(cards))))
	b.WriteString("\n")

	visible := VisibleCards(opts.Height)
	offset := 0
	if opts.SelectedRow >= 0 {
		offset = ScrollOffset(opts.SelectedRow, len(cards), visible)
	}
	end := min(offset+visible, len(cards))

	if offset > 0 {
		b.WriteString(line.Inherit(subtleStyle()).Render(fmt.Sprintf("▲ %d more", offset)))
	}
	b.WriteString("\n")

	if len(cards) == 0 {
		b.WriteString(line.Inherit(subtleStyle()).Italic(true).Render("No tasks"))
		b.WriteString("\n")
	}
	for i := offset; i < end; i++ {
		card := cards[i]
		b.WriteString(RenderCard(card, inner, CardOptions{
			Selected: opts.Selected && i == opts.SelectedRow,
			Grabbed:  card.ID == opts.GrabbedID,
			Spinner:  opts.Spinner,
		}))
		b.WriteString("\n")
	}
	if end < len(cards) {
		b.WriteString(line.Inherit(subtleStyle()).Render(fmt.Sprintf("▼ %d more", len(cards)-end)))
	}

	border := theme.ColumnBorder
	switch {
	case opts.DropTarget:
		border = theme.DropTarget
	case opts.Selected:
		border = theme.Highlight
	}

	content := strings.TrimRight(b.String(), "\n")
	style := columnStyle(border)
	if opts.Height > 2 {
		content = fitHeight(content, opts.Height-2)
	}
	return style.Render(content)
}

// fitHeight pads or cuts content to exactly n lines.
func fitHeight(content string, n int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
