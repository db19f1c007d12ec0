package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// CardOptions says how a card is highlighted.
type CardOptions struct {
	Selected bool
	Grabbed  bool
	Spinner  string // glyph shown while the card is busy
}

// RenderCard renders a single task card of the given outer width.
//
//	╭──────────────────╮
//	│ Title, wrapped   │
//	│ over two lines   │
//	│ subject          │
//	│ High  31/01/2025 │
//	╰──────────────────╯
func RenderCard(card *board.Card, width int, opts CardOptions) string {
	inner := max(width-cardBorder, 4)

	bg := theme.CardBg
	border := theme.CardBorder
	if opts.Selected {
		bg = theme.SelectedBg
		border = theme.SelectedBorder
	}
	if opts.Grabbed {
		border = theme.DropTarget
	}

	task := card.Task
	text := lipgloss.NewStyle().Background(lipgloss.Color(bg)).Width(inner)
	if card.Busy {
		text = text.Foreground(lipgloss.Color(theme.Busy)).Faint(true)
	}

	lines := titleLines(task.DisplayTitle(), inner, 2)
	if card.Busy && opts.Spinner != "" {
		lines[0] = fit(opts.Spinner+" "+lines[0], inner)
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(text.Bold(true).Render(line))
		b.WriteString("\n")
	}
	b.WriteString(text.Foreground(lipgloss.Color(theme.Subtle)).Render(fit(task.DisplaySubject(), inner)))
	b.WriteString("\n")
	b.WriteString(text.Render(metaLine(task, inner, bg, card.Busy)))

	return cardStyle(border, bg).Render(b.String())
}

// titleLines word-wraps a title into exactly n lines, truncating the last.
func titleLines(title string, width, n int) []string {
	wrapped := strings.Split(wordwrap.String(title, width), "\n")
	lines := make([]string, n)
	for i := range lines {
		if i < len(wrapped) {
			lines[i] = wrapped[i]
		}
	}
	if len(wrapped) > n {
		lines[n-1] = fit(lines[n-1]+" "+wrapped[n], width)
	}
	for i := range lines {
		lines[i] = fit(lines[i], width)
	}
	return lines
}

func metaLine(task *models.Task, width int, bg string, busy bool) string {
	badge := lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(task.Priority.Color())).
		Bold(true)
	if busy {
		badge = badge.Faint(true)
	}
	due := models.DisplayDate(task.DueDate)
	label := task.Priority.Label()
	gap := max(width-lipgloss.Width(label)-lipgloss.Width(due), 1)
	line := badge.Render(label) + strings.Repeat(" ", gap) + due
	return fit(line, width)
}

// fit cuts s to width with an ellipsis. truncate reserves room for the
// tail up front, so strings that already fit are returned untouched.
func fit(s string, width int) string {
	if ansi.PrintableRuneWidth(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}
