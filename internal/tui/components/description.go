package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

// RenderDescription renders a markdown description for the details
// dialog. Plain wrapped text is used when glamour cannot render it.
func RenderDescription(markdown string, width int) string {
	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		return subtleStyle().Italic(true).Render("No description")
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return wordwrap.String(markdown, width)
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return wordwrap.String(markdown, width)
	}
	return strings.Trim(out, "\n")
}
