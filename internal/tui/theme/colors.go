package theme

import "github.com/thenoetrevino/tablero/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Title          string
	Create         string
	Edit           string
	Delete         string
	ColumnBorder   string
	DropTarget     string
	CardBorder     string
	CardBg         string
	SelectedBorder string
	SelectedBg     string
	Busy           string
	InfoFg         string
	InfoBg         string
	SuccessFg      string
	SuccessBg      string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	ColumnBorder = colors.ColumnBorder
	DropTarget = colors.DropTarget
	CardBorder = colors.CardBorder
	CardBg = colors.CardBackground
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	Busy = colors.Busy
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	SuccessFg = colors.SuccessFg
	SuccessBg = colors.SuccessBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
