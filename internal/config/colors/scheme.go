package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // create dialog
	Edit   string `yaml:"edit"`   // details dialog
	Delete string `yaml:"delete"` // delete confirmation

	// Board elements
	ColumnBorder   string `yaml:"column_border"`
	DropTarget     string `yaml:"drop_target"`
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	Busy           string `yaml:"busy"` // cards waiting on the server

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	SuccessFg string `yaml:"success_fg"`
	SuccessBg string `yaml:"success_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// Presets lists the names GetPreset understands.
func Presets() []string {
	return []string{"default", "monochrome", "wave"}
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// fields pairs every color slot of c with the same slot of other.
func (c *ColorScheme) fields(other *ColorScheme) [][2]*string {
	return [][2]*string{
		{&c.Accent, &other.Accent},
		{&c.Create, &other.Create},
		{&c.Edit, &other.Edit},
		{&c.Delete, &other.Delete},
		{&c.ColumnBorder, &other.ColumnBorder},
		{&c.DropTarget, &other.DropTarget},
		{&c.CardBorder, &other.CardBorder},
		{&c.CardBackground, &other.CardBackground},
		{&c.SelectedBorder, &other.SelectedBorder},
		{&c.SelectedBg, &other.SelectedBg},
		{&c.Busy, &other.Busy},
		{&c.Title, &other.Title},
		{&c.Subtle, &other.Subtle},
		{&c.Normal, &other.Normal},
		{&c.InfoFg, &other.InfoFg},
		{&c.InfoBg, &other.InfoBg},
		{&c.SuccessFg, &other.SuccessFg},
		{&c.SuccessBg, &other.SuccessBg},
		{&c.WarningFg, &other.WarningFg},
		{&c.WarningBg, &other.WarningBg},
		{&c.ErrorFg, &other.ErrorFg},
		{&c.ErrorBg, &other.ErrorBg},
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	for _, pair := range c.fields(preset) {
		if *pair[0] == "" {
			*pair[0] = *pair[1]
		}
	}
}

// MergeFrom overrides c with every non-empty value of other.
// A preset in other replaces the base the remaining gaps are filled from.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	for _, pair := range c.fields(&other) {
		if *pair[1] != "" {
			*pair[0] = *pair[1]
		}
	}
}
