package colors

// Kanagawa palette
const (
	sumiInk3     = "#363646"
	sumiInk4     = "#54546D"
	sumiInk6     = "#727169"
	waveBlue1    = "#223249"
	waveAqua2    = "#7AA89F"
	winterGreen  = "#2B3328"
	winterYellow = "#49443C"
	winterRed    = "#43242B"
	winterBlue   = "#252535"
	springGreen  = "#98BB6C"
	crystalBlue  = "#7E9CD8"
	oniViolet    = "#957FB8"
	peachRed     = "#FF5D62"
	samuraiRed   = "#E82424"
	roninYellow  = "#FF9E3B"
	carpYellow   = "#E6C384"
	dragonBlue   = "#658594"
	fujiGray     = "#727169"
	fujiWhite    = "#DCD7BA"
)

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: oniViolet,

		Create: springGreen,
		Edit:   crystalBlue,
		Delete: peachRed,

		ColumnBorder:   sumiInk6,
		DropTarget:     carpYellow,
		CardBorder:     sumiInk4,
		CardBackground: sumiInk3,
		SelectedBorder: waveAqua2,
		SelectedBg:     waveBlue1,
		Busy:           sumiInk4,

		Title:  crystalBlue,
		Subtle: fujiGray,
		Normal: fujiWhite,

		InfoFg:    dragonBlue,
		InfoBg:    winterBlue,
		SuccessFg: springGreen,
		SuccessBg: winterGreen,
		WarningFg: roninYellow,
		WarningBg: winterYellow,
		ErrorFg:   samuraiRed,
		ErrorBg:   winterRed,
	}
}
