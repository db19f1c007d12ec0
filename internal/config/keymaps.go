package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask    string `yaml:"add_task"`
	ViewTask   string `yaml:"view_task"`
	DeleteTask string `yaml:"delete_task"`
	MoveMenu   string `yaml:"move_menu"`
	GrabTask   string `yaml:"grab_task"`

	// Forms
	SaveForm      string `yaml:"save_form"`
	DetailsDelete string `yaml:"details_delete"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Other
	Reload   string `yaml:"reload"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTask:    "a",
		ViewTask:   "enter",
		DeleteTask: "d",
		MoveMenu:   "m",
		GrabTask:   "space",
		SaveForm:   "ctrl+s",

		DetailsDelete: "ctrl+d",

		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		Reload:   "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

func (k *KeyMappings) fields(other *KeyMappings) [][2]*string {
	return [][2]*string{
		{&k.AddTask, &other.AddTask},
		{&k.ViewTask, &other.ViewTask},
		{&k.DeleteTask, &other.DeleteTask},
		{&k.MoveMenu, &other.MoveMenu},
		{&k.GrabTask, &other.GrabTask},
		{&k.SaveForm, &other.SaveForm},
		{&k.DetailsDelete, &other.DetailsDelete},
		{&k.PrevColumn, &other.PrevColumn},
		{&k.NextColumn, &other.NextColumn},
		{&k.PrevTask, &other.PrevTask},
		{&k.NextTask, &other.NextTask},
		{&k.Reload, &other.Reload},
		{&k.ShowHelp, &other.ShowHelp},
		{&k.Quit, &other.Quit},
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	for _, pair := range k.fields(&defaults) {
		if *pair[0] == "" {
			*pair[0] = *pair[1]
		}
	}
}
