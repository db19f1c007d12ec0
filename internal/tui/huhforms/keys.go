package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// dialogKeyMap adapts huh's bindings to the board dialogs. The dialog owns
// esc and the submit key, so huh's quit is switched off. Descriptions
// take shift+enter for a new line as well as huh's alt+enter and ctrl+j.
func dialogKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithDisabled())
	km.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter", "new line"),
	)
	return km
}
