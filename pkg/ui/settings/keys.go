package settings

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/macropower/chatwin/pkg/ui/slider"
)

// KeyMap defines key bindings for the settings editor. Slider adjustments
// use the slider key map.
type KeyMap struct {
	Slider slider.KeyMap
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Save   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default editor key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Slider: slider.DefaultKeyMap(),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("↑/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "next"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "save and quit"),
		),
	}
}

// ShortHelp implements [help.KeyMap].
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Slider.Decrease, k.Slider.Increase, k.Toggle, k.Save, k.Help, k.Quit}
}

// FullHelp implements [help.KeyMap].
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Slider.Decrease, k.Slider.Increase, k.Slider.PageDecrease, k.Slider.PageIncrease},
		{k.Slider.Min, k.Slider.Max},
		{k.Save, k.Reload, k.Help, k.Quit},
	}
}
