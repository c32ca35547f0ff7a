package slider

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines key bindings for each slider action.
type KeyMap struct {
	Decrease     key.Binding
	Increase     key.Binding
	PageDecrease key.Binding
	PageIncrease key.Binding
	Min          key.Binding
	Max          key.Binding
}

// DefaultKeyMap returns the default slider key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase"),
		),
		PageDecrease: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "decrease by 10%"),
		),
		PageIncrease: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "increase by 10%"),
		),
		Min: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "minimum"),
		),
		Max: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "maximum"),
		),
	}
}

// ShortHelp implements [help.KeyMap].
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrease, k.Increase}
}

// FullHelp implements [help.KeyMap].
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Decrease, k.Increase},
		{k.PageDecrease, k.PageIncrease},
		{k.Min, k.Max},
	}
}
