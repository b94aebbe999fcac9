package tui

import "github.com/charmbracelet/bubbles/key"

type resultKeys struct {
	Repeat key.Binding
	New    key.Binding
	Quit   key.Binding
}

func defaultResultKeys() resultKeys {
	return resultKeys{
		Repeat: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "repeat"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new test"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "enter", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k resultKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Repeat, k.New, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k resultKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Repeat, k.New, k.Quit}}
}
