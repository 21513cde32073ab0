package remote

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle  key.Binding
	Enter   key.Binding
	Exit    key.Binding
	Refresh key.Binding
	Ping    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys("f", "f11", " "),
			key.WithHelp("f/space", "toggle"),
		),
		Enter: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "enter"),
		),
		Exit: key.NewBinding(
			key.WithKeys("x", "esc"),
			key.WithHelp("x/esc", "exit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Ping: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "ping"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Exit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Enter, k.Exit},
		{k.Refresh, k.Ping},
		{k.Help, k.Quit},
	}
}
