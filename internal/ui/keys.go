package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings handled by the prompt. Everything else is
// passed to the query input.
type keyMap struct {
	Launch    key.Binding
	Interrupt key.Binding
	Help      key.Binding
	List      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Launch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "launch"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		List: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "page matches"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Launch, k.List, k.Help, k.Interrupt}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Launch, k.Interrupt}, {k.List, k.Help}}
}
