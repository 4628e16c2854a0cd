package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the TUI.
type KeyMap struct {
	Submit  key.Binding
	Dismiss key.Binding
	Reset   key.Binding
	Quit    key.Binding
	CtrlC   key.Binding
}

// DefaultKeyMap provides the default key bindings for the TUI.
var DefaultKeyMap = KeyMap{
	Submit: key.NewBinding(
		key.WithKeys(KeyEnter),
		key.WithHelp("enter", "submit answer"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys(KeyEnter, KeyEsc),
		key.WithHelp("enter/esc", "dismiss"),
	),
	Reset: key.NewBinding(
		key.WithKeys(KeyEnter),
		key.WithHelp("enter", "submit another application"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys(KeyCtrlC),
		key.WithHelp("ctrl+c twice", "exit"),
	),
}

// ShortHelp returns the bindings shown while answering questions.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.CtrlC}
}

// FullHelp returns every binding grouped by screen.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Dismiss},
		{k.Reset, k.Quit, k.CtrlC},
	}
}
