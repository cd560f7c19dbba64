package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Top         key.Binding
	Bottom      key.Binding
	NextProject key.Binding
	PrevProject key.Binding
	Expand      key.Binding
	Close       key.Binding
	Rewire      key.Binding
	Denser      key.Binding
	Sparser     key.Binding
	Help        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " ", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		NextProject: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next project"),
		),
		PrevProject: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev project"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "read full report"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc", "close report"),
		),
		Rewire: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "rewire net"),
		),
		Denser: key.NewBinding(
			key.WithKeys("+", "=", "]"),
			key.WithHelp("+/-", "density"),
		),
		Sparser: key.NewBinding(
			key.WithKeys("-", "_", "["),
			key.WithHelp("-", "sparser"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextProject, k.Expand, k.Close, k.Rewire, k.Denser, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.NextProject, k.PrevProject, k.Expand, k.Close},
		{k.Rewire, k.Denser, k.Sparser, k.Help, k.Quit},
	}
}
