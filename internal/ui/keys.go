package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit         key.Binding
	NextField    key.Binding
	PrevField    key.Binding
	Up           key.Binding
	Down         key.Binding
	Pick         key.Binding
	Confirm      key.Binding
	Close        key.Binding
	Bibles       key.Binding
	Commentaries key.Binding
	LangAll      key.Binding
	LangMy       key.Binding
	LangMyEn     key.Binding
	LangAncient  key.Binding
	Help         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "pick"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save & preview"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close list"),
		),
		Bibles: key.NewBinding(
			key.WithKeys("alt+b"),
			key.WithHelp("alt+b", "bibles"),
		),
		Commentaries: key.NewBinding(
			key.WithKeys("alt+c"),
			key.WithHelp("alt+c", "commentaries"),
		),
		LangAll: key.NewBinding(
			key.WithKeys("alt+a"),
			key.WithHelp("alt+a", "all languages"),
		),
		LangMy: key.NewBinding(
			key.WithKeys("alt+m"),
			key.WithHelp("alt+m", "my language"),
		),
		LangMyEn: key.NewBinding(
			key.WithKeys("alt+e"),
			key.WithHelp("alt+e", "mine + English"),
		),
		LangAncient: key.NewBinding(
			key.WithKeys("alt+g"),
			key.WithHelp("alt+g", "ancient"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Pick, k.Close, k.Confirm, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Up, k.Down, k.Pick},
		{k.Bibles, k.Commentaries},
		{k.LangAll, k.LangMy, k.LangMyEn, k.LangAncient},
		{k.Close, k.Confirm, k.Help, k.Quit},
	}
}
