package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Today     key.Binding
	Calendar  key.Binding
	OnThisDay key.Binding
	Add       key.Binding
	Delete    key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevDay   key.Binding
	NextDay   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Today: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "today"),
		),
		Calendar: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "calendar"),
		),
		OnThisDay: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "on this day"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add entry"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete entry"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day/month"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day/month"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Today, k.Calendar, k.OnThisDay, k.Add, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Today, k.Calendar, k.OnThisDay},
		{k.Add, k.Delete},
		{k.Up, k.Down, k.PrevDay, k.NextDay},
		{k.Help, k.Quit},
	}
}
