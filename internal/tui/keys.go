package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Tab1  key.Binding
	Tab2  key.Binding
	Tab3  key.Binding
	Tab4  key.Binding
	Tab   key.Binding
	Up    key.Binding
	Down  key.Binding
	Add   key.Binding
	Cycle key.Binding
	Del   key.Binding
	Water key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Add, k.Water, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab1, k.Tab2, k.Tab3, k.Tab4, k.Tab},
		{k.Up, k.Down, k.Add, k.Cycle, k.Del},
		{k.Water, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Tab1:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "dashboard")),
	Tab2:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "tasks")),
	Tab3:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "sleep")),
	Tab4:  key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "awards")),
	Tab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Add:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Cycle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "cycle status")),
	Del:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Water: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "log water")),
	Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
