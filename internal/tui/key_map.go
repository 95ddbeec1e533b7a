package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the search TUI. Letters are
// left to the text input.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	close   key.Binding
	buy     key.Binding
	preview key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:      key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		down:    key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		buy:     key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "buy")),
		preview: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "preview")),
		quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.enter, k.close, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.close, k.buy, k.preview},
		{k.quit},
	}
}
