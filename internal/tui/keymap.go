package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ensigniasec/holdclock/internal/scheduler"
)

// keyMap defines global key bindings used across the TUI.
type keyMap struct {
	Quit    key.Binding
	Up      key.Binding
	Down    key.Binding
	Clear   key.Binding
	Primary key.Binding
	Reset   key.Binding
	Help    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Clear: key.NewBinding(
			key.WithKeys("left", "h", "esc"),
			key.WithHelp("←/h", "clear selection"),
		),
		Primary: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "hold to count down"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset timer"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// ShortHelp returns bindings for the single-line footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Primary, k.Up, k.Down, k.Reset, k.Quit, k.Help}
}

// FullHelp returns bindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Primary, k.Reset},
		{k.Up, k.Down, k.Clear},
		{k.Help, k.Quit},
	}
}

// command maps a key press to a scheduler command. Unbound keys map to CmdNone.
func (k keyMap) command(msg tea.KeyMsg) scheduler.Command {
	switch {
	case key.Matches(msg, k.Quit):
		return scheduler.CmdQuit
	case key.Matches(msg, k.Primary):
		return scheduler.CmdPrimary
	case key.Matches(msg, k.Up):
		return scheduler.CmdMoveUp
	case key.Matches(msg, k.Down):
		return scheduler.CmdMoveDown
	case key.Matches(msg, k.Clear):
		return scheduler.CmdClearSelection
	case key.Matches(msg, k.Reset):
		return scheduler.CmdResetTimer
	}
	return scheduler.CmdNone
}
