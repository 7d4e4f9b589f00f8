package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/holdclock/internal/scheduler"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { // nolint:ireturn
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		m.help.Width = x.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(x)

	case tickMsg:
		m.sched.Poll(m.state)
		return m, m.waitForTick()
	}

	return m, nil
}

// handleKey processes key bindings and returns updated model and command.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.helpVisible = !m.helpVisible
		m.help.ShowAll = m.helpVisible
		return m, nil
	}

	cmd := m.keys.command(msg)
	if cmd == scheduler.CmdNone {
		return m, nil
	}
	logrus.WithField("command", cmd.String()).Trace("key dispatched")
	if m.sched.Dispatch(m.state, cmd) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}
