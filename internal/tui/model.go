package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ensigniasec/holdclock/internal/dashboard"
	"github.com/ensigniasec/holdclock/internal/scheduler"
)

// Model is the root Bubble Tea model. The dashboard state and scheduler are
// shared by every copy of the model; bubbletea only touches them from its
// update goroutine.
type Model struct {
	state *dashboard.State
	sched *scheduler.Scheduler

	width    int
	height   int
	quitting bool

	// ui state
	helpVisible bool
	help        help.Model
	progress    progress.Model

	// keymap for consistent keybindings
	keys keyMap
}

// NewModel constructs a Model over state driven by sched.
func NewModel(state *dashboard.State, sched *scheduler.Scheduler) Model {
	h := help.New()
	h.Styles.ShortKey = footerStyle.Bold(true)
	h.Styles.ShortDesc = footerStyle
	h.Styles.ShortSeparator = footerStyle

	return Model{
		state:    state,
		sched:    sched,
		help:     h,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		keys:     newKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.waitForTick()
}

// waitForTick waits at most until the next tick boundary. Key messages
// arriving earlier are handled in between without rescheduling.
func (m Model) waitForTick() tea.Cmd {
	return tea.Tick(m.sched.Remaining(), func(t time.Time) tea.Msg {
		return tickMsg{At: t}
	})
}
