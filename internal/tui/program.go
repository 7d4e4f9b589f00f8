package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/holdclock/internal/config"
	"github.com/ensigniasec/holdclock/internal/dashboard"
	"github.com/ensigniasec/holdclock/internal/scheduler"
	"github.com/ensigniasec/holdclock/internal/timer"
)

// Options tunes Run.
type Options struct {
	// LogOutput receives logrus output while the program owns the terminal.
	// Nil discards it.
	LogOutput io.Writer
}

// Run starts the Bubble Tea program and blocks until the user quits.
// Bubble Tea enters raw mode and the alternate screen and restores both,
// along with the cursor, on every exit path.
func Run(ctx context.Context, cfg config.Config, opts Options) error {
	state := NewState(cfg)
	sched := scheduler.New(scheduler.TickInterval, scheduler.SystemClock)
	model := NewModel(state, sched)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithFPS(maxFPS))

	// Silence logs during TUI to avoid corrupting the view.
	logOut := opts.LogOutput
	if logOut == nil {
		logOut = io.Discard
	}
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(logOut)
	defer logrus.SetOutput(prevOut)

	logrus.WithFields(logrus.Fields{
		"items":  len(cfg.Items),
		"legend": len(cfg.Legend),
	}).Debug("dashboard starting")

	// Run TUI blocking in this goroutine.
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	logrus.WithField("ticks", sched.Ticks()).Debug("dashboard stopped")
	return nil
}

// NewState builds the dashboard context from configuration, converting the
// configured durations into scheduler ticks.
func NewState(cfg config.Config) *dashboard.State {
	items := make([]dashboard.Item, 0, len(cfg.Items))
	for _, it := range cfg.Items {
		items = append(items, dashboard.Item{Label: it.Label, DetailLines: it.DetailLines})
	}
	legend := make([]dashboard.LegendEntry, 0, len(cfg.Legend))
	for _, e := range cfg.Legend {
		legend = append(legend, dashboard.LegendEntry{Label: e.Label, Category: e.Category})
	}

	startTicks := int(cfg.Timer.Countdown / scheduler.TickInterval)
	threshold := uint(cfg.Timer.ReleaseWindow / scheduler.TickInterval)
	return dashboard.NewState(items, legend, timer.New(startTicks, threshold))
}
