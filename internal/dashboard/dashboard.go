// Package dashboard holds the application context: the item list, the timer
// and the static legend, all owned by the scheduler's single execution context.
// Presentation code only sees Snapshots.
package dashboard

import (
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/holdclock/internal/selection"
	"github.com/ensigniasec/holdclock/internal/timer"
)

// Item is one entry of the list panel.
type Item struct {
	Label       string
	DetailLines int
}

// LegendEntry is one line of the legend panel.
type LegendEntry struct {
	Label    string
	Category string
}

// State is the mutable application context.
type State struct {
	Items  *selection.List[Item]
	Timer  *timer.Timer
	Legend []LegendEntry
}

// NewState builds the context from injected content and a configured timer.
func NewState(items []Item, legend []LegendEntry, tm *timer.Timer) *State {
	lg := make([]LegendEntry, len(legend))
	copy(lg, legend)
	return &State{
		Items:  selection.New(items),
		Timer:  tm,
		Legend: lg,
	}
}

// Snapshot is a read-only view of State for one frame.
type Snapshot struct {
	Items        []Item
	Selected     int
	HasSelection bool
	Legend       []LegendEntry

	Phase      timer.Phase
	Elapsed    int
	StartTicks int
	Display    string
}

// Snapshot copies the current state. Called once per redraw after all
// mutations of the iteration are applied.
func (s *State) Snapshot() Snapshot {
	sel, ok := s.Items.Selected()
	ts := s.Timer.State()
	legend := make([]LegendEntry, len(s.Legend))
	copy(legend, s.Legend)
	return Snapshot{
		Items:        s.Items.Items(),
		Selected:     sel,
		HasSelection: ok,
		Legend:       legend,
		Phase:        ts.Phase,
		Elapsed:      ts.Elapsed,
		StartTicks:   s.Timer.StartTicks(),
		Display:      display(ts.Elapsed),
	}
}

// display formats the elapsed ticks. Negative values only appear when the key
// is held past the whole countdown; their sign is rendered separately.
func display(elapsed int) string {
	out, err := timer.FormatTicks(elapsed)
	if err != nil {
		logrus.WithField("elapsed", elapsed).Debug("countdown overrun")
		return timer.FormatSigned(elapsed)
	}
	return out
}

// Remaining returns the fraction of the countdown still left, in [0, 1].
// It is 1 while paused and 0 once counting up.
func (s Snapshot) Remaining() float64 {
	switch s.Phase {
	case timer.Paused:
		return 1
	case timer.CountingDown:
		if s.StartTicks <= 0 || s.Elapsed <= 0 {
			return 0
		}
		r := float64(s.Elapsed) / float64(s.StartTicks)
		if r > 1 {
			r = 1
		}
		return r
	default:
		return 0
	}
}
