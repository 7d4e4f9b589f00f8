// Package scheduler drives the dashboard state at a fixed tick cadence.
//
// Key commands are dispatched as they arrive. The primary key only raises a
// per-tick flag; the timer sees that flag once, when the tick boundary is
// reached. All methods must be called from a single goroutine.
package scheduler

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/holdclock/internal/dashboard"
	"github.com/ensigniasec/holdclock/internal/timer"
)

// TickInterval is the reference cadence. One tick is one hundredth of a second
// on the timer display.
const TickInterval = 10 * time.Millisecond

// Command is a logical input command.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdMoveUp
	CmdMoveDown
	CmdClearSelection
	CmdPrimary
	CmdResetTimer
)

func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdQuit:
		return "quit"
	case CmdMoveUp:
		return "move-selection-up"
	case CmdMoveDown:
		return "move-selection-down"
	case CmdClearSelection:
		return "clear-selection"
	case CmdPrimary:
		return "primary-key-assert"
	case CmdResetTimer:
		return "reset-timer"
	default:
		return "unknown"
	}
}

// Scheduler tracks the tick boundary and the per-tick key assertion flag.
type Scheduler struct {
	interval    time.Duration
	clock       Clock
	lastTick    time.Time
	keyAsserted bool
	ticks       uint64
}

// New returns a Scheduler whose first tick boundary is one interval from now.
func New(interval time.Duration, clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock
	}
	if interval <= 0 {
		interval = TickInterval
	}
	return &Scheduler{interval: interval, clock: clock, lastTick: clock.Now()}
}

// Interval returns the tick interval.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// Ticks returns the number of tick boundaries processed so far.
func (s *Scheduler) Ticks() uint64 { return s.ticks }

// KeyAsserted reports whether the primary key was seen during the current tick.
func (s *Scheduler) KeyAsserted() bool { return s.keyAsserted }

// Remaining returns the time left until the next tick boundary, floored at zero.
// It bounds how long the caller may wait for input.
func (s *Scheduler) Remaining() time.Duration {
	left := s.interval - s.clock.Now().Sub(s.lastTick)
	if left < 0 {
		return 0
	}
	return left
}

// Dispatch applies cmd to st and reports whether the loop should stop.
func (s *Scheduler) Dispatch(st *dashboard.State, cmd Command) (quit bool) {
	switch cmd {
	case CmdQuit:
		logrus.Debug("quit requested")
		return true
	case CmdMoveUp:
		st.Items.Previous()
	case CmdMoveDown:
		st.Items.Next()
	case CmdClearSelection:
		st.Items.Clear()
	case CmdPrimary:
		s.keyAsserted = true
	case CmdResetTimer:
		st.Timer.Reset()
		logrus.Debug("timer reset")
	case CmdNone:
	}
	return false
}

// Poll advances the timer once if the tick boundary has been reached and
// reports whether it did. Missed boundaries are not replayed: one call
// advances at most one tick and restarts the interval from now.
func (s *Scheduler) Poll(st *dashboard.State) bool {
	now := s.clock.Now()
	if now.Sub(s.lastTick) < s.interval {
		return false
	}

	before := st.Timer.State()
	st.Timer.Advance(s.keyAsserted)
	after := st.Timer.State()

	s.keyAsserted = false
	s.lastTick = now
	s.ticks++

	if before.Phase != after.Phase {
		logPhaseChange(before, after, s.ticks)
	}
	return true
}

func logPhaseChange(before, after timer.State, tick uint64) {
	logrus.WithFields(logrus.Fields{
		"from":    before.Phase.String(),
		"to":      after.Phase.String(),
		"elapsed": before.Elapsed,
		"tick":    tick,
	}).Debug("timer phase changed")
}
