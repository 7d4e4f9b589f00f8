// Package timer implements the press-and-hold countdown timer.
//
// Terminals deliver key presses, not key releases, and auto-repeat a held key
// at an OS-dependent rate. The timer therefore infers a release from a run of
// ticks with no key assertion that is longer than the expected repeat gap.
package timer

// Phase is the timer's current mode.
type Phase int

const (
	Paused Phase = iota
	CountingDown
	CountingUp
)

func (p Phase) String() string {
	switch p {
	case Paused:
		return "paused"
	case CountingDown:
		return "counting down"
	case CountingUp:
		return "counting up"
	default:
		return "unknown"
	}
}

// Reference values at the 10 ms tick cadence: 15.00 s countdown and a 600 ms release window.
const (
	DefaultStartTicks       = 1500
	DefaultReleaseThreshold = 60
)

// State is a read-only copy of the timer counters.
type State struct {
	Phase      Phase
	Elapsed    int
	SilenceRun uint
}

// Timer is the three-phase state machine. It is advanced exactly once per tick.
type Timer struct {
	startTicks       int
	releaseThreshold uint

	phase      Phase
	elapsed    int
	silenceRun uint
}

// New returns a paused timer. startTicks is the countdown start value and
// releaseThreshold the number of silent ticks tolerated before a release is inferred.
func New(startTicks int, releaseThreshold uint) *Timer {
	return &Timer{startTicks: startTicks, releaseThreshold: releaseThreshold}
}

// NewDefault returns a timer with the reference cadence values.
func NewDefault() *Timer {
	return New(DefaultStartTicks, DefaultReleaseThreshold)
}

// State returns the current counters.
func (t *Timer) State() State {
	return State{Phase: t.phase, Elapsed: t.elapsed, SilenceRun: t.silenceRun}
}

// StartTicks returns the countdown start value.
func (t *Timer) StartTicks() int { return t.startTicks }

// Advance applies one tick. keyAsserted reports whether the primary key was
// seen at least once since the previous tick.
func (t *Timer) Advance(keyAsserted bool) {
	switch t.phase {
	case CountingDown:
		t.elapsed--
	case CountingUp:
		t.elapsed++
	case Paused:
	}

	if keyAsserted {
		fresh := t.phase == Paused && t.silenceRun == 0
		t.silenceRun = 0
		if fresh {
			t.elapsed = t.startTicks
			t.phase = CountingDown
		}
		return
	}

	if t.phase != CountingDown {
		return
	}

	t.silenceRun++
	if t.silenceRun > t.releaseThreshold {
		t.silenceRun = 0
		t.elapsed = 0
		t.phase = CountingUp
	}
}

// Reset returns the timer to its initial paused state.
func (t *Timer) Reset() {
	t.phase = Paused
	t.elapsed = 0
	t.silenceRun = 0
}
