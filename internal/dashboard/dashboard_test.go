package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/holdclock/internal/dashboard"
	"github.com/ensigniasec/holdclock/internal/timer"
)

func newState() *dashboard.State {
	items := []dashboard.Item{{Label: "a", DetailLines: 1}, {Label: "b"}, {Label: "a", DetailLines: 2}}
	legend := []dashboard.LegendEntry{{Label: "Quit", Category: "q"}, {Label: "Boom", Category: "CRITICAL"}}
	return dashboard.NewState(items, legend, timer.NewDefault())
}

func TestSnapshot_Initial(t *testing.T) {
	snap := newState().Snapshot()

	assert.False(t, snap.HasSelection)
	assert.Len(t, snap.Items, 3)
	assert.Equal(t, "a", snap.Items[2].Label)
	assert.Len(t, snap.Legend, 2)
	assert.Equal(t, timer.Paused, snap.Phase)
	assert.Equal(t, "0.00", snap.Display)
	assert.InDelta(t, 1.0, snap.Remaining(), 1e-9)
}

func TestSnapshot_TracksSelectionAndTimer(t *testing.T) {
	st := newState()
	st.Items.Previous()
	st.Items.Previous()
	st.Timer.Advance(true)

	snap := st.Snapshot()
	require.True(t, snap.HasSelection)
	assert.Equal(t, 2, snap.Selected)
	assert.Equal(t, timer.CountingDown, snap.Phase)
	assert.Equal(t, "15.00", snap.Display)
	assert.InDelta(t, 1.0, snap.Remaining(), 1e-9)

	for i := 0; i < 750; i++ {
		st.Timer.Advance(true)
	}
	snap = st.Snapshot()
	assert.Equal(t, "7.50", snap.Display)
	assert.InDelta(t, 0.5, snap.Remaining(), 1e-9)
}

func TestSnapshot_IsDetached(t *testing.T) {
	st := newState()
	snap := st.Snapshot()
	snap.Items[0].Label = "changed"
	snap.Legend[0].Label = "changed"

	again := st.Snapshot()
	assert.Equal(t, "a", again.Items[0].Label)
	assert.Equal(t, "Quit", again.Legend[0].Label)
}

func TestSnapshot_NegativeElapsedKeepsSign(t *testing.T) {
	st := dashboard.NewState(nil, nil, timer.New(2, 60))
	for i := 0; i < 6; i++ {
		st.Timer.Advance(true)
	}
	snap := st.Snapshot()
	assert.Equal(t, -3, snap.Elapsed)
	assert.Equal(t, "-0.03", snap.Display)
	assert.InDelta(t, 0.0, snap.Remaining(), 1e-9)
}

func TestSnapshot_CountingUpRemainingIsZero(t *testing.T) {
	st := newState()
	st.Timer.Advance(true)
	for i := 0; i < 61; i++ {
		st.Timer.Advance(false)
	}
	snap := st.Snapshot()
	require.Equal(t, timer.CountingUp, snap.Phase)
	assert.InDelta(t, 0.0, snap.Remaining(), 1e-9)
}
