//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectedOf[T any](t *testing.T, l *List[T]) int {
	t.Helper()
	idx, ok := l.Selected()
	require.True(t, ok, "expected a selection")
	return idx
}

func TestList_StartsUnselected(t *testing.T) {
	l := New([]string{"a", "b", "c"})
	_, ok := l.Selected()
	assert.False(t, ok)
	assert.Equal(t, 3, l.Len())
}

func TestList_NextAndPreviousFromNoneSelectFirst(t *testing.T) {
	l := New([]string{"a", "b", "c"})
	l.Next()
	assert.Equal(t, 0, selectedOf(t, l))

	l.Clear()
	l.Previous()
	assert.Equal(t, 0, selectedOf(t, l))
}

func TestList_NextWrapsAfterLenCalls(t *testing.T) {
	for n := 1; n <= 7; n++ {
		items := make([]int, n)
		l := New(items)
		// First call selects 0; n more calls cycle back to 0.
		l.Next()
		for i := 0; i < n; i++ {
			l.Next()
		}
		assert.Equal(t, 0, selectedOf(t, l), "n=%d", n)
	}
}

func TestList_LenNextCallsFromNoneReachLast(t *testing.T) {
	l := New([]string{"a", "b", "c", "d"})
	for i := 0; i < l.Len(); i++ {
		l.Next()
	}
	assert.Equal(t, 3, selectedOf(t, l))
	l.Next()
	assert.Equal(t, 0, selectedOf(t, l))
}

func TestList_PreviousWrapsToLast(t *testing.T) {
	l := New([]string{"a", "b", "c"})
	l.Next()
	l.Previous()
	assert.Equal(t, 2, selectedOf(t, l))
	l.Previous()
	assert.Equal(t, 1, selectedOf(t, l))
}

func TestList_PreviousInvertsNext(t *testing.T) {
	l := New([]string{"a", "b", "c", "d", "e"})
	l.Next()
	for start := 0; start < l.Len(); start++ {
		l.selectIndex(start)
		l.Next()
		l.Previous()
		assert.Equal(t, start, selectedOf(t, l))

		l.Previous()
		l.Next()
		assert.Equal(t, start, selectedOf(t, l))
	}
}

func TestList_ClearIsIdempotent(t *testing.T) {
	l := New([]string{"a", "b"})
	l.Next()
	l.Next()
	for i := 0; i < 3; i++ {
		l.Clear()
		_, ok := l.Selected()
		assert.False(t, ok)
	}
}

func TestList_EmptyNavigationIsNoop(t *testing.T) {
	l := New[string](nil)
	require.NotPanics(t, func() {
		l.Next()
		l.Previous()
		l.Clear()
	})
	_, ok := l.Selected()
	assert.False(t, ok)
}

func TestList_ItemsPreserveOrderAndDuplicates(t *testing.T) {
	src := []string{"x", "y", "x"}
	l := New(src)
	src[0] = "mutated"
	assert.Equal(t, []string{"x", "y", "x"}, l.Items())

	got := l.Items()
	got[1] = "mutated"
	assert.Equal(t, []string{"x", "y", "x"}, l.Items())
}
