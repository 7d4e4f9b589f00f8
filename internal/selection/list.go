package selection

// List is an ordered, fixed sequence of items with an optional cursor.
// The cursor is either unset or a valid index into the items.
type List[T any] struct {
	items    []T
	selected int
	active   bool
}

// New returns a List over items with no selection. The slice is copied.
func New[T any](items []T) *List[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return &List[T]{items: cp}
}

// Items returns a copy of the items in insertion order.
func (l *List[T]) Items() []T {
	cp := make([]T, len(l.items))
	copy(cp, l.items)
	return cp
}

// Len returns the number of items.
func (l *List[T]) Len() int { return len(l.items) }

// Selected returns the selected index and whether a selection exists.
func (l *List[T]) Selected() (int, bool) {
	return l.selected, l.active
}

// Next moves the selection forward, wrapping from the last item to the first.
// With no selection it selects the first item. No-op on an empty list.
func (l *List[T]) Next() {
	n := len(l.items)
	if n == 0 {
		return
	}
	if !l.active {
		l.selectIndex(0)
		return
	}
	l.selectIndex((l.selected + 1) % n)
}

// Previous moves the selection backward, wrapping from the first item to the last.
// With no selection it selects the first item. No-op on an empty list.
func (l *List[T]) Previous() {
	n := len(l.items)
	if n == 0 {
		return
	}
	if !l.active {
		l.selectIndex(0)
		return
	}
	if l.selected == 0 {
		l.selectIndex(n - 1)
		return
	}
	l.selectIndex(l.selected - 1)
}

// Clear drops the selection.
func (l *List[T]) Clear() {
	l.selected = 0
	l.active = false
}

func (l *List[T]) selectIndex(i int) {
	l.selected = i
	l.active = true
}
