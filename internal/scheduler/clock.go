package scheduler

import "time"

// Clock provides the current time.
// This interface enables dependency injection for testing tick boundaries.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock implementation using the standard library.
//
//nolint:gochecknoglobals // stateless default implementation.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
