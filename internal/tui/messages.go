package tui

import "time"

// Message types for Bubble Tea update loop.

// tickMsg fires when the wait for the next tick boundary ends.
type tickMsg struct{ At time.Time }
