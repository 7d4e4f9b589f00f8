package timer

import (
	"errors"
	"strconv"
)

// ErrNegativeTicks is returned when formatting a tick count below zero.
var ErrNegativeTicks = errors.New("negative tick count")

// FormatTicks renders ticks as seconds with two decimals, one tick being a
// hundredth of a second: 1500 -> "15.00", 5 -> "0.05", 0 -> "0.00".
func FormatTicks(ticks int) (string, error) {
	if ticks < 0 {
		return "", ErrNegativeTicks
	}
	s := strconv.Itoa(ticks)
	switch len(s) {
	case 1:
		return "0.0" + s, nil
	case 2:
		return "0." + s, nil
	default:
		return s[:len(s)-2] + "." + s[len(s)-2:], nil
	}
}

// FormatSigned renders negative tick counts with the sign kept apart from the magnitude.
func FormatSigned(ticks int) string {
	if ticks >= 0 {
		s, _ := FormatTicks(ticks)
		return s
	}
	s, _ := FormatTicks(-ticks)
	return "-" + s
}
