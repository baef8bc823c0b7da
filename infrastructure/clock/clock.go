// Package clock provides implementations of the clock port.
package clock

import (
	"time"

	"mentcare/application/ports"
)

// SystemClock reads the wall clock
type SystemClock struct{}

// NewSystemClock creates a system clock
func NewSystemClock() SystemClock {
	return SystemClock{}
}

var _ ports.Clock = SystemClock{}

// Now returns the current wall-clock time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant. Tests use it to pin
// time-dependent rules.
type FixedClock struct {
	instant time.Time
}

// NewFixedClock creates a clock frozen at instant
func NewFixedClock(instant time.Time) FixedClock {
	return FixedClock{instant: instant}
}

var _ ports.Clock = FixedClock{}

// Now returns the frozen instant
func (c FixedClock) Now() time.Time {
	return c.instant
}
