// Package clock abstracts wall-clock time and timers so that timer-driven UI
// behaviour (toast auto-hide, debounced search) can be driven by tests.
package clock

import "time"

// Clock provides the current time and one-shot timers
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable pending call created by AfterFunc
type Timer interface {
	// Stop prevents the timer from firing. It returns false if the timer
	// already fired or was already stopped.
	Stop() bool
}

// Real is a Clock backed by the time package
type Real struct{}

// New returns the wall clock
func New() Real {
	return Real{}
}

// Now returns time.Now()
func (Real) Now() time.Time {
	return time.Now()
}

// AfterFunc calls f in its own goroutine after d
func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
