// Package debounce coalesces bursts of calls into a single delayed call.
package debounce

import (
	"sync"
	"time"

	"github.com/riordanpawley/finboard/internal/clock"
)

// DefaultWait is used when a non-positive wait is given
const DefaultWait = 300 * time.Millisecond

// Debouncer delays calls to fn until wait has elapsed without a new Call.
// Only the value of the last Call is delivered.
type Debouncer[T any] struct {
	clock clock.Clock
	wait  time.Duration
	fn    func(T)

	mu      sync.Mutex
	gen     uint64
	timer   clock.Timer
	pending bool
	value   T
}

// New creates a Debouncer that calls fn on clk's timers
func New[T any](clk clock.Clock, wait time.Duration, fn func(T)) *Debouncer[T] {
	if wait <= 0 {
		wait = DefaultWait
	}
	return &Debouncer[T]{
		clock: clk,
		wait:  wait,
		fn:    fn,
	}
}

// Wait returns the quiet period
func (d *Debouncer[T]) Wait() time.Duration {
	return d.wait
}

// Call records v and restarts the quiet period
func (d *Debouncer[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.value = v
	d.pending = true
	d.timer = d.clock.AfterFunc(d.wait, func() { d.fire(gen) })
}

// Cancel drops the pending call, if any
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resetLocked()
}

// Flush runs the pending call immediately. It reports whether there was one.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	v := d.value
	d.resetLocked()
	d.mu.Unlock()

	d.fn(v)
	return true
}

// Pending reports whether a call is waiting for the quiet period to end
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// fire runs when a timer expires; timers superseded by a later Call, Cancel
// or Flush carry an old generation and do nothing.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || !d.pending {
		d.mu.Unlock()
		return
	}
	v := d.value
	d.pending = false
	d.timer = nil
	var zero T
	d.value = zero
	d.mu.Unlock()

	d.fn(v)
}

func (d *Debouncer[T]) resetLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.pending = false
	var zero T
	d.value = zero
}
