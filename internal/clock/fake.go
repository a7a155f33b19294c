package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake is a manually advanced Clock for tests.
// Timers fire synchronously inside Advance/Set, in deadline order.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	clock    *Fake
	deadline time.Time
	seq      int
	fn       func()
	done     bool
}

// NewFake creates a fake clock starting at start
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// Now returns the fake current time
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// AfterFunc registers fn to run once the fake time reaches now+d
func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	t := &fakeTimer{
		clock:    f,
		deadline: f.now.Add(d),
		seq:      f.seq,
		fn:       fn,
	}
	f.timers = append(f.timers, t)
	return t
}

// Advance moves the clock forward by d and fires every timer that became due
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	f.mu.Unlock()
	f.Set(target)
}

// Set moves the clock to t and fires every timer due at or before t.
// Timers scheduled by fired callbacks are honoured if they fall inside t.
func (f *Fake) Set(t time.Time) {
	for {
		f.mu.Lock()
		next := f.nextDue(t)
		if next == nil {
			if t.After(f.now) {
				f.now = t
			}
			f.mu.Unlock()
			return
		}
		next.done = true
		f.removeLocked(next)
		if next.deadline.After(f.now) {
			f.now = next.deadline
		}
		fn := next.fn
		f.mu.Unlock()

		fn()
	}
}

// Pending returns the number of timers that have not fired or been stopped
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.timers)
}

// nextDue returns the earliest timer due at or before t. Caller holds f.mu.
func (f *Fake) nextDue(t time.Time) *fakeTimer {
	if len(f.timers) == 0 {
		return nil
	}
	sort.SliceStable(f.timers, func(i, j int) bool {
		if f.timers[i].deadline.Equal(f.timers[j].deadline) {
			return f.timers[i].seq < f.timers[j].seq
		}
		return f.timers[i].deadline.Before(f.timers[j].deadline)
	})
	if f.timers[0].deadline.After(t) {
		return nil
	}
	return f.timers[0]
}

func (f *Fake) removeLocked(t *fakeTimer) {
	for i, other := range f.timers {
		if other == t {
			f.timers = append(f.timers[:i], f.timers[i+1:]...)
			return
		}
	}
}

// Stop implements Timer
func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	t.clock.removeLocked(t)
	return true
}
