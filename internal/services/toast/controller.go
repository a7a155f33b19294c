// Package toast owns the single page-wide toast and its auto-hide timer.
package toast

import (
	"log/slog"
	"sync"
	"time"

	"github.com/riordanpawley/finboard/internal/clock"
	"github.com/riordanpawley/finboard/internal/types"
)

// DefaultDuration is how long a toast stays visible when no duration is given
const DefaultDuration = 3 * time.Second

// Controller holds the toast state. A new Show replaces the current toast
// (no queueing) and restarts the hide timer.
type Controller struct {
	clock    clock.Clock
	duration time.Duration
	onChange func(types.ToastState)
	logger   *slog.Logger

	mu    sync.Mutex
	state types.ToastState
	timer clock.Timer
}

// Option configures a Controller
type Option func(*Controller)

// WithDefaultDuration sets the duration used when Show gets a non-positive one
func WithDefaultDuration(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.duration = d
		}
	}
}

// WithOnChange registers a callback run after every state change.
// It is called outside the controller lock, possibly from a timer goroutine.
func WithOnChange(fn func(types.ToastState)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// NewController creates a hidden toast controller
func NewController(clk clock.Clock, opts ...Option) *Controller {
	c := &Controller{
		clock:    clk,
		duration: DefaultDuration,
		logger:   slog.Default(),
		state:    types.ToastState{Severity: types.SeverityInfo},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Show displays message for d (DefaultDuration when d <= 0).
// Unknown severities are shown as info.
func (c *Controller) Show(message string, severity types.Severity, d time.Duration) {
	if d <= 0 {
		d = c.duration
	}
	if !severity.Valid() {
		c.logger.Debug("unknown toast severity, using info", "severity", severity)
		severity = types.SeverityInfo
	}

	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
	}
	seq := c.state.Seq + 1
	c.state = types.ToastState{
		Visible:   true,
		Message:   message,
		Severity:  severity,
		ExpiresAt: c.clock.Now().Add(d),
		Seq:       seq,
	}
	c.timer = c.clock.AfterFunc(d, func() { c.expire(seq) })
	state := c.state
	c.mu.Unlock()

	c.logger.Debug("toast shown", "severity", severity, "seq", seq, "duration", d)
	c.notify(state)
}

// Info shows an info toast for the default duration
func (c *Controller) Info(message string) {
	c.Show(message, types.SeverityInfo, 0)
}

// Success shows a success toast for the default duration
func (c *Controller) Success(message string) {
	c.Show(message, types.SeveritySuccess, 0)
}

// Error shows an error toast for the default duration
func (c *Controller) Error(message string) {
	c.Show(message, types.SeverityError, 0)
}

// Dismiss hides the toast now
func (c *Controller) Dismiss() {
	c.mu.Lock()
	if !c.state.Visible {
		c.mu.Unlock()
		return
	}
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.state.Visible = false
	state := c.state
	c.mu.Unlock()

	c.notify(state)
}

// State returns a snapshot of the toast
func (c *Controller) State() types.ToastState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// expire hides the toast shown as seq. A timer that was superseded by a
// newer Show finds a different seq and leaves the state alone.
func (c *Controller) expire(seq uint64) {
	c.mu.Lock()
	if c.state.Seq != seq || !c.state.Visible {
		c.mu.Unlock()
		c.logger.Debug("stale toast timer ignored", "seq", seq)
		return
	}
	c.state.Visible = false
	c.timer = nil
	state := c.state
	c.mu.Unlock()

	c.notify(state)
}

func (c *Controller) notify(state types.ToastState) {
	if c.onChange != nil {
		c.onChange(state)
	}
}
