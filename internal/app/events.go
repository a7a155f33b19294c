package app

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// eventBuffer is how many background messages may queue before new ones are dropped
const eventBuffer = 64

// Events carries messages produced outside the Bubble Tea loop (toast timers,
// the search debouncer, the notification prompter) into Update.
type Events struct {
	ch     chan tea.Msg
	logger *slog.Logger
}

// eventMsg wraps a message received from Events so Update knows to re-arm
// the listener after handling it
type eventMsg struct {
	msg tea.Msg
}

// NewEvents creates a bus holding up to size pending messages
func NewEvents(size int, logger *slog.Logger) *Events {
	return &Events{
		ch:     make(chan tea.Msg, size),
		logger: logger,
	}
}

// Send queues msg without blocking. It reports false when the bus is full
// and msg was dropped.
func (e *Events) Send(msg tea.Msg) bool {
	select {
	case e.ch <- msg:
		return true
	default:
		e.logger.Warn("event dropped, bus full", "type", fmt.Sprintf("%T", msg))
		return false
	}
}

// Listen waits for the next message. Update must call it again after each
// eventMsg to keep receiving.
func (e *Events) Listen() tea.Cmd {
	return func() tea.Msg {
		return eventMsg{msg: <-e.ch}
	}
}
