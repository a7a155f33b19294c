// Package overlay implements modal components drawn above the dashboard.
//
// Overlays never close themselves. They emit CloseOverlayMsg and the app,
// which owns the Stack, decides what to pop.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg asks the app to close the top overlay
type CloseOverlayMsg struct{}

// SelectionMsg is sent when a choice is made in an overlay
type SelectionMsg struct {
	Key   string
	Value any
}

// Close is a command emitting CloseOverlayMsg
func Close() tea.Msg {
	return CloseOverlayMsg{}
}
