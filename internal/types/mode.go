// Package types contains shared types used across the application.
package types

// Mode represents where keyboard focus is
type Mode int

const (
	// ModeNormal routes keys to the global shortcuts
	ModeNormal Mode = iota
	// ModeSearch means focus is in the search input
	ModeSearch
	// ModeDialog means a modal dialog owns the keyboard
	ModeDialog
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeSearch:
		return "SEARCH"
	case ModeDialog:
		return "DIALOG"
	default:
		return "UNKNOWN"
	}
}

// IsTextEntry reports whether keystrokes belong to a text input
func (m Mode) IsTextEntry() bool {
	return m == ModeSearch
}
