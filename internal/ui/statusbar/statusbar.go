package statusbar

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/finboard/internal/format"
	"github.com/riordanpawley/finboard/internal/types"
	"github.com/riordanpawley/finboard/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode     types.Mode
	width    int
	styles   *styles.Styles
	month    string
	loadedAt time.Time
	now      time.Time
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithMonth sets the month label shown on the right
func (sb StatusBar) WithMonth(label string) StatusBar {
	sb.month = label
	return sb
}

// WithLoaded sets when data was last loaded, rendered relative to now
func (sb StatusBar) WithLoaded(loadedAt, now time.Time) StatusBar {
	sb.loadedAt = loadedAt
	sb.now = now
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	// Mode badge
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")

	parts := []string{modeBadge}
	separator := sb.styles.StatusHint.Render(" │ ")

	if sb.month != "" {
		parts = append(parts, separator, sb.styles.StatusInfo.Render(sb.month))
	}
	if !sb.loadedAt.IsZero() {
		parts = append(parts, separator,
			sb.styles.StatusInfo.Render("diperbarui "+format.FormatRelativeTime(sb.loadedAt, sb.now)))
	}

	// Keybinding hints
	if hints := GetHints(sb.mode); hints != "" {
		parts = append(parts, separator, sb.styles.StatusHint.Render(hints))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)

	// Apply status bar style and fill width
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
