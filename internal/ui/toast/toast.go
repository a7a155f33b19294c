// Package toast renders the page-wide toast message.
package toast

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/finboard/internal/types"
	"github.com/riordanpawley/finboard/internal/ui/styles"
)

// ToastRenderer handles rendering of the toast
type ToastRenderer struct {
	styles *styles.Styles
}

// New creates a new ToastRenderer with the given styles
func New(styles *styles.Styles) *ToastRenderer {
	return &ToastRenderer{
		styles: styles,
	}
}

// Render renders the toast right-aligned within width.
// Returns empty string when the toast is hidden.
func (r *ToastRenderer) Render(state types.ToastState, width int) string {
	if !state.Visible || state.Message == "" {
		return ""
	}

	toastWidth := width / 3
	if toastWidth > 40 {
		toastWidth = 40 // Cap maximum toast width
	}
	if toastWidth < 20 {
		toastWidth = 20
	}

	box := r.styles.Toast(state.Severity).Width(toastWidth).Render(icon(state.Severity) + " " + state.Message)
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, box)
}

func icon(sev types.Severity) string {
	switch sev {
	case types.SeveritySuccess:
		return "✓"
	case types.SeverityError:
		return "✗"
	default:
		return "ℹ"
	}
}
