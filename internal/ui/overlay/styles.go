package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/finboard/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// MenuItem is the default menu item style
	MenuItem lipgloss.Style
	// MenuItemActive is the highlighted/selected menu item style
	MenuItemActive lipgloss.Style
	// MenuKey is the style for keybinding hints
	MenuKey lipgloss.Style
	// Footer is the style for overlay footer text
	Footer lipgloss.Style
	// Search is the full-width search bar
	Search lipgloss.Style
	// MatchCount is the result counter next to the search input
	MatchCount lipgloss.Style
}

// New creates a new Styles instance using the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		MenuItem: lipgloss.NewStyle().
			Foreground(styles.Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		MenuKey: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),

		Search: lipgloss.NewStyle().
			Foreground(styles.Text).
			Background(styles.Mantle),

		MatchCount: lipgloss.NewStyle().
			Foreground(styles.Overlay1).
			Background(styles.Mantle),
	}
}
