package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/finboard/internal/domain"
	"github.com/riordanpawley/finboard/internal/types"
)

// Styles holds all the UI styles
type Styles struct {
	// Header and totals
	Title        lipgloss.Style
	MonthLabel   lipgloss.Style
	SummaryBox   lipgloss.Style
	SummaryLabel lipgloss.Style

	// Transaction table
	TableHeader lipgloss.Style
	Row         lipgloss.Style
	RowActive   lipgloss.Style
	Date        lipgloss.Style
	Category    lipgloss.Style
	Note        lipgloss.Style
	Income      lipgloss.Style
	Expense     lipgloss.Style
	Empty       lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Overlays
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
	MenuKey      lipgloss.Style
	Separator    lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true),

		MonthLabel: lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true).
			Padding(0, 1),

		SummaryBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1).
			MarginRight(1),

		SummaryLabel: lipgloss.NewStyle().
			Foreground(Subtext0),

		TableHeader: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true),

		Row: lipgloss.NewStyle().
			Foreground(Text),

		RowActive: lipgloss.NewStyle().
			Foreground(Text).
			Background(Surface0).
			Bold(true),

		Date: lipgloss.NewStyle().
			Foreground(Overlay1),

		Category: lipgloss.NewStyle().
			Foreground(Teal),

		Note: lipgloss.NewStyle().
			Foreground(Text),

		Income: lipgloss.NewStyle().
			Foreground(Green),

		Expense: lipgloss.NewStyle().
			Foreground(Red),

		Empty: lipgloss.NewStyle().
			Foreground(Overlay0).
			Italic(true).
			Padding(1, 2),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		MenuKey: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(Surface1),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}

// Amount returns the style for a transaction type
func (s *Styles) Amount(t domain.TxType) lipgloss.Style {
	if t == domain.TypeIncome {
		return s.Income
	}
	return s.Expense
}

// Toast returns the style for a toast severity
func (s *Styles) Toast(sev types.Severity) lipgloss.Style {
	switch sev {
	case types.SeveritySuccess:
		return s.ToastSuccess
	case types.SeverityError:
		return s.ToastError
	default:
		return s.ToastInfo
	}
}
