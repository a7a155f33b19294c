package app

import (
	"github.com/charmbracelet/lipgloss"
	ledgerview "github.com/riordanpawley/finboard/internal/ui/ledger"
	"github.com/riordanpawley/finboard/internal/ui/statusbar"
	toastview "github.com/riordanpawley/finboard/internal/ui/toast"
)

// minTableHeight keeps the header, separator and one row visible
const minTableHeight = 3

// View renders the dashboard, the open overlay and the toast
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Memuat..."
	}

	// Show loading spinner if loading
	if m.loading {
		return m.renderLoading()
	}

	month := m.editor.Month()
	statusBarView := statusbar.New(m.editor.GetMode(), m.width, m.styles).
		WithMonth(month.Label()).
		WithLoaded(m.loadedAt, m.now()).
		Render()

	// Rows drawn between the body and the status bar
	var bottom []string

	current := m.overlayStack.Current()
	var modal string
	if current != nil {
		overlayWidth, overlayHeight := current.Size()

		// Width 0 means full width (the search bar)
		if overlayWidth == 0 {
			bottom = append(bottom, current.View())
		} else {
			overlayView := current.View()
			if title := current.Title(); title != "" {
				overlayView = lipgloss.JoinVertical(lipgloss.Left,
					m.styles.OverlayTitle.Render(title), overlayView)
			}
			modal = m.styles.Overlay.
				Width(overlayWidth).
				Height(overlayHeight).
				Render(overlayView)
		}
	}

	toastView := toastview.New(m.styles).Render(m.toasts.State(), m.width)
	if toastView != "" {
		bottom = append(bottom, toastView)
	}

	bodyHeight := m.height - lipgloss.Height(statusBarView)
	for _, b := range bottom {
		bodyHeight -= lipgloss.Height(b)
	}
	bodyHeight = max(bodyHeight, 1)

	var body string
	if modal != "" {
		// The modal replaces the dashboard, centered in the body area
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, modal)
	} else {
		body = m.renderDashboard(bodyHeight)
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	parts := append([]string{body}, bottom...)
	parts = append(parts, statusBarView)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderDashboard renders the month summary above the transactions table
func (m Model) renderDashboard(height int) string {
	summary := ledgerview.RenderSummary(m.editor.Month(), m.monthSummary(), m.styles)

	tableHeight := max(height-lipgloss.Height(summary), minTableHeight)
	table := ledgerview.NewTableView(m.rows, m.width, tableHeight, m.styles)
	table.SetCursor(m.cursor())

	return lipgloss.JoinVertical(lipgloss.Left, summary, table.Render())
}

// renderLoading renders a centered loading spinner with message
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.spinner.View(),
		"Memuat transaksi...",
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}
