package ledger

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/finboard/internal/domain"
	"github.com/riordanpawley/finboard/internal/format"
	"github.com/riordanpawley/finboard/internal/ui/styles"
)

// RenderSummary renders the month header with income, expense and balance boxes
func RenderSummary(month domain.Month, sum domain.Summary, s *styles.Styles) string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		s.Title.Render("finboard"),
		s.MonthLabel.Render("◀ "+month.Label()+" ▶"),
		s.SummaryLabel.Render(fmt.Sprintf("%s transaksi", format.FormatNumber(float64(sum.Count)))),
	)

	balanceStyle := s.Income
	if sum.Balance().IsNegative() {
		balanceStyle = s.Expense
	}

	boxes := lipgloss.JoinHorizontal(lipgloss.Top,
		box(s, "Pemasukan", s.Income.Render(format.FormatAmount(sum.Income))),
		box(s, "Pengeluaran", s.Expense.Render(format.FormatAmount(sum.Expense))),
		box(s, "Saldo", balanceStyle.Render(format.FormatAmount(sum.Balance()))),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, boxes)
}

func box(s *styles.Styles, label, value string) string {
	return s.SummaryBox.Render(s.SummaryLabel.Render(label) + "\n" + value)
}

// SummaryText is the plain-text month summary used for the clipboard and
// notifications
func SummaryText(month domain.Month, sum domain.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ringkasan %s\n", month.Label())
	fmt.Fprintf(&b, "Pemasukan: %s\n", format.FormatAmount(sum.Income))
	fmt.Fprintf(&b, "Pengeluaran: %s\n", format.FormatAmount(sum.Expense))
	fmt.Fprintf(&b, "Saldo: %s", format.FormatAmount(sum.Balance()))
	return b.String()
}
