// Package ledger renders the month's transactions and totals.
package ledger

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/riordanpawley/finboard/internal/domain"
	"github.com/riordanpawley/finboard/internal/format"
	"github.com/riordanpawley/finboard/internal/ui/styles"
)

// Fixed column widths; the note column takes the rest
const (
	colCursor   = 2
	colDate     = 8
	colCategory = 16
	colAmount   = 16
	minNote     = 10
)

// EmptyMessage is shown when the month has no matching transactions
const EmptyMessage = "Belum ada transaksi bulan ini"

// TableView is a scrolling table of transactions
type TableView struct {
	txs    []domain.Transaction
	cursor int
	offset int
	styles *styles.Styles
	width  int
	height int
}

// NewTableView creates a table for txs fitting width x height (header included)
func NewTableView(txs []domain.Transaction, width, height int, s *styles.Styles) *TableView {
	return &TableView{
		txs:    txs,
		styles: s,
		width:  width,
		height: height,
	}
}

// Len returns the number of rows
func (tv *TableView) Len() int {
	return len(tv.txs)
}

// Cursor returns the active row
func (tv *TableView) Cursor() int {
	return tv.cursor
}

// SetCursor moves the active row, clamped to the table, and scrolls it into view
func (tv *TableView) SetCursor(index int) {
	switch {
	case index < 0 || len(tv.txs) == 0:
		tv.cursor = 0
	case index >= len(tv.txs):
		tv.cursor = len(tv.txs) - 1
	default:
		tv.cursor = index
	}

	rows := tv.visibleRows()
	if tv.cursor < tv.offset {
		tv.offset = tv.cursor
	} else if tv.cursor >= tv.offset+rows {
		tv.offset = tv.cursor - rows + 1
	}
}

// visibleRows is the body height: total minus header and separator
func (tv *TableView) visibleRows() int {
	return max(1, tv.height-2)
}

func (tv *TableView) noteWidth() int {
	return max(minNote, tv.width-colCursor-colDate-colCategory-colAmount)
}

// Render renders the visible part of the table
func (tv *TableView) Render() string {
	if len(tv.txs) == 0 {
		return tv.styles.Empty.Render(EmptyMessage)
	}

	var b strings.Builder
	b.WriteString(tv.renderHeader())
	b.WriteString("\n")
	b.WriteString(tv.styles.Separator.Render(strings.Repeat("─", max(tv.width, 1))))

	end := min(tv.offset+tv.visibleRows(), len(tv.txs))
	for i := tv.offset; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(tv.renderRow(i, tv.txs[i]))
	}

	return b.String()
}

func (tv *TableView) renderHeader() string {
	h := tv.styles.TableHeader
	cells := []string{
		h.Width(colCursor).Render(""),
		h.Width(colDate).Render("Tanggal"),
		h.Width(colCategory).Render("Kategori"),
		h.Width(tv.noteWidth()).Render("Catatan"),
		h.Width(colAmount).Align(lipgloss.Right).Render("Jumlah"),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (tv *TableView) renderRow(index int, tx domain.Transaction) string {
	rowStyle := tv.styles.Row
	indicator := "  "
	if index == tv.cursor {
		rowStyle = tv.styles.RowActive
		indicator = "▶ "
	}

	date := format.FormatDate(tx.Day(), format.WithDay(format.TwoDigit), format.WithMonth(format.Short), format.WithYear(format.Omit))
	category := tx.CategoryName
	if tx.CategoryIcon != "" {
		category = tx.CategoryIcon + " " + category
	}

	cells := []string{
		rowStyle.Width(colCursor).Render(indicator),
		tv.styles.Date.Inherit(rowStyle).Width(colDate).Render(truncate(date, colDate-1)),
		tv.styles.Category.Inherit(rowStyle).Width(colCategory).Render(truncate(category, colCategory-1)),
		rowStyle.Width(tv.noteWidth()).Render(truncate(tx.Note, tv.noteWidth()-1)),
		tv.styles.Amount(tx.Type).Inherit(rowStyle).Width(colAmount).Align(lipgloss.Right).
			Render(SignedAmount(tx)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// SignedAmount renders the amount with a leading + for income and - for expense
func SignedAmount(tx domain.Transaction) string {
	amount := format.FormatAmount(tx.Amount.Abs())
	if tx.Type == domain.TypeIncome {
		return "+" + amount
	}
	return "-" + amount
}

// truncate shortens s to width display cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
