package cli

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"text/tabwriter"

	"github.com/riordanpawley/finboard/internal/config"
	"github.com/riordanpawley/finboard/internal/domain"
	"github.com/riordanpawley/finboard/internal/format"
	"github.com/riordanpawley/finboard/internal/services/export"
	"github.com/riordanpawley/finboard/internal/services/ledger"
)

// Dependencies holds all the services needed for CLI commands
type Dependencies struct {
	Config   *config.Config
	Ledger   *ledger.Service
	Exporter *export.Exporter
	Logger   *slog.Logger
}

// NewDependencies creates a new Dependencies instance with all required services
func NewDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	return &Dependencies{
		Config:   cfg,
		Ledger:   ledger.NewService(cfg.ResolvePath(cfg.Data.Transactions), logger),
		Exporter: export.NewExporter(cfg.ResolvePath(cfg.Export.Dir), cfg.Export.Filename, logger),
		Logger:   logger,
	}
}

// monthTransactions loads the transactions of month, oldest first
func (d *Dependencies) monthTransactions(month domain.Month) ([]domain.Transaction, error) {
	txs, err := d.Ledger.Load()
	if err != nil {
		return nil, err
	}

	f := domain.Filter{Month: month}
	s := domain.Sort{Field: domain.SortByDate, Order: domain.SortAsc}
	return s.Apply(f.Apply(txs)), nil
}

// ExportCommand writes the transactions of month to a CSV file in the export
// directory. filename may be empty to use the configured name.
func ExportCommand(deps *Dependencies, month domain.Month, filename string, w io.Writer) error {
	deps.Logger.Info("exporting transactions", "month", month.String())

	txs, err := deps.monthTransactions(month)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	path, err := deps.Exporter.Download(ledger.Records(txs), filename)
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	if path == "" {
		fmt.Fprintf(w, "Tidak ada transaksi pada %s\n", month.Label())
		return nil
	}

	fmt.Fprintf(w, "✓ %s transaksi diekspor ke %s\n", format.FormatNumber(float64(len(txs))), path)
	return nil
}

// SummaryCommand prints the totals of month and its expenses per category
func SummaryCommand(deps *Dependencies, month domain.Month, w io.Writer) error {
	deps.Logger.Info("summarizing transactions", "month", month.String())

	txs, err := deps.monthTransactions(month)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	sum := domain.Summarize(txs)

	fmt.Fprintf(w, "Ringkasan %s (%s transaksi)\n\n", month.Label(), format.FormatNumber(float64(sum.Count)))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Pemasukan\t%s\n", format.FormatAmount(sum.Income))
	fmt.Fprintf(tw, "Pengeluaran\t%s\n", format.FormatAmount(sum.Expense))
	fmt.Fprintf(tw, "Saldo\t%s\n", format.FormatAmount(sum.Balance()))
	if err := tw.Flush(); err != nil {
		return err
	}

	categories := expensesByCategory(txs)
	if len(categories) == 0 {
		return nil
	}

	fmt.Fprintf(w, "\nPengeluaran per kategori:\n\n")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KATEGORI\tTRANSAKSI\tJUMLAH")
	fmt.Fprintln(tw, "--------\t---------\t------")
	for _, c := range categories {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", c.name, c.count, format.FormatAmount(c.total.Expense))
	}
	return tw.Flush()
}

type categoryTotal struct {
	name  string
	count int
	total domain.Summary
}

// expensesByCategory groups expenses by category, largest first
func expensesByCategory(txs []domain.Transaction) []categoryTotal {
	byName := make(map[string][]domain.Transaction)
	for _, tx := range txs {
		if tx.Type != domain.TypeExpense {
			continue
		}
		name := tx.CategoryName
		if name == "" {
			name = "(tanpa kategori)"
		}
		byName[name] = append(byName[name], tx)
	}

	out := make([]categoryTotal, 0, len(byName))
	for name, group := range byName {
		out = append(out, categoryTotal{name: name, count: len(group), total: domain.Summarize(group)})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].total.Expense.Equal(out[j].total.Expense) {
			return out[i].total.Expense.GreaterThan(out[j].total.Expense)
		}
		return out[i].name < out[j].name
	})
	return out
}
