// Package ledger loads the read-only transactions file shown by the dashboard.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/riordanpawley/finboard/internal/domain"
	"github.com/riordanpawley/finboard/internal/services/export"
)

// Columns are the CSV columns produced by Records
var Columns = []string{"id", "date", "type", "category", "note", "amount"}

// Service reads transactions from a JSON file
type Service struct {
	path   string
	logger *slog.Logger
}

// NewService creates a ledger reading from path
func NewService(path string, logger *slog.Logger) *Service {
	return &Service{path: path, logger: logger}
}

// Path returns the transactions file path
func (s *Service) Path() string {
	return s.path
}

// Load reads all transactions
func (s *Service) Load() ([]domain.Transaction, error) {
	s.logger.Debug("loading transactions", "path", s.path)
	txs, err := Load(s.path)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("transactions loaded", "path", s.path, "count", len(txs))
	return txs, nil
}

// Load reads a JSON array of transactions from path. A missing file yields a
// LedgerError wrapping domain.ErrNotFound.
func Load(path string) ([]domain.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.LedgerError{Op: "open", Path: path, Err: domain.ErrNotFound}
		}
		return nil, &domain.LedgerError{Op: "open", Path: path, Err: err}
	}

	var txs []domain.Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, &domain.LedgerError{
			Op:   "decode",
			Path: path,
			Err:  fmt.Errorf("%w: %v", domain.ErrInvalidData, err),
		}
	}
	return txs, nil
}

// Records converts transactions to export rows. Amounts are signed so an
// expense exports as a negative number.
func Records(txs []domain.Transaction) []export.Record {
	records := make([]export.Record, 0, len(txs))
	for _, tx := range txs {
		records = append(records, export.Record{
			{Name: "id", Value: tx.ID},
			{Name: "date", Value: tx.Date},
			{Name: "type", Value: string(tx.Type)},
			{Name: "category", Value: tx.CategoryName},
			{Name: "note", Value: tx.Note},
			{Name: "amount", Value: tx.Signed()},
		})
	}
	return records
}
