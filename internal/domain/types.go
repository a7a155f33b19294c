// Package domain contains core business types for the finance dashboard.
package domain

import (
	"time"

	"github.com/riordanpawley/finboard/internal/format"
	"github.com/shopspring/decimal"
)

// TxType tells income from expense
type TxType string

const (
	TypeIncome  TxType = "income"
	TypeExpense TxType = "expense"
)

// Valid reports whether t is a known transaction type
func (t TxType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is one income or expense entry, in the dashboard API shape
type Transaction struct {
	ID            int             `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Note          string          `json:"note"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Type          TxType          `json:"type"`
	CategoryID    int             `json:"category_id"`
	CategoryName  string          `json:"category_name,omitempty"`
	CategoryColor string          `json:"category_color,omitempty"`
	CategoryIcon  string          `json:"category_icon,omitempty"`
}

// Day parses the transaction date; the zero time is returned for bad dates
func (t Transaction) Day() time.Time {
	d, err := format.ParseDate(t.Date)
	if err != nil {
		return time.Time{}
	}
	return d
}

// Signed returns the amount, negated for expenses
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Summary aggregates the transactions of a period
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Count   int
}

// Balance is income minus expense
func (s Summary) Balance() decimal.Decimal {
	return s.Income.Sub(s.Expense)
}

// Summarize totals income and expense. Entries with an unknown type are counted
// but not totalled.
func Summarize(txs []Transaction) Summary {
	s := Summary{Income: decimal.Zero, Expense: decimal.Zero}
	for _, tx := range txs {
		s.Count++
		switch tx.Type {
		case TypeIncome:
			s.Income = s.Income.Add(tx.Amount)
		case TypeExpense:
			s.Expense = s.Expense.Add(tx.Amount)
		}
	}
	return s
}
