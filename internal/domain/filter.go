package domain

import "strings"

// Filter represents transaction filtering state
type Filter struct {
	Month       Month // zero means all months
	Type        map[TxType]bool
	SearchQuery string
}

// NewFilter creates a new empty filter
func NewFilter() *Filter {
	return &Filter{
		Type: make(map[TxType]bool),
	}
}

// IsActive returns true if any filter is active
func (f *Filter) IsActive() bool {
	return !f.Month.IsZero() ||
		len(f.Type) > 0 ||
		f.SearchQuery != ""
}

// Apply filters a list of transactions
func (f *Filter) Apply(txs []Transaction) []Transaction {
	if !f.IsActive() {
		return txs
	}

	result := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.Matches(tx) {
			result = append(result, tx)
		}
	}
	return result
}

// Matches returns true if the transaction passes all active filters
// Uses AND logic between filter types, OR logic within filter types
func (f *Filter) Matches(tx Transaction) bool {
	if !f.Month.IsZero() && !f.Month.Contains(tx.Day()) {
		return false
	}

	// Type filter (OR within)
	if len(f.Type) > 0 {
		if !f.Type[tx.Type] {
			return false
		}
	}

	// Search query (case-insensitive, matches note or category)
	if f.SearchQuery != "" {
		query := strings.ToLower(strings.TrimSpace(f.SearchQuery))
		note := strings.ToLower(tx.Note)
		category := strings.ToLower(tx.CategoryName)

		if !strings.Contains(note, query) && !strings.Contains(category, query) {
			return false
		}
	}

	return true
}

// Clear resets all filters except the month
func (f *Filter) Clear() {
	f.Type = make(map[TxType]bool)
	f.SearchQuery = ""
}

// ToggleType toggles a type filter
func (f *Filter) ToggleType(t TxType) {
	if f.Type[t] {
		delete(f.Type, t)
	} else {
		f.Type[t] = true
	}
}
