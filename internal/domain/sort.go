package domain

import "sort"

// SortField represents a field to sort by
type SortField string

const (
	SortByDate   SortField = "date"
	SortByAmount SortField = "amount"
)

// SortOrder represents sort direction
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// Sort represents sorting state
type Sort struct {
	Field SortField
	Order SortOrder
}

// Toggle toggles the sort field or direction
// If field is different, sets new field with descending order
// If field is same, toggles between ascending and descending
func (s *Sort) Toggle(field SortField) {
	if s.Field == field {
		if s.Order == SortAsc {
			s.Order = SortDesc
		} else {
			s.Order = SortAsc
		}
	} else {
		s.Field = field
		s.Order = SortDesc
	}
}

// Apply sorts a copy of txs. Ties keep their input order.
func (s *Sort) Apply(txs []Transaction) []Transaction {
	if len(txs) == 0 {
		return txs
	}

	result := make([]Transaction, len(txs))
	copy(result, txs)

	switch s.Field {
	case SortByAmount:
		sort.SliceStable(result, func(i, j int) bool {
			if s.Order == SortAsc {
				return result[i].Amount.LessThan(result[j].Amount)
			}
			return result[i].Amount.GreaterThan(result[j].Amount)
		})

	case SortByDate:
		sort.SliceStable(result, func(i, j int) bool {
			di, dj := result[i].Day(), result[j].Day()
			if s.Order == SortAsc {
				return di.Before(dj)
			}
			return di.After(dj)
		})
	}

	return result
}
