// Package editor provides focus mode and view state management
package editor

import (
	"github.com/riordanpawley/finboard/internal/domain"
	"github.com/riordanpawley/finboard/internal/types"
)

// Re-export Mode type for convenience
type Mode = types.Mode

// Mode constants
const (
	ModeNormal = types.ModeNormal
	ModeSearch = types.ModeSearch
	ModeDialog = types.ModeDialog
)

// Service manages view state (mode, month, filter, sort)
type Service struct {
	mode   Mode
	filter *domain.Filter
	sort   *domain.Sort
}

// NewService creates a new editor service showing the given month
func NewService(month domain.Month) *Service {
	f := domain.NewFilter()
	f.Month = month
	return &Service{
		mode:   ModeNormal,
		filter: f,
		sort: &domain.Sort{
			Field: domain.SortByDate,
			Order: domain.SortDesc,
		},
	}
}

// GetMode returns the current mode
func (s *Service) GetMode() Mode {
	return s.mode
}

// SetMode sets the current mode
func (s *Service) SetMode(mode Mode) {
	s.mode = mode
}

// EnterNormal switches to normal mode
func (s *Service) EnterNormal() {
	s.mode = ModeNormal
}

// EnterSearch switches to search mode
func (s *Service) EnterSearch() {
	s.mode = ModeSearch
}

// EnterDialog switches to dialog mode
func (s *Service) EnterDialog() {
	s.mode = ModeDialog
}

// ExitMode returns to normal mode if not already normal
func (s *Service) ExitMode() bool {
	if s.mode != ModeNormal {
		s.mode = ModeNormal
		return true
	}
	return false
}

// IsNormal returns true if in normal mode
func (s *Service) IsNormal() bool {
	return s.mode == ModeNormal
}

// IsSearch returns true if in search mode
func (s *Service) IsSearch() bool {
	return s.mode == ModeSearch
}

// IsTextEntry returns true if keystrokes belong to a text field
func (s *Service) IsTextEntry() bool {
	return s.mode.IsTextEntry()
}

// Month navigation

// Month returns the month being shown
func (s *Service) Month() domain.Month {
	return s.filter.Month
}

// SetMonth shows the given month
func (s *Service) SetMonth(m domain.Month) {
	s.filter.Month = m
}

// PrevMonth moves one month back
func (s *Service) PrevMonth() domain.Month {
	s.filter.Month = s.filter.Month.Prev()
	return s.filter.Month
}

// NextMonth moves one month forward
func (s *Service) NextMonth() domain.Month {
	s.filter.Month = s.filter.Month.Next()
	return s.filter.Month
}

// Filter management

// GetFilter returns the current filter
func (s *Service) GetFilter() *domain.Filter {
	return s.filter
}

// SetSearchQuery updates the search query in the filter
func (s *Service) SetSearchQuery(query string) {
	s.filter.SearchQuery = query
}

// ClearSearch clears the search query
func (s *Service) ClearSearch() {
	s.filter.SearchQuery = ""
}

// ToggleTypeFilter toggles a transaction type in the filter
func (s *Service) ToggleTypeFilter(t domain.TxType) {
	s.filter.ToggleType(t)
}

// ClearFilters clears all filters but keeps the month
func (s *Service) ClearFilters() {
	s.filter.Clear()
}

// Sort management

// GetSort returns the current sort settings
func (s *Service) GetSort() *domain.Sort {
	return s.sort
}

// ToggleSort toggles between fields or direction
func (s *Service) ToggleSort(field domain.SortField) {
	s.sort.Toggle(field)
}

// FilterAndSort applies both filter and sort to a transaction list
func (s *Service) FilterAndSort(txs []domain.Transaction) []domain.Transaction {
	filtered := s.filter.Apply(txs)
	return s.sort.Apply(filtered)
}

// MonthOnly returns the transactions of the shown month, ignoring search and
// type filters. Totals are computed from it.
func (s *Service) MonthOnly(txs []domain.Transaction) []domain.Transaction {
	f := domain.Filter{Month: s.filter.Month}
	return f.Apply(txs)
}
