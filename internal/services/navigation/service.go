// Package navigation provides cursor and navigation state management
package navigation

import "github.com/riordanpawley/finboard/internal/domain"

// Cursor tracks the selected transaction by ID so the selection survives
// search, sort and reload
type Cursor struct {
	TxID     int  // Primary state: selected transaction ID
	Selected bool // Whether TxID is set
	Fallback int  // Row to use when TxID is not shown
}

// FindIndex computes the row of the cursor's transaction in rows. It returns
// -1 when rows is empty.
func (c *Cursor) FindIndex(rows []domain.Transaction) int {
	if len(rows) == 0 {
		return -1
	}

	if c.Selected {
		for i, tx := range rows {
			if tx.ID == c.TxID {
				return i
			}
		}
	}

	// Not selected or filtered out, use the fallback row
	return clamp(c.Fallback, len(rows))
}

// Select points the cursor at the transaction in row index
func (c *Cursor) Select(rows []domain.Transaction, index int) {
	if len(rows) == 0 {
		c.Selected = false
		c.Fallback = 0
		return
	}
	index = clamp(index, len(rows))
	c.TxID = rows[index].ID
	c.Selected = true
	c.Fallback = index
}

// Move moves the cursor by delta rows, clamped to rows
func (c *Cursor) Move(rows []domain.Transaction, delta int) {
	idx := c.FindIndex(rows)
	if idx < 0 {
		return
	}
	c.Select(rows, idx+delta)
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Service manages the table cursor
type Service struct {
	cursor Cursor
}

// NewService creates a navigation service with nothing selected
func NewService() *Service {
	return &Service{}
}

// GetCursor returns the underlying cursor
func (s *Service) GetCursor() *Cursor {
	return &s.cursor
}

// Index returns the selected row in rows, or -1 when rows is empty
func (s *Service) Index(rows []domain.Transaction) int {
	return s.cursor.FindIndex(rows)
}

// Current returns the selected transaction
func (s *Service) Current(rows []domain.Transaction) (domain.Transaction, bool) {
	idx := s.Index(rows)
	if idx < 0 {
		return domain.Transaction{}, false
	}
	return rows[idx], true
}

// MoveDown moves cursor down one row
func (s *Service) MoveDown(rows []domain.Transaction) {
	s.cursor.Move(rows, 1)
}

// MoveUp moves cursor up one row
func (s *Service) MoveUp(rows []domain.Transaction) {
	s.cursor.Move(rows, -1)
}

// HalfPageDown moves cursor down by half a page
func (s *Service) HalfPageDown(rows []domain.Transaction, halfPage int) {
	s.cursor.Move(rows, halfPage)
}

// HalfPageUp moves cursor up by half a page
func (s *Service) HalfPageUp(rows []domain.Transaction, halfPage int) {
	s.cursor.Move(rows, -halfPage)
}

// GotoTop moves cursor to the first row
func (s *Service) GotoTop(rows []domain.Transaction) {
	s.cursor.Select(rows, 0)
}

// GotoBottom moves cursor to the last row
func (s *Service) GotoBottom(rows []domain.Transaction) {
	s.cursor.Select(rows, len(rows)-1)
}

// Reset clears the selection, so the first row is current
func (s *Service) Reset() {
	s.cursor = Cursor{}
}

// SelectID selects the transaction with the given ID if it is in rows
func (s *Service) SelectID(rows []domain.Transaction, id int) bool {
	for i, tx := range rows {
		if tx.ID == id {
			s.cursor.Select(rows, i)
			return true
		}
	}
	return false
}
