package domain

import (
	"fmt"
	"time"

	"github.com/riordanpawley/finboard/internal/format"
)

// monthLayout is the "2006-01" period format used by CurrentMonth
const monthLayout = "2006-01"

// Month is a calendar month, the unit the dashboard navigates by
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses "2006-01"
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", s, monthLayout, err)
	}
	return MonthOf(t), nil
}

// IsZero reports whether m is unset
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// Add returns the month n months after m (n may be negative)
func (m Month) Add(n int) Month {
	return MonthOf(m.first().AddDate(0, n, 0))
}

// Prev returns the previous month
func (m Month) Prev() Month { return m.Add(-1) }

// Next returns the following month
func (m Month) Next() Month { return m.Add(1) }

// String returns "2006-01"
func (m Month) String() string {
	return m.first().Format(monthLayout)
}

// Label returns the Indonesian display name, e.g. "Oktober 2026"
func (m Month) Label() string {
	return fmt.Sprintf("%s %d", format.LongMonth(m.Month), m.Year)
}

// Contains reports whether the calendar date of t falls in m
func (m Month) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return t.Year() == m.Year && t.Month() == m.Month
}

func (m Month) first() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}
