// Package export turns records into CSV files the user can open elsewhere.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/riordanpawley/finboard/internal/format"
	"github.com/shopspring/decimal"
)

// Field is one named column value
type Field struct {
	Name  string
	Value any
}

// Record is an ordered row. The first record passed to WriteCSV defines the
// header.
type Record []Field

// Get returns the value of the named field and whether it was present
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Header returns the field names in order
func (r Record) Header() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

// WriteCSV writes records as CSV. Columns come from the first record; other
// records are matched by field name and missing fields are left empty.
// Writing zero records produces no output.
func WriteCSV(w io.Writer, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	header := records[0].Header()
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(header))
	for i, rec := range records {
		for j, name := range header {
			v, _ := rec.Get(name)
			row[j] = renderValue(v)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case decimal.Decimal:
		return val.String()
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format(format.DateLayout)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
