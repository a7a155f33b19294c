package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO-8601 calendar date layout used for storage and exports
const DateLayout = "2006-01-02"

// InvalidDate is rendered in place of dates that cannot be formatted
const InvalidDate = "Invalid Date"

// readLayouts are tried in order by ParseDate
var readLayouts = []string{
	DateLayout,
	"2006-1-2", // lenient: single-digit month/day
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Part selects how one component of a date is rendered
type Part int

const (
	Omit Part = iota
	Numeric
	TwoDigit
	Long
	Short
)

// DateOptions controls FormatDate output. Zero value parts are omitted.
type DateOptions struct {
	Weekday Part
	Day     Part
	Month   Part
	Year    Part
}

// DateOption overrides one part of the default date options
type DateOption func(*DateOptions)

// DefaultDateOptions renders "19 Oktober 2026"
func DefaultDateOptions() DateOptions {
	return DateOptions{Day: Numeric, Month: Long, Year: Numeric}
}

// WithWeekday sets the weekday part (Long, Short or Omit)
func WithWeekday(p Part) DateOption { return func(o *DateOptions) { o.Weekday = p } }

// WithDay sets the day part (Numeric, TwoDigit or Omit)
func WithDay(p Part) DateOption { return func(o *DateOptions) { o.Day = p } }

// WithMonth sets the month part (Long, Short, Numeric, TwoDigit or Omit)
func WithMonth(p Part) DateOption { return func(o *DateOptions) { o.Month = p } }

// WithYear sets the year part (Numeric, TwoDigit or Omit)
func WithYear(p Part) DateOption { return func(o *DateOptions) { o.Year = p } }

// FormatDate renders t in the Indonesian long date style, "19 Oktober 2026"
// by default. Options override individual parts. A textual month joins parts
// with spaces, a numeric month with slashes ("19/10/2026"). The zero time
// renders as InvalidDate.
func FormatDate(t time.Time, opts ...DateOption) string {
	if t.IsZero() {
		return InvalidDate
	}

	o := DefaultDateOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o == (DateOptions{}) {
		o = DefaultDateOptions()
	}

	sep := "/"
	if o.Month == Long || o.Month == Short {
		sep = " "
	}

	var parts []string
	if s := numberPart(t.Day(), o.Day); s != "" {
		parts = append(parts, s)
	}
	if s := monthPart(t.Month(), o.Month); s != "" {
		parts = append(parts, s)
	}
	if s := yearPart(t.Year(), o.Year); s != "" {
		parts = append(parts, s)
	}
	body := strings.Join(parts, sep)

	weekday := weekdayPart(t.Weekday(), o.Weekday)
	switch {
	case weekday == "":
		return body
	case body == "":
		return weekday
	default:
		return weekday + ", " + body
	}
}

// FormatDateString parses s with ParseDate and formats it, falling back to
// InvalidDate when s is not a recognised date.
func FormatDateString(s string, opts ...DateOption) string {
	t, err := ParseDate(s)
	if err != nil {
		return InvalidDate
	}
	return FormatDate(t, opts...)
}

// ParseDate parses calendar dates ("2026-10-19", "2026-1-2") and timestamps
// (RFC 3339 or "2006-01-02 15:04:05").
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range readLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q want format %q", s, DateLayout)
}

func numberPart(n int, p Part) string {
	switch p {
	case Omit:
		return ""
	case TwoDigit:
		return fmt.Sprintf("%02d", n)
	default:
		return strconv.Itoa(n)
	}
}

func monthPart(m time.Month, p Part) string {
	switch p {
	case Long:
		return LongMonth(m)
	case Short:
		return ShortMonth(m)
	default:
		return numberPart(int(m), p)
	}
}

func yearPart(y int, p Part) string {
	if p == TwoDigit {
		return fmt.Sprintf("%02d", y%100)
	}
	return numberPart(y, p)
}

func weekdayPart(d time.Weekday, p Part) string {
	switch p {
	case Omit:
		return ""
	case Short:
		return shortWeekdayNames[d]
	default:
		return weekdayNames[d]
	}
}
