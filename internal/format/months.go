package format

import (
	"errors"
	"fmt"
	"time"
)

// ErrMonthOutOfRange is returned for month indexes outside 0-11
var ErrMonthOutOfRange = errors.New("month index out of range")

var monthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var shortMonthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

var weekdayNames = [7]string{
	"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
}

var shortWeekdayNames = [7]string{
	"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab",
}

// MonthName returns the Indonesian name of a zero-based month index (0 = Januari)
func MonthName(index int) (string, error) {
	if index < 0 || index >= len(monthNames) {
		return "", fmt.Errorf("%w: %d", ErrMonthOutOfRange, index)
	}
	return monthNames[index], nil
}

// LongMonth returns the Indonesian name of m
func LongMonth(m time.Month) string {
	return monthNames[(int(m)+11)%12]
}

// ShortMonth returns the abbreviated Indonesian name of m
func ShortMonth(m time.Month) string {
	return shortMonthNames[(int(m)+11)%12]
}

// CurrentMonth returns the month containing now in "2006-01" form
func CurrentMonth(now time.Time) string {
	return now.Format("2006-01")
}

// Today returns the date of now in "2006-01-02" form
func Today(now time.Time) string {
	return now.Format(DateLayout)
}
