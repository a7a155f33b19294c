package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale is the language tag used for number formatting
var Locale = language.Indonesian

// FormatNumber formats n with Indonesian digit grouping and up to three
// fraction digits, e.g. 1234567.5 -> "1.234.567,5".
func FormatNumber(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		n = 0
	}
	p := message.NewPrinter(Locale)
	return p.Sprint(number.Decimal(n, number.MaxFractionDigits(3)))
}
