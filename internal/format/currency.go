// Package format renders amounts, numbers and dates for the Indonesian
// (id-ID) locale used across the dashboard.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// CurrencyCode is the ISO code of the dashboard currency
const CurrencyCode = "IDR"

// rupiah is go-money's IDR formatter shown as whole rupiah with a space
// after the symbol. The shared currency registry is left untouched.
var rupiah = func() *money.Formatter {
	f := money.GetCurrency(CurrencyCode).Formatter()
	f.Fraction = 0
	f.Template = "$ 1"
	return f
}()

var maxUnits = decimal.NewFromInt(math.MaxInt64)

// FormatCurrency formats amount as rupiah with no decimal places, e.g. "Rp 25.000".
// NaN and infinities are formatted as zero.
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return FormatAmount(decimal.NewFromFloat(amount))
}

// FormatAmount formats an exact amount as rupiah, rounding half away from zero.
// Negative amounts carry the sign before the symbol: "-Rp 1.500".
func FormatAmount(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	abs := rounded.Abs()

	var s string
	if abs.LessThanOrEqual(maxUnits) {
		s = rupiah.Format(abs.IntPart())
	} else {
		s = formatWide(abs.String())
	}
	if rounded.Sign() < 0 {
		return "-" + s
	}
	return s
}

// formatWide groups the digits of an amount too large for int64 through the
// same template
func formatWide(digits string) string {
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(rupiah.Thousand)
		}
		b.WriteRune(r)
	}
	s := strings.Replace(rupiah.Template, "1", b.String(), 1)
	return strings.Replace(s, "$", rupiah.Grapheme, 1)
}

// ParseCurrency extracts the integer value of a formatted amount by dropping
// every non-digit character ("Rp 25.000" -> 25000). Strings without digits,
// or too large for an int64, parse as 0.
func ParseCurrency(s string) int64 {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
