package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CentPlaces is the number of fractional digits kept for display amounts
const CentPlaces = 2

// DefaultSymbol prefixes formatted amounts when no currency symbol is configured
const DefaultSymbol = "$"

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// Round rounds to cents, half away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(CentPlaces)}
}

// Float returns the amount as a float64 (inexact)
func (m Money) Float() float64 {
	return m.Decimal.InexactFloat64()
}

// Sum adds up amounts exactly, avoiding float accumulation drift
func Sum(values ...float64) Money {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return Money{total}
}

// String returns the amount rounded to cents without grouping
func (m Money) String() string {
	return m.Decimal.StringFixed(CentPlaces)
}

// FormatWith renders the amount as <symbol>1,234.56 (-<symbol>1,234.56 when negative)
func (m Money) FormatWith(symbol string) string {
	s := m.Decimal.Abs().StringFixed(CentPlaces)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if m.Decimal.Round(CentPlaces).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// Percent formats a percentage figure (12.5 -> "12.50%") using the same rounding as Money
func Percent(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(CentPlaces) + "%"
}
