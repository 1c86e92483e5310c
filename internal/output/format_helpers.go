package output

import (
	"strconv"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/pkg/decimal"
)

// FormatCurrency rounds to cents and renders with thousands separators.
// Every currency figure a formatter prints goes through here.
func FormatCurrency(amount float64, symbol string) string {
	return decimal.NewMoney(amount).FormatWith(symbol)
}

// FormatPercentage rounds a percentage figure to 2 places ("12.50%")
func FormatPercentage(value float64) string {
	return decimal.Percent(value)
}

// FormatAmount rounds to cents without symbol or grouping, for machine-readable output
func FormatAmount(amount float64) string {
	return decimal.NewMoney(amount).String()
}

// round2 is the numeric form of the display rounding, used for JSON
func round2(v float64) float64 {
	return decimal.NewMoney(v).Round().Float()
}

func symbolFor(report *domain.Report) string {
	if report.Currency != "" {
		return report.Currency
	}
	return decimal.DefaultSymbol
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

func optionalInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}
