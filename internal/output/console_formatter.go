package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/finplan/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	sym := symbolFor(report)

	fmt.Fprintln(&buf, "PLAN SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, l := range report.Loans {
		fmt.Fprintf(&buf, "%s: EMI=%s Interest=%s Total=%s Tenure=%d\n",
			l.Name,
			FormatCurrency(l.Installment, sym),
			FormatCurrency(l.TotalInterest, sym),
			FormatCurrency(l.TotalPayment, sym),
			l.Terms.TenureMonths,
		)
		if l.OutstandingPrincipal != nil {
			fmt.Fprintf(&buf, "  Outstanding=%s after %d months\n", FormatCurrency(*l.OutstandingPrincipal, sym), l.ElapsedMonths)
		}
		if p := l.Prepayment; p != nil {
			fmt.Fprintf(&buf, "  Prepay %s (%s): saves %s, %d months, EMI=%s\n",
				FormatCurrency(p.Prepayment, sym), p.Mode, FormatCurrency(p.InterestSaved, sym),
				p.NewTenureMonths, FormatCurrency(p.NewInstallment, sym))
		}
	}
	for _, r := range report.Retirement {
		res := r.Result
		fi := "not reached"
		if res.FIAge != nil {
			fi = fmt.Sprintf("age %d", *res.FIAge)
		}
		fmt.Fprintf(&buf, "%s: FIRE=%s FI=%s AtRetirement=%s\n",
			r.Name, FormatCurrency(res.FIRENumber, sym), fi, FormatCurrency(res.PortfolioAtRetirement, sym))
	}

	a := report.Analysis
	if len(a.Prepayments) > 0 || a.EarliestFIAge != nil {
		fmt.Fprintln(&buf)
	}
	for _, rec := range a.Prepayments {
		fmt.Fprintf(&buf, "Recommended for %s: %s (Δ %s)\n", rec.LoanName, rec.Mode, FormatCurrency(rec.Advantage, sym))
	}
	if a.EarliestFIAge != nil {
		fmt.Fprintf(&buf, "Earliest FI: %s at age %d\n", a.EarliestFIScenario, *a.EarliestFIAge)
	}
	return buf.Bytes(), nil
}
