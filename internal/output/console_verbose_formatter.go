package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/pkg/dateutil"
)

// ConsoleVerboseFormatter renders the full console report: schedules, prepayment
// comparisons, projection tables and the cross-scenario analysis.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

const rule = "================================================================================="

func (c ConsoleVerboseFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	sym := symbolFor(report)

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "DETAILED LOAN & RETIREMENT PLAN ANALYSIS")
	fmt.Fprintln(&buf, rule)
	if report.Name != "" {
		fmt.Fprintf(&buf, "Plan: %s\n", report.Name)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(report) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, loan := range report.Loans {
		writeLoanDetail(&buf, i+1, loan, sym)
	}
	for i, r := range report.Retirement {
		writeRetirementDetail(&buf, i+1, r, sym)
	}

	writeAnalysis(&buf, report.Analysis, sym)
	return buf.Bytes(), nil
}

func writeLoanDetail(buf *bytes.Buffer, n int, loan domain.LoanSummary, sym string) {
	title := fmt.Sprintf("LOAN %d: %s", n, loan.Name)
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "  Principal:              %s\n", FormatCurrency(loan.Terms.Principal, sym))
	fmt.Fprintf(buf, "  Annual Rate:            %s\n", FormatPercentage(loan.Terms.AnnualRatePercent))
	fmt.Fprintf(buf, "  Tenure:                 %d months\n", loan.Terms.TenureMonths)
	fmt.Fprintf(buf, "  Monthly Installment:    %s\n", FormatCurrency(loan.Installment, sym))
	fmt.Fprintf(buf, "  Total Interest:         %s\n", FormatCurrency(loan.TotalInterest, sym))
	fmt.Fprintf(buf, "  Total Payment:          %s\n", FormatCurrency(loan.TotalPayment, sym))
	if loan.OutstandingPrincipal != nil {
		fmt.Fprintf(buf, "  Outstanding (after %d): %s\n", loan.ElapsedMonths, FormatCurrency(*loan.OutstandingPrincipal, sym))
	}
	if p := loan.Progress; p != nil {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "PROGRESS:")
		fmt.Fprintf(buf, "  Installments Paid:      %d of %d (%s)\n", p.PaidInstallments, p.TotalInstallments, FormatPercentage(p.CompletionPercent))
		fmt.Fprintf(buf, "  Principal Paid:         %s\n", FormatCurrency(p.PrincipalPaid, sym))
		fmt.Fprintf(buf, "  Interest Paid:          %s\n", FormatCurrency(p.InterestPaid, sym))
		fmt.Fprintf(buf, "  Outstanding:            %s\n", FormatCurrency(p.Outstanding, sym))
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "AMORTIZATION SCHEDULE:")
	dated := len(loan.Installments) == len(loan.Schedule)
	if dated {
		fmt.Fprintf(buf, "%6s %-10s %-7s %15s %15s %15s %15s\n", "MONTH", "DUE", "STATUS", "INSTALLMENT", "INTEREST", "PRINCIPAL", "REMAINING")
	} else {
		fmt.Fprintf(buf, "%6s %15s %15s %15s %15s\n", "MONTH", "INSTALLMENT", "INTEREST", "PRINCIPAL", "REMAINING")
	}
	fmt.Fprintln(buf, strings.Repeat("-", 80))
	for i, e := range loan.Schedule {
		if dated {
			in := loan.Installments[i]
			fmt.Fprintf(buf, "%6d %-10s %-7s %15s %15s %15s %15s\n", e.Month, in.DueDate.Format(dateutil.DateLayout), in.Status,
				FormatCurrency(e.Installment, sym), FormatCurrency(e.Interest, sym), FormatCurrency(e.Principal, sym), FormatCurrency(e.Remaining, sym))
			continue
		}
		fmt.Fprintf(buf, "%6d %15s %15s %15s %15s\n", e.Month,
			FormatCurrency(e.Installment, sym), FormatCurrency(e.Interest, sym), FormatCurrency(e.Principal, sym), FormatCurrency(e.Remaining, sym))
	}
	fmt.Fprintln(buf)

	for _, alt := range loan.PrepaymentAlternatives {
		marker := ""
		if loan.Prepayment != nil && loan.Prepayment.Mode == alt.Mode {
			marker = " (selected)"
		}
		writePrepayment(buf, alt, marker, sym)
	}
	fmt.Fprintln(buf)
}

func writePrepayment(buf *bytes.Buffer, p domain.PrepaymentResult, marker, sym string) {
	fmt.Fprintf(buf, "PREPAYMENT OF %s: %s%s\n", FormatCurrency(p.Prepayment, sym), p.Mode, marker)
	fmt.Fprintf(buf, "%-35s %15s %15s %15s\n", "COMPONENT", "BEFORE", "AFTER", "DIFFERENCE")
	fmt.Fprintln(buf, strings.Repeat("-", 80))
	cmpLine(buf, "Principal", p.OriginalPrincipal, p.NewPrincipal, sym)
	cmpLine(buf, "Installment", p.OriginalInstallment, p.NewInstallment, sym)
	fmt.Fprintf(buf, "%-35s %15d %15d %15d\n", "Tenure (months)", p.OriginalTenureMonths, p.NewTenureMonths, p.NewTenureMonths-p.OriginalTenureMonths)
	cmpLine(buf, "Total Interest", p.OriginalTotalInterest, p.NewTotalInterest, sym)
	if p.Mode == domain.ReduceTenure {
		fmt.Fprintf(buf, "Final installment: %s\n", FormatCurrency(p.FinalInstallment, sym))
	}
	fmt.Fprintf(buf, "Interest saved: %s\n", FormatCurrency(p.InterestSaved, sym))
	fmt.Fprintln(buf)
}

func writeRetirementDetail(buf *bytes.Buffer, n int, r domain.RetirementSummary, sym string) {
	res := r.Result
	params := res.Params
	fmt.Fprintf(buf, "RETIREMENT SCENARIO %d: %s\n", n, r.Name)
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "  Ages:                   %d to %d\n", params.CurrentAge, params.RetirementAge)
	fmt.Fprintf(buf, "  Annual Return:          %s\n", FormatPercentage(params.AnnualReturnPercent))
	fmt.Fprintf(buf, "  Annual Inflation:       %s\n", FormatPercentage(params.AnnualInflationPercent))
	fmt.Fprintf(buf, "  Monthly Savings:        %s\n", FormatCurrency(params.MonthlySavings(), sym))
	fmt.Fprintf(buf, "  FIRE Number (today):    %s (%gx annual expenses)\n", FormatCurrency(res.FIRENumber, sym), params.Multiple())
	if res.FIAge != nil {
		fmt.Fprintf(buf, "  Financial Independence: age %d (%d years)\n", *res.FIAge, *res.YearsToFI)
	} else {
		fmt.Fprintf(buf, "  Financial Independence: not reached by age %d\n", params.RetirementAge)
	}
	fmt.Fprintf(buf, "  At Retirement:          %s vs target %s\n",
		FormatCurrency(res.PortfolioAtRetirement, sym), FormatCurrency(res.FIRENumberAtRetirement, sym))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "PROJECTION:")
	fmt.Fprintf(buf, "%5s %5s %20s %20s %8s\n", "AGE", "YEAR", "PORTFOLIO", "FIRE NUMBER", "REACHED")
	fmt.Fprintln(buf, strings.Repeat("-", 62))
	for _, p := range r.Points {
		fmt.Fprintf(buf, "%5d %5d %20s %20s %8t\n", p.Age, p.Year, FormatCurrency(p.PortfolioValue, sym), FormatCurrency(p.FIRENumber, sym), p.Reached)
	}
	fmt.Fprintln(buf)
	fmt.Fprintln(buf)
}

func writeAnalysis(buf *bytes.Buffer, a domain.Analysis, sym string) {
	fmt.Fprintln(buf, "SUMMARY & RECOMMENDATIONS")
	fmt.Fprintln(buf, "=========================")
	if a.LoanTotalInterest > 0 {
		fmt.Fprintf(buf, "Total interest across loans: %s\n", FormatCurrency(a.LoanTotalInterest, sym))
	}
	for _, rec := range a.Prepayments {
		fmt.Fprintf(buf, "%s: %s saves %s (%s more than the alternative)\n",
			rec.LoanName, rec.Mode, FormatCurrency(rec.InterestSaved, sym), FormatCurrency(rec.Advantage, sym))
	}
	if a.EarliestFIAge != nil {
		fmt.Fprintf(buf, "Earliest financial independence: %s at age %d\n", a.EarliestFIScenario, *a.EarliestFIAge)
	}
	for _, note := range a.KeyConsiderations {
		fmt.Fprintf(buf, "• %s\n", note)
	}
}

func cmpLine(buf *bytes.Buffer, label string, before, after float64, sym string) {
	fmt.Fprintf(buf, "%-35s %15s %15s %15s\n", label, FormatCurrency(before, sym), FormatCurrency(after, sym), FormatCurrency(after-before, sym))
}
