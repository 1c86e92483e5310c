package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/finplan/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per scenario, configuration order).
// Columns that do not apply to a scenario kind are left empty.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

var csvSummaryHeader = []string{
	"Kind", "Scenario",
	"Principal", "AnnualRatePercent", "TenureMonths", "Installment", "TotalInterest", "TotalPayment",
	"Outstanding", "PrepaymentMode", "InterestSaved", "NewTenureMonths", "NewInstallment",
	"FIRENumber", "YearsToFI", "FIAge", "Achievable", "PortfolioAtRetirement",
}

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvSummaryHeader); err != nil {
		return nil, err
	}

	for _, l := range report.Loans {
		row := make([]string, len(csvSummaryHeader))
		row[0], row[1] = "loan", l.Name
		row[2] = FormatAmount(l.Terms.Principal)
		row[3] = FormatAmount(l.Terms.AnnualRatePercent)
		row[4] = intToString(l.Terms.TenureMonths)
		row[5] = FormatAmount(l.Installment)
		row[6] = FormatAmount(l.TotalInterest)
		row[7] = FormatAmount(l.TotalPayment)
		if l.OutstandingPrincipal != nil {
			row[8] = FormatAmount(*l.OutstandingPrincipal)
		}
		if p := l.Prepayment; p != nil {
			row[9] = p.Mode.String()
			row[10] = FormatAmount(p.InterestSaved)
			row[11] = intToString(p.NewTenureMonths)
			row[12] = FormatAmount(p.NewInstallment)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	for _, r := range report.Retirement {
		row := make([]string, len(csvSummaryHeader))
		row[0], row[1] = "retirement", r.Name
		row[13] = FormatAmount(r.Result.FIRENumber)
		row[14] = optionalInt(r.Result.YearsToFI)
		row[15] = optionalInt(r.Result.FIAge)
		row[16] = boolToString(r.Result.Achievable)
		row[17] = FormatAmount(r.Result.PortfolioAtRetirement)
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
