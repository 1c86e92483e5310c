package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/pkg/dateutil"
)

// CSVDetailedExporter provides raw per-period detail: every schedule month of
// every loan, then every projection year of every retirement scenario.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

var csvDetailHeader = []string{
	"Scenario", "Kind", "Period", "DueDate", "Status",
	"Payment", "Interest", "Principal", "Balance", "FIRENumber", "Reached",
}

func (c CSVDetailedExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvDetailHeader); err != nil {
		return nil, err
	}

	for _, l := range report.Loans {
		for i, e := range l.Schedule {
			var due, status string
			if i < len(l.Installments) {
				due = l.Installments[i].DueDate.Format(dateutil.DateLayout)
				status = string(l.Installments[i].Status)
			}
			row := []string{
				l.Name, "loan", intToString(e.Month), due, status,
				FormatAmount(e.Installment),
				FormatAmount(e.Interest),
				FormatAmount(e.Principal),
				FormatAmount(e.Remaining),
				"", "",
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	for _, r := range report.Retirement {
		for _, p := range r.Points {
			row := []string{
				r.Name, "retirement", intToString(p.Age), "", "",
				"", "", "",
				FormatAmount(p.PortfolioValue),
				FormatAmount(p.FIRENumber),
				boolToString(p.Reached),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
