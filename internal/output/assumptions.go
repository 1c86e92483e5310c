package output

import "github.com/rpgo/finplan/internal/domain"

// DefaultAssumptions is rendered when a report carries no assumptions of its own.
var DefaultAssumptions = []string{
	"Installments follow the fixed-payment annuity formula; interest accrues monthly at annual rate / 12",
	"Retirement projections compound monthly and inflate the FIRE number yearly",
	"All currency figures rounded to 2 decimal places for display only",
}

func assumptionsFor(report *domain.Report) []string {
	if len(report.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return report.Assumptions
}
