package calculation

import (
	"fmt"
	"time"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/pkg/dateutil"
	"github.com/rpgo/finplan/pkg/decimal"
)

// ElapsedMonths returns the whole installments between a loan start and a caller-supplied date
func ElapsedMonths(start, asOf time.Time) int {
	return dateutil.MonthsBetween(start, asOf)
}

// generateAnalysis picks the better prepayment mode per loan and the earliest FI scenario
func (ce *CalculationEngine) generateAnalysis(report *domain.Report) domain.Analysis {
	var analysis domain.Analysis

	interest := make([]float64, 0, len(report.Loans))
	for _, loan := range report.Loans {
		interest = append(interest, loan.TotalInterest)
		if rec, ok := bestPrepayment(loan); ok {
			analysis.Prepayments = append(analysis.Prepayments, rec)
		}
	}
	analysis.LoanTotalInterest = decimal.Sum(interest...).Float()

	for _, r := range report.Retirement {
		age := r.Result.FIAge
		if age == nil {
			continue
		}
		if analysis.EarliestFIAge == nil || *age < *analysis.EarliestFIAge {
			a := *age
			analysis.EarliestFIAge = &a
			analysis.EarliestFIScenario = r.Name
		}
	}

	analysis.KeyConsiderations = keyConsiderations(report, analysis)
	return analysis
}

func bestPrepayment(loan domain.LoanSummary) (domain.PrepaymentRecommendation, bool) {
	if len(loan.PrepaymentAlternatives) == 0 {
		return domain.PrepaymentRecommendation{}, false
	}
	best := loan.PrepaymentAlternatives[0]
	for _, alt := range loan.PrepaymentAlternatives[1:] {
		if alt.InterestSaved > best.InterestSaved {
			best = alt
		}
	}
	rec := domain.PrepaymentRecommendation{
		LoanName:      loan.Name,
		Mode:          best.Mode,
		InterestSaved: best.InterestSaved,
	}
	first := true
	for _, alt := range loan.PrepaymentAlternatives {
		if alt.Mode == best.Mode {
			continue
		}
		// advantage over the strongest alternative
		if adv := best.InterestSaved - alt.InterestSaved; first || adv < rec.Advantage {
			rec.Advantage = adv
			first = false
		}
	}
	return rec, true
}

func keyConsiderations(report *domain.Report, analysis domain.Analysis) []string {
	var notes []string
	for _, rec := range analysis.Prepayments {
		notes = append(notes, fmt.Sprintf("%s: %s saves the most interest", rec.LoanName, rec.Mode))
	}
	for _, r := range report.Retirement {
		if !r.Result.Achievable {
			notes = append(notes, fmt.Sprintf("%s: FIRE number not reached by age %d", r.Name, r.Result.Params.RetirementAge))
		}
		if r.Result.Params.MonthlySavings() < 0 {
			notes = append(notes, fmt.Sprintf("%s: expenses exceed income, portfolio is drawn down", r.Name))
		}
	}
	if len(notes) == 0 {
		notes = append(notes, "Review rate and inflation assumptions periodically")
	}
	return notes
}
