package calculation

import (
	"iter"

	"github.com/rpgo/finplan/internal/domain"
)

// MaxAge bounds the ages a projection accepts
const MaxAge = 120

func validateRetirementParams(p domain.RetirementParams) error {
	if p.CurrentAge < 0 || p.CurrentAge > MaxAge {
		return invalid("current_age", "must be between 0 and %d, got %d", MaxAge, p.CurrentAge)
	}
	if p.RetirementAge < p.CurrentAge || p.RetirementAge > MaxAge {
		return invalid("retirement_age", "must be between current age %d and %d, got %d", p.CurrentAge, MaxAge, p.RetirementAge)
	}
	if !finite(p.AnnualReturnPercent) || p.AnnualReturnPercent <= -100 {
		return invalid("annual_return_percent", "must be greater than -100, got %g", p.AnnualReturnPercent)
	}
	if !finite(p.AnnualInflationPercent) || p.AnnualInflationPercent <= -100 {
		return invalid("annual_inflation_percent", "must be greater than -100, got %g", p.AnnualInflationPercent)
	}
	if !finite(p.CurrentPortfolio) || p.CurrentPortfolio < 0 {
		return invalid("current_portfolio", "cannot be negative, got %g", p.CurrentPortfolio)
	}
	if !finite(p.MonthlyIncome) || p.MonthlyIncome < 0 {
		return invalid("monthly_income", "cannot be negative, got %g", p.MonthlyIncome)
	}
	if !finite(p.MonthlyExpenses) || p.MonthlyExpenses <= 0 {
		return invalid("monthly_expenses", "must be positive to define a FIRE number, got %g", p.MonthlyExpenses)
	}
	if !finite(p.FIREMultiple) || p.FIREMultiple < 0 {
		return invalid("fire_multiple", "cannot be negative, got %g", p.FIREMultiple)
	}
	return nil
}

// Project estimates when a portfolio reaches its inflation-adjusted FIRE number.
//
// The portfolio compounds monthly at AnnualReturnPercent/12 and receives the net monthly
// savings each month; it never drops below zero. The FIRE number is FIREMultiple times
// annual expenses, inflated once a year. YearsToFI and FIAge are nil when the target is
// not reached by RetirementAge. Returns that overflow float64 are degenerate.
func Project(params domain.RetirementParams) (domain.ProjectionResult, error) {
	if err := validateRetirementParams(params); err != nil {
		return domain.ProjectionResult{}, err
	}

	fireNumber := params.Multiple() * 12 * params.MonthlyExpenses
	if !finite(fireNumber) {
		return domain.ProjectionResult{}, degenerate("fire_number", "overflows for monthly expenses %g", params.MonthlyExpenses)
	}

	gen := func() iter.Seq[domain.ProjectionPoint] {
		return projectionPoints(params, fireNumber)
	}

	res := domain.ProjectionResult{Params: params, FIRENumber: fireNumber}
	for p := range gen() {
		if !finite(p.PortfolioValue) || !finite(p.FIRENumber) {
			return domain.ProjectionResult{}, degenerate("projection", "values overflow at age %d", p.Age)
		}
		if p.Reached && res.YearsToFI == nil {
			years, age := p.Year, p.Age
			res.YearsToFI = &years
			res.FIAge = &age
		}
		res.PortfolioAtRetirement = p.PortfolioValue
		res.FIRENumberAtRetirement = p.FIRENumber
	}
	res.Achievable = res.FIAge != nil

	return domain.NewProjectionResult(res, gen), nil
}

func projectionPoints(params domain.RetirementParams, fireNumber float64) iter.Seq[domain.ProjectionPoint] {
	return func(yield func(domain.ProjectionPoint) bool) {
		growth := 1 + params.AnnualReturnPercent/12/100
		inflation := 1 + params.AnnualInflationPercent/100
		savings := params.MonthlySavings()

		balance := params.CurrentPortfolio
		target := fireNumber
		for year := 0; year <= params.HorizonYears(); year++ {
			if year > 0 {
				for m := 0; m < 12; m++ {
					balance = balance*growth + savings
					if balance < 0 {
						balance = 0
					}
				}
				target *= inflation
			}
			point := domain.ProjectionPoint{
				Age:            params.CurrentAge + year,
				Year:           year,
				PortfolioValue: balance,
				FIRENumber:     target,
				Reached:        balance >= target,
			}
			if !yield(point) {
				return
			}
		}
	}
}
