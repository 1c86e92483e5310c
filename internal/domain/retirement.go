package domain

import "iter"

// DefaultFIREMultiple is the multiple of annual expenses used when none is given (the 4% rule)
const DefaultFIREMultiple = 25.0

// RetirementParams are the inputs to a financial-independence projection.
// Rates are percentages (8 means 8% a year).
type RetirementParams struct {
	CurrentAge             int     `yaml:"current_age" json:"current_age"`
	RetirementAge          int     `yaml:"retirement_age" json:"retirement_age"`
	AnnualReturnPercent    float64 `yaml:"annual_return_percent" json:"annual_return_percent"`
	AnnualInflationPercent float64 `yaml:"annual_inflation_percent" json:"annual_inflation_percent"`
	CurrentPortfolio       float64 `yaml:"current_portfolio" json:"current_portfolio"`
	MonthlyIncome          float64 `yaml:"monthly_income" json:"monthly_income"`
	MonthlyExpenses        float64 `yaml:"monthly_expenses" json:"monthly_expenses"`
	// FIREMultiple defaults to DefaultFIREMultiple when zero
	FIREMultiple float64 `yaml:"fire_multiple,omitempty" json:"fire_multiple,omitempty"`
}

// MonthlySavings is income left after expenses (negative when drawing down)
func (p RetirementParams) MonthlySavings() float64 {
	return p.MonthlyIncome - p.MonthlyExpenses
}

// Multiple returns the effective FIRE multiple
func (p RetirementParams) Multiple() float64 {
	if p.FIREMultiple <= 0 {
		return DefaultFIREMultiple
	}
	return p.FIREMultiple
}

// HorizonYears is the number of yearly steps between current and retirement age
func (p RetirementParams) HorizonYears() int {
	return p.RetirementAge - p.CurrentAge
}

// ProjectionPoint is the projected state at the start of one age
type ProjectionPoint struct {
	Age            int     `json:"age"`
	Year           int     `json:"year"`
	PortfolioValue float64 `json:"portfolio_value"`
	FIRENumber     float64 `json:"fire_number"`
	Reached        bool    `json:"reached"`
}

// ProjectionResult holds the derived scalars of a projection and a restartable
// sequence of its yearly points.
type ProjectionResult struct {
	Params                 RetirementParams `json:"params"`
	FIRENumber             float64          `json:"fire_number"`
	YearsToFI              *int             `json:"years_to_fi"`
	FIAge                  *int             `json:"fi_age"`
	Achievable             bool             `json:"achievable"`
	PortfolioAtRetirement  float64          `json:"portfolio_at_retirement"`
	FIRENumberAtRetirement float64          `json:"fire_number_at_retirement"`

	points func() iter.Seq[ProjectionPoint]
}

// NewProjectionResult attaches a point generator to the derived scalars.
// gen is invoked on every call to Points so each iteration starts from scratch.
func NewProjectionResult(r ProjectionResult, gen func() iter.Seq[ProjectionPoint]) ProjectionResult {
	r.points = gen
	return r
}

// Points yields one point per age from CurrentAge to RetirementAge inclusive.
// Each call restarts the sequence.
func (r ProjectionResult) Points() iter.Seq[ProjectionPoint] {
	if r.points == nil {
		return func(func(ProjectionPoint) bool) {}
	}
	return r.points()
}

// CollectPoints materializes the point sequence
func (r ProjectionResult) CollectPoints() []ProjectionPoint {
	out := make([]ProjectionPoint, 0, r.Params.HorizonYears()+1)
	for p := range r.Points() {
		out = append(out, p)
	}
	return out
}
