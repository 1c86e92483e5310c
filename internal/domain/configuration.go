package domain

import (
	"fmt"
	"time"
)

// Configuration is a scenario file: a set of named loans and retirement projections
type Configuration struct {
	Name       string               `yaml:"name" json:"name"`
	Currency   string               `yaml:"currency,omitempty" json:"currency,omitempty"`
	Loans      []LoanScenario       `yaml:"loans" json:"loans"`
	Retirement []RetirementScenario `yaml:"retirement" json:"retirement"`
}

// LoanScenario is a loan plus the optional calendar and prepayment context it is evaluated in
type LoanScenario struct {
	Name      string    `yaml:"name" json:"name"`
	LoanTerms `yaml:",inline"`
	// StartDate anchors installment due dates; due dates are omitted when unset
	StartDate *time.Time `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	// AsOf is the date used to reconcile paid installments and outstanding principal
	AsOf       *time.Time      `yaml:"as_of,omitempty" json:"as_of,omitempty"`
	Prepayment *PrepaymentPlan `yaml:"prepayment,omitempty" json:"prepayment,omitempty"`
}

// PrepaymentPlan is a single lump-sum payment made after a number of installments
type PrepaymentPlan struct {
	Amount      float64        `yaml:"amount" json:"amount"`
	Mode        PrepaymentMode `yaml:"mode" json:"mode"`
	AfterMonths int            `yaml:"after_months" json:"after_months"`
}

// RetirementScenario names a set of projection parameters
type RetirementScenario struct {
	Name             string `yaml:"name" json:"name"`
	RetirementParams `yaml:",inline"`
}

// GenerateAssumptions lists the modeling assumptions behind a configuration's results
func (c *Configuration) GenerateAssumptions() []string {
	out := []string{
		"Installments follow the fixed-payment annuity formula; interest accrues monthly at annual rate / 12",
		"Final installment absorbs rounding drift so the schedule ends at exactly zero",
		"Prepayments under reduce_tenure keep the installment; the last payment may be partial",
	}
	for _, r := range c.Retirement {
		out = append(out, fmt.Sprintf("%s: %.1f%% annual return compounded monthly, %.1f%% inflation, FIRE number = %.0fx annual expenses",
			r.Name, r.AnnualReturnPercent, r.AnnualInflationPercent, r.Multiple()))
	}
	out = append(out, "All currency figures rounded to 2 decimal places for display only")
	return out
}
