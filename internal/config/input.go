package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rpgo/finplan/internal/calculation"
	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario file from YAML (JSON is accepted as a YAML subset)
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates scenario file contents
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration checks structure and value ranges. Engine-level checks
// (e.g. degenerate tenure) still apply when scenarios run.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Loans) == 0 && len(config.Retirement) == 0 {
		return fmt.Errorf("no scenarios provided: add at least one loan or retirement entry")
	}

	seen := make(map[string]string)
	claim := func(kind, name string) error {
		if name == "" {
			return fmt.Errorf("%s scenario name is required", kind)
		}
		if prev, dup := seen[name]; dup {
			return fmt.Errorf("duplicate scenario name %q (already used by a %s scenario)", name, prev)
		}
		seen[name] = kind
		return nil
	}

	for i := range config.Loans {
		loan := &config.Loans[i]
		if err := claim("loan", loan.Name); err != nil {
			return fmt.Errorf("loans[%d]: %w", i, err)
		}
		if err := ip.validateLoan(loan); err != nil {
			return fmt.Errorf("loan %q: %w", loan.Name, err)
		}
	}

	for i := range config.Retirement {
		r := &config.Retirement[i]
		if err := claim("retirement", r.Name); err != nil {
			return fmt.Errorf("retirement[%d]: %w", i, err)
		}
		if err := ip.validateRetirement(&r.RetirementParams); err != nil {
			return fmt.Errorf("retirement %q: %w", r.Name, err)
		}
	}

	return nil
}

func (ip *InputParser) validateLoan(loan *domain.LoanScenario) error {
	if loan.Principal <= 0 {
		return fmt.Errorf("principal must be positive")
	}
	if loan.AnnualRatePercent < 0 {
		return fmt.Errorf("annual rate cannot be negative")
	}
	if loan.TenureMonths <= 0 {
		return fmt.Errorf("tenure months must be positive")
	}
	if loan.TenureMonths > calculation.MaxTenureMonths {
		return fmt.Errorf("tenure months cannot exceed %d", calculation.MaxTenureMonths)
	}
	if loan.AsOf != nil && loan.StartDate == nil {
		return fmt.Errorf("as_of requires start_date")
	}
	if loan.AsOf != nil && loan.AsOf.Before(*loan.StartDate) {
		return fmt.Errorf("as_of %s is before start_date %s",
			loan.AsOf.Format(dateutil.DateLayout), loan.StartDate.Format(dateutil.DateLayout))
	}

	if p := loan.Prepayment; p != nil {
		if p.Amount <= 0 {
			return fmt.Errorf("prepayment amount must be positive")
		}
		if !p.Mode.Valid() {
			return fmt.Errorf("prepayment mode is required: must be 'reduce_tenure' or 'reduce_payment'")
		}
		if p.AfterMonths < 0 || p.AfterMonths >= loan.TenureMonths {
			return fmt.Errorf("prepayment after_months must be between 0 and %d", loan.TenureMonths-1)
		}
	}
	return nil
}

func (ip *InputParser) validateRetirement(p *domain.RetirementParams) error {
	if p.CurrentAge < 0 {
		return fmt.Errorf("current age cannot be negative")
	}
	if p.RetirementAge < p.CurrentAge {
		return fmt.Errorf("retirement age %d is before current age %d", p.RetirementAge, p.CurrentAge)
	}
	if p.AnnualReturnPercent <= -100 {
		return fmt.Errorf("annual return cannot be -100%% or lower")
	}
	if p.AnnualInflationPercent <= -100 {
		return fmt.Errorf("annual inflation cannot be -100%% or lower")
	}
	if p.CurrentPortfolio < 0 {
		return fmt.Errorf("current portfolio cannot be negative")
	}
	if p.MonthlyIncome < 0 {
		return fmt.Errorf("monthly income cannot be negative")
	}
	if p.MonthlyExpenses <= 0 {
		return fmt.Errorf("monthly expenses must be positive")
	}
	if p.FIREMultiple < 0 {
		return fmt.Errorf("fire multiple cannot be negative")
	}
	return nil
}

// SaveConfiguration writes a scenario file as YAML
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleConfiguration returns a small but complete scenario file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	homeStart := time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC)
	homeAsOf := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	carStart := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	return &domain.Configuration{
		Name:     "Household plan",
		Currency: "$",
		Loans: []domain.LoanScenario{
			{
				Name: "home",
				LoanTerms: domain.LoanTerms{
					Principal:         1000000,
					AnnualRatePercent: 8.5,
					TenureMonths:      240,
				},
				StartDate: &homeStart,
				AsOf:      &homeAsOf,
				Prepayment: &domain.PrepaymentPlan{
					Amount:      200000,
					Mode:        domain.ReduceTenure,
					AfterMonths: 24,
				},
			},
			{
				Name: "car",
				LoanTerms: domain.LoanTerms{
					Principal:         100000,
					AnnualRatePercent: 10,
					TenureMonths:      12,
				},
				StartDate: &carStart,
			},
		},
		Retirement: []domain.RetirementScenario{
			{
				Name: "baseline",
				RetirementParams: domain.RetirementParams{
					CurrentAge:             30,
					RetirementAge:          60,
					AnnualReturnPercent:    12,
					AnnualInflationPercent: 6,
					CurrentPortfolio:       100000,
					MonthlyIncome:          100000,
					MonthlyExpenses:        50000,
				},
			},
			{
				Name: "lean",
				RetirementParams: domain.RetirementParams{
					CurrentAge:             30,
					RetirementAge:          50,
					AnnualReturnPercent:    10,
					AnnualInflationPercent: 5,
					CurrentPortfolio:       250000,
					MonthlyIncome:          100000,
					MonthlyExpenses:        35000,
					FIREMultiple:           30,
				},
			},
		},
	}
}
