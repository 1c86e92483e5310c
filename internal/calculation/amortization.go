package calculation

import (
	"math"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/pkg/decimal"
)

// MaxTenureMonths bounds the number of installments a loan may have (100 years)
const MaxTenureMonths = 1200

// MonthlyRate converts an annual percentage rate into a monthly fraction
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 12 / 100
}

// validateTerms checks the loan preconditions shared by every amortization operation.
// A zero rate is valid (interest-free loan); a zero tenure is degenerate.
func validateTerms(principal, annualRatePercent float64, tenureMonths int) error {
	if !finite(principal) || principal <= 0 {
		return invalid("principal", "must be positive, got %g", principal)
	}
	if !finite(annualRatePercent) || annualRatePercent < 0 {
		return invalid("annual_rate_percent", "cannot be negative, got %g", annualRatePercent)
	}
	if tenureMonths == 0 {
		return degenerate("tenure_months", "cannot amortize over zero periods")
	}
	if tenureMonths < 0 || tenureMonths > MaxTenureMonths {
		return invalid("tenure_months", "must be between 1 and %d, got %d", MaxTenureMonths, tenureMonths)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// installment is the annuity payment P*r / (1 - (1+r)^-n), or P/n when r is zero.
// The discount factor goes through Expm1/Log1p so it neither overflows for large n*r
// nor cancels to zero for tiny r.
func installment(principal, r float64, n int) (float64, error) {
	emi := principal / float64(n)
	if r != 0 {
		emi = principal * r / -math.Expm1(-float64(n)*math.Log1p(r))
	}
	if !finite(emi) || emi <= 0 {
		return 0, degenerate("installment", "not representable for principal %g at monthly rate %g over %d months", principal, r, n)
	}
	return emi, nil
}

// CalculateEMI returns the fixed monthly installment for a loan
func CalculateEMI(principal, annualRatePercent float64, tenureMonths int) (float64, error) {
	if err := validateTerms(principal, annualRatePercent, tenureMonths); err != nil {
		return 0, err
	}
	return installment(principal, MonthlyRate(annualRatePercent), tenureMonths)
}

// GenerateEMISchedule builds the month-by-month amortization table of a loan.
// It returns exactly tenureMonths entries; figures are unrounded.
func GenerateEMISchedule(principal, annualRatePercent float64, tenureMonths int) ([]domain.EMIScheduleEntry, error) {
	if err := validateTerms(principal, annualRatePercent, tenureMonths); err != nil {
		return nil, err
	}
	return amortize(principal, MonthlyRate(annualRatePercent), tenureMonths)
}

func amortize(principal, r float64, n int) ([]domain.EMIScheduleEntry, error) {
	emi, err := installment(principal, r, n)
	if err != nil {
		return nil, err
	}
	schedule := make([]domain.EMIScheduleEntry, n)
	remaining := principal
	for i := range schedule {
		interest := remaining * r
		principalPart := emi - interest
		remaining -= principalPart
		if i == n-1 {
			// absorb floating-point drift
			remaining = 0
		}
		schedule[i] = domain.EMIScheduleEntry{
			Month:       i + 1,
			Installment: emi,
			Interest:    interest,
			Principal:   principalPart,
			Remaining:   remaining,
		}
	}
	return schedule, nil
}

// CalculateOutstandingPrincipal returns the principal still owed after elapsedMonths installments.
func CalculateOutstandingPrincipal(principal, annualRatePercent float64, tenureMonths, elapsedMonths int) (float64, error) {
	if err := validateTerms(principal, annualRatePercent, tenureMonths); err != nil {
		return 0, err
	}
	if elapsedMonths < 0 {
		return 0, invalid("elapsed_months", "cannot be negative, got %d", elapsedMonths)
	}
	if elapsedMonths == 0 {
		return principal, nil
	}
	if elapsedMonths >= tenureMonths {
		return 0, nil
	}

	r := MonthlyRate(annualRatePercent)
	emi, err := installment(principal, r, tenureMonths)
	if err != nil {
		return 0, err
	}
	remaining := principal
	for i := 0; i < elapsedMonths; i++ {
		remaining -= emi - remaining*r
	}
	return remaining, nil
}

// TotalInterest sums the interest portions of a schedule
func TotalInterest(schedule []domain.EMIScheduleEntry) float64 {
	parts := make([]float64, len(schedule))
	for i, e := range schedule {
		parts[i] = e.Interest
	}
	return decimal.Sum(parts...).Float()
}

// TotalPayment sums the installments of a schedule
func TotalPayment(schedule []domain.EMIScheduleEntry) float64 {
	parts := make([]float64, len(schedule))
	for i, e := range schedule {
		parts[i] = e.Installment
	}
	return decimal.Sum(parts...).Float()
}
