package calculation

import (
	"math"

	"github.com/rpgo/finplan/internal/domain"
)

// monthEpsilon keeps an exact month count from rounding up on float noise
const monthEpsilon = 1e-9

// SimulatePrepayment applies a lump-sum prepayment to the remaining part of a loan and
// compares the outcome with the untouched schedule.
//
// The prepayment must be positive and strictly less than currentPrincipal; a full payoff
// leaves no schedule to compare against.
func SimulatePrepayment(currentPrincipal, annualRatePercent float64, remainingTenureMonths int, prepaymentAmount float64, mode domain.PrepaymentMode) (domain.PrepaymentResult, error) {
	if err := validateTerms(currentPrincipal, annualRatePercent, remainingTenureMonths); err != nil {
		return domain.PrepaymentResult{}, err
	}
	if !finite(prepaymentAmount) || prepaymentAmount <= 0 {
		return domain.PrepaymentResult{}, invalid("prepayment", "must be positive, got %g", prepaymentAmount)
	}
	if prepaymentAmount >= currentPrincipal {
		return domain.PrepaymentResult{}, invalid("prepayment", "must be less than the current principal %g, got %g", currentPrincipal, prepaymentAmount)
	}
	if !mode.Valid() {
		return domain.PrepaymentResult{}, invalid("mode", "unknown prepayment mode %d", int(mode))
	}

	r := MonthlyRate(annualRatePercent)
	original, err := amortize(currentPrincipal, r, remainingTenureMonths)
	if err != nil {
		return domain.PrepaymentResult{}, err
	}
	base := domain.PrepaymentResult{
		Mode:                  mode,
		Prepayment:            prepaymentAmount,
		OriginalPrincipal:     currentPrincipal,
		OriginalInstallment:   original[0].Installment,
		OriginalTenureMonths:  remainingTenureMonths,
		OriginalTotalInterest: TotalInterest(original),
		NewPrincipal:          currentPrincipal - prepaymentAmount,
	}

	var res domain.PrepaymentResult
	switch mode {
	case domain.ReduceTenure:
		res = reduceTenure(base, r)
	default:
		res, err = reducePayment(base, r)
		if err != nil {
			return domain.PrepaymentResult{}, err
		}
	}
	if !finite(res.OriginalTotalInterest) || !finite(res.NewTotalInterest) {
		return domain.PrepaymentResult{}, degenerate("interest", "total interest overflows for principal %g at monthly rate %g", currentPrincipal, r)
	}
	return res, nil
}

// reduceTenure keeps the installment and finds how many months the reduced principal needs.
func reduceTenure(res domain.PrepaymentResult, r float64) domain.PrepaymentResult {
	emi := res.OriginalInstallment
	months := monthsToRepay(res.NewPrincipal, r, emi, res.OriginalTenureMonths)
	interest, final := repayAtInstallment(res.NewPrincipal, r, emi, months)

	res.NewInstallment = emi
	res.NewTenureMonths = months
	res.TenureReductionMonths = res.OriginalTenureMonths - months
	res.FinalInstallment = final
	res.NewTotalInterest = interest
	res.InterestSaved = res.OriginalTotalInterest - interest
	return res
}

// reducePayment keeps the tenure and re-amortizes the reduced principal over it.
func reducePayment(res domain.PrepaymentResult, r float64) (domain.PrepaymentResult, error) {
	schedule, err := amortize(res.NewPrincipal, r, res.OriginalTenureMonths)
	if err != nil {
		return res, err
	}

	res.NewInstallment = schedule[0].Installment
	res.NewTenureMonths = res.OriginalTenureMonths
	res.FinalInstallment = res.NewInstallment
	res.NewTotalInterest = TotalInterest(schedule)
	res.InterestSaved = res.OriginalTotalInterest - res.NewTotalInterest
	return res, nil
}

// monthsToRepay solves P = emi * (1 - (1+r)^-n) / r for n and rounds up, never
// exceeding maxMonths. A solution that is not finite means the payment barely covers
// interest, so the full maxMonths are needed.
func monthsToRepay(principal, r, emi float64, maxMonths int) int {
	var n float64
	if r == 0 {
		n = principal / emi
	} else {
		n = -math.Log1p(-r*principal/emi) / math.Log1p(r)
	}
	if !(n < float64(maxMonths)) {
		return maxMonths
	}
	months := int(math.Ceil(n - monthEpsilon))
	if months < 1 {
		months = 1
	}
	return months
}

// repayAtInstallment pays emi each month for the given number of months, with the last
// payment settling whatever remains. It returns the total interest and the final payment.
func repayAtInstallment(principal, r, emi float64, months int) (float64, float64) {
	var totalInterest, final float64
	balance := principal
	for m := 1; m <= months; m++ {
		interest := balance * r
		totalInterest += interest
		payment := emi
		if m == months || payment > balance+interest {
			payment = balance + interest
		}
		balance -= payment - interest
		final = payment
		if balance <= 0 {
			break
		}
	}
	return totalInterest, final
}
