package calculation

import (
	"testing"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatePrepayment_ReduceTenure(t *testing.T) {
	res, err := SimulatePrepayment(1000000, 8.5, 240, 200000, domain.ReduceTenure)
	require.NoError(t, err)

	assert.Equal(t, domain.ReduceTenure, res.Mode)
	assert.Equal(t, 800000.0, res.NewPrincipal)
	assert.Equal(t, res.OriginalInstallment, res.NewInstallment)
	assert.Less(t, res.NewTenureMonths, res.OriginalTenureMonths)
	assert.Equal(t, res.OriginalTenureMonths-res.NewTenureMonths, res.TenureReductionMonths)
	assert.Greater(t, res.FinalInstallment, 0.0)
	assert.LessOrEqual(t, res.FinalInstallment, res.NewInstallment+cent)
	assert.Greater(t, res.InterestSaved, 0.0)
	assert.InDelta(t, res.OriginalTotalInterest-res.NewTotalInterest, res.InterestSaved, 1e-6)

	// the final payment clears the loan: total paid = principal + interest
	paid := float64(res.NewTenureMonths-1)*res.NewInstallment + res.FinalInstallment
	assert.InDelta(t, res.NewPrincipal+res.NewTotalInterest, paid, cent)
}

func TestSimulatePrepayment_ReducePayment(t *testing.T) {
	res, err := SimulatePrepayment(1000000, 8.5, 240, 200000, domain.ReducePayment)
	require.NoError(t, err)

	assert.Equal(t, res.OriginalTenureMonths, res.NewTenureMonths)
	assert.Zero(t, res.TenureReductionMonths)
	assert.Less(t, res.NewInstallment, res.OriginalInstallment)
	assert.InDelta(t, res.OriginalInstallment*0.8, res.NewInstallment, cent, "installment scales with principal")
	assert.Greater(t, res.InterestSaved, 0.0)
}

func TestSimulatePrepayment_TenureSavesMoreThanPayment(t *testing.T) {
	tenure, err := SimulatePrepayment(500000, 9, 120, 100000, domain.ReduceTenure)
	require.NoError(t, err)
	payment, err := SimulatePrepayment(500000, 9, 120, 100000, domain.ReducePayment)
	require.NoError(t, err)
	assert.Greater(t, tenure.InterestSaved, payment.InterestSaved)
}

func TestSimulatePrepayment_Properties(t *testing.T) {
	cases := []struct {
		principal, rate, amount float64
		remaining               int
	}{
		{100000, 10, 1, 12},
		{100000, 10, 99999, 12},
		{250000, 6, 50000, 36},
		{5000000, 7.5, 1500000, 300},
		{12000, 0, 3000, 12},
	}
	for _, c := range cases {
		rt, err := SimulatePrepayment(c.principal, c.rate, c.remaining, c.amount, domain.ReduceTenure)
		require.NoError(t, err)
		assert.LessOrEqual(t, rt.NewTenureMonths, c.remaining)
		assert.GreaterOrEqual(t, rt.NewTenureMonths, 1)

		rp, err := SimulatePrepayment(c.principal, c.rate, c.remaining, c.amount, domain.ReducePayment)
		require.NoError(t, err)
		assert.LessOrEqual(t, rp.NewInstallment, rp.OriginalInstallment)
	}
}

func TestSimulatePrepayment_ZeroRate(t *testing.T) {
	res, err := SimulatePrepayment(12000, 0, 12, 3000, domain.ReduceTenure)
	require.NoError(t, err)
	assert.Equal(t, 9, res.NewTenureMonths)
	assert.Equal(t, 3, res.TenureReductionMonths)
	assert.Equal(t, 1000.0, res.FinalInstallment)
	assert.Zero(t, res.InterestSaved)

	res, err = SimulatePrepayment(12000, 0, 12, 2500, domain.ReduceTenure)
	require.NoError(t, err)
	assert.Equal(t, 10, res.NewTenureMonths)
	assert.InDelta(t, 500, res.FinalInstallment, 1e-9, "partial last payment")

	res, err = SimulatePrepayment(12000, 0, 12, 3000, domain.ReducePayment)
	require.NoError(t, err)
	assert.Equal(t, 750.0, res.NewInstallment)
}

func TestSimulatePrepayment_Rejects(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		remaining int
		amount    float64
		mode      domain.PrepaymentMode
		kind      error
	}{
		{"full payoff", 10000, 12, 10000, domain.ReduceTenure, ErrInvalidInput},
		{"more than owed", 10000, 12, 15000, domain.ReducePayment, ErrInvalidInput},
		{"zero amount", 10000, 12, 0, domain.ReduceTenure, ErrInvalidInput},
		{"negative amount", 10000, 12, -5, domain.ReduceTenure, ErrInvalidInput},
		{"unknown mode", 10000, 12, 100, domain.PrepaymentMode(9), ErrInvalidInput},
		{"zero remaining", 10000, 0, 100, domain.ReduceTenure, ErrDegenerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SimulatePrepayment(tt.principal, 8, tt.remaining, tt.amount, tt.mode)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestSimulatePrepayment_ExtremeRateStaysFinite(t *testing.T) {
	for _, mode := range domain.PrepaymentModes() {
		res, err := SimulatePrepayment(100000, 1e6, MaxTenureMonths, 50000, mode)
		require.NoError(t, err, mode.String())
		for _, v := range []float64{res.OriginalInstallment, res.NewInstallment, res.FinalInstallment, res.OriginalTotalInterest, res.NewTotalInterest, res.InterestSaved} {
			assert.True(t, finite(v), "%s: %v", mode, v)
		}
		assert.GreaterOrEqual(t, res.NewTenureMonths, 1)
		assert.LessOrEqual(t, res.NewTenureMonths, MaxTenureMonths)
	}
}

func TestMonthsToRepay_CapsUnboundedSolutions(t *testing.T) {
	r := MonthlyRate(12)
	// an installment equal to the interest never amortizes
	assert.Equal(t, 360, monthsToRepay(100000, r, 100000*r, 360))
	// below the interest the closed form has no solution
	assert.Equal(t, 360, monthsToRepay(100000, r, 100000*r/2, 360))
	assert.Equal(t, 12, monthsToRepay(12000, 0, 1000, 24))
	assert.Equal(t, 24, monthsToRepay(12000, 0, 100, 24))
}
