package calculation

import (
	"time"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/pkg/dateutil"
)

// BuildInstallments pins each schedule entry to a due date Month months after start.
// Every installment starts out pending; use ReconcileInstallments to apply payments.
func BuildInstallments(schedule []domain.EMIScheduleEntry, start time.Time) []domain.Installment {
	out := make([]domain.Installment, len(schedule))
	for i, e := range schedule {
		out[i] = domain.Installment{
			EMIScheduleEntry: e,
			DueDate:          dateutil.AddMonths(start, e.Month),
			Status:           domain.StatusPending,
		}
	}
	return out
}

// ReconcileInstallments returns a copy of installments with every installment due on or
// before asOf marked paid and every later one pending. The input is not modified.
func ReconcileInstallments(installments []domain.Installment, asOf time.Time) []domain.Installment {
	out := make([]domain.Installment, len(installments))
	for i, inst := range installments {
		if inst.DueDate.After(asOf) {
			inst.Status = domain.StatusPending
		} else {
			inst.Status = domain.StatusPaid
		}
		out[i] = inst
	}
	return out
}

// SummarizeProgress totals the paid installments of a reconciled schedule.
// CompletionPercent is left unrounded.
func SummarizeProgress(installments []domain.Installment) domain.LoanProgress {
	p := domain.LoanProgress{TotalInstallments: len(installments)}
	if len(installments) == 0 {
		return p
	}
	p.Outstanding = installments[0].Remaining + installments[0].Principal
	for _, inst := range installments {
		if inst.Status != domain.StatusPaid {
			continue
		}
		p.PaidInstallments++
		p.PrincipalPaid += inst.Principal
		p.InterestPaid += inst.Interest
		p.Outstanding = inst.Remaining
	}
	p.CompletionPercent = float64(p.PaidInstallments) / float64(p.TotalInstallments) * 100
	return p
}
