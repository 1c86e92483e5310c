package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/internal/log"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds concurrent scenario evaluation when no limit is configured
const DefaultWorkers = 4

// CalculationEngine evaluates the scenarios of a configuration
type CalculationEngine struct {
	Workers int
	Logger  Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Workers: DefaultWorkers,
		Logger:  NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunLoanScenario evaluates one loan: its schedule, dated installments and progress when a
// start date is given, outstanding principal when an as-of date is given, and the
// prepayment under every mode when a prepayment is planned.
func (ce *CalculationEngine) RunLoanScenario(sc *domain.LoanScenario) (*domain.LoanSummary, error) {
	schedule, err := GenerateEMISchedule(sc.Principal, sc.AnnualRatePercent, sc.TenureMonths)
	if err != nil {
		return nil, err
	}

	summary := &domain.LoanSummary{
		Name:          sc.Name,
		Terms:         sc.LoanTerms,
		Installment:   schedule[0].Installment,
		TotalInterest: TotalInterest(schedule),
		TotalPayment:  TotalPayment(schedule),
		Schedule:      schedule,
	}
	if !finite(summary.TotalPayment) {
		return nil, degenerate("total_payment", "overflows for principal %g over %d months", sc.Principal, sc.TenureMonths)
	}

	if sc.StartDate != nil {
		installments := BuildInstallments(schedule, *sc.StartDate)
		if sc.AsOf != nil {
			installments = ReconcileInstallments(installments, *sc.AsOf)
			progress := SummarizeProgress(installments)
			summary.Progress = &progress
		}
		summary.Installments = installments
	}

	if sc.StartDate != nil && sc.AsOf != nil {
		elapsed := ElapsedMonths(*sc.StartDate, *sc.AsOf)
		if elapsed < 0 {
			elapsed = 0
		}
		outstanding, err := CalculateOutstandingPrincipal(sc.Principal, sc.AnnualRatePercent, sc.TenureMonths, elapsed)
		if err != nil {
			return nil, err
		}
		summary.ElapsedMonths = elapsed
		summary.OutstandingPrincipal = &outstanding
	}

	if sc.Prepayment != nil {
		if err := ce.applyPrepayment(sc, summary); err != nil {
			return nil, fmt.Errorf("prepayment: %w", err)
		}
	}

	ce.Logger.Debug("loan scenario evaluated",
		log.FieldScenario, sc.Name,
		"installment", summary.Installment,
		"total_interest", summary.TotalInterest)
	return summary, nil
}

func (ce *CalculationEngine) applyPrepayment(sc *domain.LoanScenario, summary *domain.LoanSummary) error {
	plan := sc.Prepayment
	if plan.AfterMonths < 0 || plan.AfterMonths >= sc.TenureMonths {
		return invalid("after_months", "must be between 0 and %d, got %d", sc.TenureMonths-1, plan.AfterMonths)
	}
	current, err := CalculateOutstandingPrincipal(sc.Principal, sc.AnnualRatePercent, sc.TenureMonths, plan.AfterMonths)
	if err != nil {
		return err
	}
	remaining := sc.TenureMonths - plan.AfterMonths

	for _, mode := range domain.PrepaymentModes() {
		res, err := SimulatePrepayment(current, sc.AnnualRatePercent, remaining, plan.Amount, mode)
		if err != nil {
			return err
		}
		summary.PrepaymentAlternatives = append(summary.PrepaymentAlternatives, res)
		if mode == plan.Mode {
			chosen := res
			summary.Prepayment = &chosen
		}
	}
	return nil
}

// RunRetirementScenario projects one retirement scenario
func (ce *CalculationEngine) RunRetirementScenario(sc *domain.RetirementScenario) (*domain.RetirementSummary, error) {
	res, err := Project(sc.RetirementParams)
	if err != nil {
		return nil, err
	}
	ce.Logger.Debug("retirement scenario evaluated",
		log.FieldScenario, sc.Name,
		"fire_number", res.FIRENumber,
		"achievable", res.Achievable)
	return &domain.RetirementSummary{
		Name:   sc.Name,
		Result: res,
		Points: res.CollectPoints(),
	}, nil
}

// RunScenarios evaluates every scenario of config concurrently and assembles a report.
// Summaries keep configuration order. The first failing scenario cancels the rest.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.Report, error) {
	workers := ce.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	loans := make([]domain.LoanSummary, len(config.Loans))
	retirement := make([]domain.RetirementSummary, len(config.Retirement))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range config.Loans {
		sc := &config.Loans[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			summary, err := ce.RunLoanScenario(sc)
			if err != nil {
				return fmt.Errorf("loan %q: %w", sc.Name, err)
			}
			loans[i] = *summary
			return nil
		})
	}
	for i := range config.Retirement {
		sc := &config.Retirement[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			summary, err := ce.RunRetirementScenario(sc)
			if err != nil {
				return fmt.Errorf("retirement %q: %w", sc.Name, err)
			}
			retirement[i] = *summary
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		ce.Logger.Error("scenario run failed", "config", config.Name, log.FieldError, err)
		return nil, err
	}

	report := &domain.Report{
		Name:        config.Name,
		Currency:    config.Currency,
		Loans:       loans,
		Retirement:  retirement,
		Assumptions: config.GenerateAssumptions(),
	}
	report.Analysis = ce.generateAnalysis(report)

	ce.Logger.Info("scenarios evaluated",
		"config", config.Name,
		"loans", len(loans),
		"retirement", len(retirement),
		log.FieldWorkers, workers)
	return report, nil
}
