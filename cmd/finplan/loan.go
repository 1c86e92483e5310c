package main

import (
	"fmt"
	"time"

	"github.com/rpgo/finplan/internal/calculation"
	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/internal/output"
	"github.com/rpgo/finplan/pkg/dateutil"
	"github.com/rpgo/finplan/pkg/decimal"
	"github.com/spf13/cobra"
)

type loanFlags struct {
	principal float64
	rate      float64
	tenure    int
}

func (f *loanFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.principal, "principal", 0, "loan principal")
	cmd.Flags().Float64Var(&f.rate, "rate", 0, "annual interest rate in percent (8.5 means 8.5%)")
	cmd.Flags().IntVar(&f.tenure, "tenure", 0, "tenure in months")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("tenure")
}

func (f *loanFlags) terms() domain.LoanTerms {
	return domain.LoanTerms{Principal: f.principal, AnnualRatePercent: f.rate, TenureMonths: f.tenure}
}

// parseOptionalDate returns nil for an empty flag value
func parseOptionalDate(flag, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := dateutil.ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flag, err)
	}
	return &d, nil
}

// render writes a single-purpose report through a registered formatter
func (a *app) render(cmd *cobra.Command, format string, report *domain.Report) error {
	if format == "" {
		format = a.settings.Format
	}
	f, err := output.Resolve(format)
	if err != nil {
		return err
	}
	if report.Currency == "" {
		report.Currency = a.settings.Currency
	}
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func newScheduleCmd(a *app) *cobra.Command {
	var (
		lf          loanFlags
		start, asOf string
		format      string
	)
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the EMI and month-by-month amortization schedule of a loan",
		Example: "  finplan schedule --principal 100000 --rate 10 --tenure 12\n" +
			"  finplan schedule --principal 100000 --rate 10 --tenure 12 --start 2024-01-31 --as-of 2024-06-30",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc := domain.LoanScenario{Name: "loan", LoanTerms: lf.terms()}
			var err error
			if sc.StartDate, err = parseOptionalDate("start", start); err != nil {
				return err
			}
			if sc.AsOf, err = parseOptionalDate("as-of", asOf); err != nil {
				return err
			}
			if sc.AsOf != nil && sc.StartDate == nil {
				return fmt.Errorf("--as-of requires --start")
			}
			if sc.StartDate != nil && sc.AsOf == nil {
				now := a.now()
				sc.AsOf = &now
			}

			summary, err := a.engine().RunLoanScenario(&sc)
			if err != nil {
				return err
			}
			return a.render(cmd, format, &domain.Report{Loans: []domain.LoanSummary{*summary}})
		},
	}
	lf.register(cmd)
	cmd.Flags().StringVar(&start, "start", "", "loan start date (YYYY-MM-DD); enables due dates")
	cmd.Flags().StringVar(&asOf, "as-of", "", "reconcile paid installments as of this date (default today)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (see `finplan formats`)")
	return cmd
}

func newOutstandingCmd(a *app) *cobra.Command {
	var (
		lf          loanFlags
		elapsed     int
		start, asOf string
	)
	cmd := &cobra.Command{
		Use:   "outstanding",
		Short: "Print the principal still owed after a number of installments",
		Example: "  finplan outstanding --principal 1000000 --rate 8.5 --tenure 240 --elapsed 24\n" +
			"  finplan outstanding --principal 1000000 --rate 8.5 --tenure 240 --start 2023-03-15",
		RunE: func(cmd *cobra.Command, _ []string) error {
			startDate, err := parseOptionalDate("start", start)
			if err != nil {
				return err
			}
			asOfDate, err := parseOptionalDate("as-of", asOf)
			if err != nil {
				return err
			}

			months := elapsed
			switch {
			case cmd.Flags().Changed("elapsed") && startDate != nil:
				return fmt.Errorf("use either --elapsed or --start, not both")
			case startDate != nil:
				if asOfDate == nil {
					now := a.now()
					asOfDate = &now
				}
				months = calculation.ElapsedMonths(*startDate, *asOfDate)
				if months < 0 {
					months = 0
				}
			case !cmd.Flags().Changed("elapsed"):
				return fmt.Errorf("one of --elapsed or --start is required")
			}

			outstanding, err := calculation.CalculateOutstandingPrincipal(lf.principal, lf.rate, lf.tenure, months)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Outstanding principal after %d of %d installments: %s\n",
				min(months, lf.tenure), lf.tenure, output.FormatCurrency(outstanding, currencyOr(a.settings.Currency)))
			return nil
		},
	}
	lf.register(cmd)
	cmd.Flags().IntVar(&elapsed, "elapsed", 0, "installments already paid")
	cmd.Flags().StringVar(&start, "start", "", "loan start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&asOf, "as-of", "", "count installments up to this date (default today)")
	return cmd
}

func newPrepayCmd(a *app) *cobra.Command {
	var (
		principal, rate, amount float64
		remaining               int
		mode                    string
	)
	cmd := &cobra.Command{
		Use:     "prepay",
		Short:   "Compare the remaining loan before and after a lump-sum prepayment",
		Example: "  finplan prepay --principal 800000 --rate 8.5 --remaining 216 --amount 200000 --mode reduce_tenure",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := domain.ParsePrepaymentMode(mode)
			if err != nil {
				return fmt.Errorf("--mode: %w", err)
			}
			res, err := calculation.SimulatePrepayment(principal, rate, remaining, amount, m)
			if err != nil {
				return err
			}
			a.logger.Debug("prepayment simulated", "mode", m.String(), "interest_saved", res.InterestSaved)
			writePrepayment(cmd, res, currencyOr(a.settings.Currency))
			return nil
		},
	}
	cmd.Flags().Float64Var(&principal, "principal", 0, "current outstanding principal")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual interest rate in percent")
	cmd.Flags().IntVar(&remaining, "remaining", 0, "remaining tenure in months")
	cmd.Flags().Float64Var(&amount, "amount", 0, "prepayment amount")
	cmd.Flags().StringVar(&mode, "mode", domain.ReduceTenure.String(), "reduce_tenure or reduce_payment")
	for _, name := range []string{"principal", "rate", "remaining", "amount"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func writePrepayment(cmd *cobra.Command, res domain.PrepaymentResult, sym string) {
	w := cmd.OutOrStdout()
	cur := func(v float64) string { return output.FormatCurrency(v, sym) }
	fmt.Fprintf(w, "Prepayment of %s (%s)\n", cur(res.Prepayment), res.Mode)
	fmt.Fprintf(w, "%-20s %18s %18s\n", "", "BEFORE", "AFTER")
	fmt.Fprintf(w, "%-20s %18s %18s\n", "Principal", cur(res.OriginalPrincipal), cur(res.NewPrincipal))
	fmt.Fprintf(w, "%-20s %18s %18s\n", "Installment", cur(res.OriginalInstallment), cur(res.NewInstallment))
	fmt.Fprintf(w, "%-20s %18d %18d\n", "Tenure (months)", res.OriginalTenureMonths, res.NewTenureMonths)
	fmt.Fprintf(w, "%-20s %18s %18s\n", "Total interest", cur(res.OriginalTotalInterest), cur(res.NewTotalInterest))
	if res.Mode == domain.ReduceTenure {
		fmt.Fprintf(w, "Final installment: %s\n", cur(res.FinalInstallment))
		fmt.Fprintf(w, "Tenure reduced by: %d months\n", res.TenureReductionMonths)
	}
	fmt.Fprintf(w, "Interest saved: %s\n", cur(res.InterestSaved))
}

func currencyOr(sym string) string {
	if sym == "" {
		return decimal.DefaultSymbol
	}
	return sym
}
