package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/finplan/internal/config"
	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/internal/log"
	"github.com/rpgo/finplan/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newFireCmd(a *app) *cobra.Command {
	var (
		p      domain.RetirementParams
		format string
	)
	cmd := &cobra.Command{
		Use:     "fire",
		Short:   "Project a portfolio toward its inflation-adjusted FIRE number",
		Example: "  finplan fire --current-age 30 --retirement-age 60 --return 12 --inflation 6 --portfolio 100000 --income 100000 --expenses 50000",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc := domain.RetirementScenario{Name: "projection", RetirementParams: p}
			summary, err := a.engine().RunRetirementScenario(&sc)
			if err != nil {
				return err
			}
			return a.render(cmd, format, &domain.Report{Retirement: []domain.RetirementSummary{*summary}})
		},
	}
	f := cmd.Flags()
	f.IntVar(&p.CurrentAge, "current-age", 0, "current age in years")
	f.IntVar(&p.RetirementAge, "retirement-age", 0, "target retirement age")
	f.Float64Var(&p.AnnualReturnPercent, "return", 0, "expected annual return in percent")
	f.Float64Var(&p.AnnualInflationPercent, "inflation", 0, "expected annual inflation in percent")
	f.Float64Var(&p.CurrentPortfolio, "portfolio", 0, "current invested portfolio")
	f.Float64Var(&p.MonthlyIncome, "income", 0, "monthly income")
	f.Float64Var(&p.MonthlyExpenses, "expenses", 0, "monthly expenses")
	f.Float64Var(&p.FIREMultiple, "multiple", domain.DefaultFIREMultiple, "FIRE number as a multiple of annual expenses")
	f.StringVarP(&format, "format", "f", "", "output format (see `finplan formats`)")
	for _, name := range []string{"current-age", "retirement-age", "return", "inflation", "expenses"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	var format, outDir string
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Evaluate every scenario in a scenario file",
		Long: "Evaluate every loan and retirement scenario in a YAML scenario file and render a report.\n" +
			"Without --output the report is written to stdout; with --output a timestamped file is\n" +
			"written to that directory (format \"all\" writes the console report and detailed CSV).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := a.logger.WithComponent(log.ComponentConfig).With(log.FieldPath, args[0])
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				logger.Error("failed to load scenario file", log.FieldError, err)
				return err
			}
			if cfg.Currency == "" {
				cfg.Currency = a.settings.Currency
			}

			started := a.now()
			report, err := a.engine().RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			a.logger.Info("scenario file evaluated",
				log.FieldPath, args[0],
				log.FieldOperation, "run",
				log.FieldDuration, a.now().Sub(started).Milliseconds())

			if format == "" {
				format = a.settings.Format
			}
			if outDir != "" {
				out := a.logger.WithComponent(log.ComponentOutput)
				files, err := output.GenerateReport(report, format, outDir)
				if err != nil {
					out.Error("report generation failed", log.FieldFormat, format, log.FieldError, err)
					return err
				}
				for _, f := range files {
					out.Info("report written", log.FieldFormat, format, log.FieldPath, f)
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}
				return nil
			}
			if strings.EqualFold(format, "all") {
				return fmt.Errorf("format \"all\" needs --output")
			}
			return a.render(cmd, format, report)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (default from FINPLAN_FORMAT)")
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "write a timestamped report file into this directory")
	return cmd
}

func newExampleCmd(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print (or save) an example scenario file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parser := config.NewInputParser()
			example := parser.CreateExampleConfiguration()
			if path != "" {
				if err := parser.SaveConfiguration(example, path); err != nil {
					return err
				}
				a.logger.Info("example scenario file written", log.FieldPath, path)
				return nil
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(example); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringVarP(&path, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List report formats and their aliases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Formats:")
			for _, n := range output.AvailableFormatterNames() {
				fmt.Fprintf(w, "  %s\n", n)
			}
			fmt.Fprintln(w, "Aliases:")
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(w, "  %-16s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
		},
	}
}
