// Command finplan evaluates loan amortization, prepayment and retirement
// (financial independence) scenarios from flags or a YAML scenario file.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rpgo/finplan/internal/calculation"
	"github.com/rpgo/finplan/internal/cli"
	"github.com/rpgo/finplan/internal/log"
	"github.com/spf13/cobra"
)

// app carries process-wide state into the subcommands
type app struct {
	settings *cli.Settings
	logger   *log.Logger
	// now supplies the default as-of date and times runs; engines never read the clock themselves
	now func() time.Time
}

func main() {
	cli.LoadEnvFile()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{settings: cli.LoadSettings(), now: time.Now}
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode separates bad input (2) from everything else (1)
func exitCode(err error) int {
	if errors.Is(err, calculation.ErrInvalidInput) || errors.Is(err, calculation.ErrDegenerate) {
		return 2
	}
	return 1
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "finplan",
		Short:         "Loan amortization, prepayment and retirement projection calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.settings.Validate(); err != nil {
				return err
			}
			logger, err := cli.SetupLogger(a.settings, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}

	root.AddCommand(
		newScheduleCmd(a),
		newOutstandingCmd(a),
		newPrepayCmd(a),
		newFireCmd(a),
		newRunCmd(a),
		newExampleCmd(a),
		newFormatsCmd(),
	)
	return root
}

// engine builds a calculation engine wired to the configured logger and worker limit
func (a *app) engine() *calculation.CalculationEngine {
	ce := calculation.NewCalculationEngine()
	ce.Workers = a.settings.Workers
	if a.logger != nil {
		ce.SetLogger(a.logger.WithComponent(log.ComponentCalculation))
	}
	return ce
}
