package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/npsgo/pension-calculator/internal/calculation"
	"github.com/npsgo/pension-calculator/internal/domain"
	"github.com/npsgo/pension-calculator/internal/output"
)

// Execute runs the CLI.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. Running the root with no
// subcommand starts the interactive prompt.
func NewRootCmd() *cobra.Command {
	var (
		debug          bool
		retirementAge  int
		annuityRatePct float64
		increasePct    float64
	)

	cmd := &cobra.Command{
		Use:          "npscalc",
		Short:        "npscalc - NPS retirement corpus and pension projection calculator",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, retirementAge, annuityRatePct, increasePct, debug)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging to stderr")
	cmd.Flags().IntVar(&retirementAge, "retirement-age", domain.DefaultRetirementAge, "retirement age")
	cmd.Flags().Float64Var(&annuityRatePct, "annuity-rate", 6, "annual annuity payout rate (%)")
	cmd.Flags().Float64Var(&increasePct, "annual-increase", 0, "annual increase in contribution (%)")

	cmd.AddCommand(newProjectCmd(&debug))
	cmd.AddCommand(newServeCmd(&debug))
	return cmd
}

// runInteractive prompts for the saver's details and prints the detailed
// report. Percentages are taken 0–100 and converted to fractions before
// the engine sees them. Bad input gets a message, never a crash.
func runInteractive(cmd *cobra.Command, retirementAge int, annuityRatePct, increasePct float64, debug bool) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "NPS Pension Calculator")
	fmt.Fprintln(out)

	age, err := promptFloat(reader, out, "Current Age: ")
	if err != nil {
		return reportBadInput(out, err)
	}
	balance, err := promptFloat(reader, out, "Current NPS Balance (₹): ")
	if err != nil {
		return reportBadInput(out, err)
	}
	contribution, err := promptFloat(reader, out, "Monthly Contribution (₹): ")
	if err != nil {
		return reportBadInput(out, err)
	}
	annuityPct, err := promptFloat(reader, out, "Annuity Ratio (% of corpus kept for pension): ")
	if err != nil {
		return reportBadInput(out, err)
	}
	returnPct, err := promptFloat(reader, out, "Expected Annual Return (%): ")
	if err != nil {
		return reportBadInput(out, err)
	}

	input := domain.ProjectionInput{
		CurrentAge:          int(age),
		RetirementAge:       retirementAge,
		CurrentBalance:      decimal.NewFromFloat(balance),
		MonthlyContribution: decimal.NewFromFloat(contribution),
		AnnualReturnRate:    percentToFraction(returnPct),
		AnnualIncreaseRate:  percentToFraction(increasePct),
		AnnuityRatio:        percentToFraction(annuityPct),
		AnnuityRate:         percentToFraction(annuityRatePct),
	}

	engine := calculation.NewProjectionEngine()
	engine.SetLogger(newLogger(debug))

	report, err := buildReport(engine, input)
	if err != nil {
		var invalid *calculation.InvalidInputError
		if errors.As(err, &invalid) {
			fmt.Fprintf(out, "\nSorry, those inputs don't work: %s (%s).\n", invalid.Reason, invalid.Field)
			return nil
		}
		return err
	}

	data, err := output.ConsoleVerboseFormatter{}.Format(report)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	_, err = out.Write(data)
	return err
}

// buildReport runs the projection and attaches the yearly schedule.
func buildReport(engine *calculation.ProjectionEngine, input domain.ProjectionInput) (*domain.Report, error) {
	result, err := engine.Project(input)
	if err != nil {
		return nil, err
	}
	schedule, err := engine.GenerateSchedule(input)
	if err != nil {
		return nil, err
	}
	return &domain.Report{Input: input, Result: *result, Schedule: schedule}, nil
}

func promptFloat(reader *bufio.Reader, out io.Writer, prompt string) (float64, error) {
	fmt.Fprint(out, prompt)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(line), 64)
}

func reportBadInput(out io.Writer, err error) error {
	fmt.Fprintf(out, "\nThat doesn't look like a number (%v). Please try again.\n", err)
	return nil
}

func percentToFraction(pct float64) decimal.Decimal {
	return decimal.NewFromFloat(pct).Div(decimal.NewFromInt(100))
}
