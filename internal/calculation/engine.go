package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/npsgo/pension-calculator/internal/domain"
)

var (
	decimalOne    = decimal.NewFromInt(1)
	decimalTwelve = decimal.NewFromInt(12)
)

// ProjectionEngine computes retirement corpus projections. It performs
// no I/O and holds no state between calls; a single engine may be shared
// by concurrent callers.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates a new projection engine
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// Project computes the retirement corpus for the given saver parameters:
// the contribution stream compounds monthly as an ordinary annuity, the
// existing balance compounds annually, and the corpus splits into an
// annuity purchase and a lump sum at the configured ratio.
func (pe *ProjectionEngine) Project(input domain.ProjectionInput) (*domain.ProjectionResult, error) {
	if err := ValidateInput(input); err != nil {
		return nil, err
	}

	years := input.RetirementAge - input.CurrentAge
	months := years * 12
	monthlyRate := input.AnnualReturnRate.Div(decimalTwelve)

	pe.Logger.Debugf("projecting %d months at monthly rate %s", months, monthlyRate)

	fvContributions := futureValueOfContributions(
		input.MonthlyContribution, monthlyRate, input.AnnualIncreaseRate, months)

	annualFactor := decimalOne.Add(input.AnnualReturnRate)
	fvCurrent := input.CurrentBalance.Mul(annualFactor.Pow(decimal.NewFromInt(int64(years))))

	totalCorpus := fvContributions.Add(fvCurrent)
	annuityCorpus := totalCorpus.Mul(input.AnnuityRatio)
	lumpSum := totalCorpus.Mul(decimalOne.Sub(input.AnnuityRatio))
	monthlyPension := annuityCorpus.Mul(input.AnnuityRate).Div(decimalTwelve)

	totalInvested := input.CurrentBalance.Add(
		totalContributed(input.MonthlyContribution, input.AnnualIncreaseRate, months))

	return &domain.ProjectionResult{
		TotalCorpus:        totalCorpus,
		AnnuityCorpus:      annuityCorpus,
		LumpSum:            lumpSum,
		MonthlyPension:     monthlyPension,
		FVContributions:    fvContributions,
		FVCurrent:          fvCurrent,
		TotalInvested:      totalInvested,
		Growth:             totalCorpus.Sub(totalInvested),
		YearsToRetirement:  years,
		MonthsToRetirement: months,
	}, nil
}

// futureValueOfContributions values the monthly contribution stream at
// retirement. The zero-rate case accumulates without growth rather than
// dividing by a zero monthly rate; a non-zero step-up switches from the
// closed form to the month-by-month recurrence.
func futureValueOfContributions(contribution, monthlyRate, increaseRate decimal.Decimal, months int) decimal.Decimal {
	if contribution.IsZero() || months == 0 {
		return decimal.Zero
	}

	if increaseRate.IsZero() {
		if monthlyRate.IsZero() {
			return contribution.Mul(decimal.NewFromInt(int64(months)))
		}
		growth := decimalOne.Add(monthlyRate).Pow(decimal.NewFromInt(int64(months)))
		return contribution.Mul(growth.Sub(decimalOne)).Div(monthlyRate)
	}

	growthFactor := decimalOne.Add(monthlyRate)
	stepFactor := decimalOne.Add(increaseRate)
	fv := decimal.Zero
	monthly := contribution
	for m := 1; m <= months; m++ {
		fv = fv.Mul(growthFactor).Add(monthly)
		if m%12 == 0 {
			monthly = monthly.Mul(stepFactor)
		}
	}
	return fv
}

// totalContributed sums the raw contributions paid in, before growth.
func totalContributed(contribution, increaseRate decimal.Decimal, months int) decimal.Decimal {
	if increaseRate.IsZero() {
		return contribution.Mul(decimal.NewFromInt(int64(months)))
	}

	stepFactor := decimalOne.Add(increaseRate)
	total := decimal.Zero
	monthly := contribution
	for m := 1; m <= months; m++ {
		total = total.Add(monthly)
		if m%12 == 0 {
			monthly = monthly.Mul(stepFactor)
		}
	}
	return total
}

// ValidateInput checks the domain constraints on a projection input.
func ValidateInput(input domain.ProjectionInput) error {
	if input.CurrentAge <= 0 {
		return invalidInput("current_age", "must be positive")
	}
	if input.RetirementAge <= input.CurrentAge {
		return invalidInput("retirement_age", "must exceed current age")
	}
	if input.CurrentBalance.IsNegative() {
		return invalidInput("current_balance", "cannot be negative")
	}
	if input.MonthlyContribution.IsNegative() {
		return invalidInput("monthly_contribution", "cannot be negative")
	}
	if input.AnnualReturnRate.IsNegative() {
		return invalidInput("annual_return_rate", "cannot be negative")
	}
	if input.AnnualIncreaseRate.IsNegative() {
		return invalidInput("annual_increase_rate", "cannot be negative")
	}
	if input.AnnuityRatio.IsNegative() || input.AnnuityRatio.GreaterThan(decimalOne) {
		return invalidInput("annuity_ratio", "must be between 0 and 1")
	}
	if input.AnnuityRate.IsNegative() {
		return invalidInput("annuity_rate", "cannot be negative")
	}
	return nil
}
