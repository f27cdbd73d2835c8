package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npsgo/pension-calculator/internal/domain"
)

func referenceInput() domain.ProjectionInput {
	return domain.ProjectionInput{
		CurrentAge:          45,
		RetirementAge:       60,
		CurrentBalance:      decimal.NewFromInt(600000),
		MonthlyContribution: decimal.NewFromInt(10000),
		AnnualReturnRate:    decimal.NewFromFloat(0.08),
		AnnuityRatio:        decimal.NewFromFloat(0.4),
		AnnuityRate:         decimal.NewFromFloat(0.06),
	}
}

func TestProjectReferenceScenario(t *testing.T) {
	engine := NewProjectionEngine()
	result, err := engine.Project(referenceInput())
	require.NoError(t, err)

	assert.Equal(t, 15, result.YearsToRetirement)
	assert.Equal(t, 180, result.MonthsToRetirement)

	// fvContributions = 10000 * ((1 + 0.08/12)^180 - 1) / (0.08/12)
	// fvCurrent       = 600000 * 1.08^15
	assert.InEpsilon(t, 3460382, result.FVContributions.InexactFloat64(), 0.001)
	assert.InEpsilon(t, 1903301, result.FVCurrent.InexactFloat64(), 0.001)
	assert.InEpsilon(t, 5363684, result.TotalCorpus.InexactFloat64(), 0.001)

	assert.InEpsilon(t, 5363684*0.4, result.AnnuityCorpus.InexactFloat64(), 0.002)
	assert.InEpsilon(t, 5363684*0.6, result.LumpSum.InexactFloat64(), 0.002)
	// monthlyPension = annuityCorpus * 0.06 / 12
	assert.InEpsilon(t, 5363684*0.4*0.06/12, result.MonthlyPension.InexactFloat64(), 0.002)

	// totalInvested = 600000 + 10000*180
	assert.True(t, result.TotalInvested.Equal(decimal.NewFromInt(2400000)),
		"total invested: got %s", result.TotalInvested)
	assert.True(t, result.Growth.Equal(result.TotalCorpus.Sub(result.TotalInvested)))
}

func TestProjectSplitInvariant(t *testing.T) {
	engine := NewProjectionEngine()

	tests := []struct {
		name  string
		ratio float64
	}{
		{"no annuity", 0.0},
		{"typical split", 0.4},
		{"mostly annuity", 0.75},
		{"full annuity", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := referenceInput()
			input.AnnuityRatio = decimal.NewFromFloat(tt.ratio)

			result, err := engine.Project(input)
			require.NoError(t, err)

			sum := result.AnnuityCorpus.Add(result.LumpSum)
			assert.InEpsilon(t, result.TotalCorpus.InexactFloat64(), sum.InexactFloat64(), 1e-6)
			assert.False(t, result.MonthlyPension.IsNegative())
		})
	}
}

func TestProjectPensionScalesLinearlyWithAnnuityRatio(t *testing.T) {
	engine := NewProjectionEngine()

	input := referenceInput()
	input.AnnuityRatio = decimal.NewFromFloat(0.3)
	base, err := engine.Project(input)
	require.NoError(t, err)

	input.AnnuityRatio = decimal.NewFromFloat(0.6)
	doubled, err := engine.Project(input)
	require.NoError(t, err)

	assert.InEpsilon(t, base.MonthlyPension.InexactFloat64()*2,
		doubled.MonthlyPension.InexactFloat64(), 1e-9)
}

func TestProjectZeroContribution(t *testing.T) {
	engine := NewProjectionEngine()

	input := referenceInput()
	input.MonthlyContribution = decimal.Zero

	result, err := engine.Project(input)
	require.NoError(t, err)

	assert.True(t, result.FVContributions.IsZero())
	assert.True(t, result.TotalCorpus.Equal(result.FVCurrent),
		"corpus %s should equal fvCurrent %s", result.TotalCorpus, result.FVCurrent)
}

func TestProjectZeroBalance(t *testing.T) {
	engine := NewProjectionEngine()

	input := referenceInput()
	input.CurrentBalance = decimal.Zero

	result, err := engine.Project(input)
	require.NoError(t, err)

	assert.True(t, result.FVCurrent.IsZero())
	assert.True(t, result.TotalCorpus.Equal(result.FVContributions))
}

func TestProjectZeroReturnRate(t *testing.T) {
	engine := NewProjectionEngine()

	input := referenceInput()
	input.AnnualReturnRate = decimal.Zero

	result, err := engine.Project(input)
	require.NoError(t, err)

	// Simple accumulation, no growth: 10000 * 180 + 600000.
	assert.True(t, result.FVContributions.Equal(decimal.NewFromInt(1800000)),
		"got %s", result.FVContributions)
	assert.True(t, result.FVCurrent.Equal(decimal.NewFromInt(600000)))
	assert.True(t, result.Growth.IsZero())
}

func TestProjectIdempotent(t *testing.T) {
	engine := NewProjectionEngine()
	input := referenceInput()

	first, err := engine.Project(input)
	require.NoError(t, err)
	second, err := engine.Project(input)
	require.NoError(t, err)

	assert.True(t, first.TotalCorpus.Equal(second.TotalCorpus))
	assert.True(t, first.MonthlyPension.Equal(second.MonthlyPension))
}

func TestProjectAnnuityRatioBoundaries(t *testing.T) {
	engine := NewProjectionEngine()

	input := referenceInput()
	input.AnnuityRatio = decimal.NewFromInt(1)
	full, err := engine.Project(input)
	require.NoError(t, err)
	assert.True(t, full.LumpSum.IsZero())
	assert.True(t, full.AnnuityCorpus.Equal(full.TotalCorpus))

	input.AnnuityRatio = decimal.Zero
	none, err := engine.Project(input)
	require.NoError(t, err)
	assert.True(t, none.AnnuityCorpus.IsZero())
	assert.True(t, none.MonthlyPension.IsZero())
	assert.True(t, none.LumpSum.Equal(none.TotalCorpus))
}

func TestProjectContributionStepUp(t *testing.T) {
	engine := NewProjectionEngine()

	flat := referenceInput()
	stepped := referenceInput()
	stepped.AnnualIncreaseRate = decimal.NewFromFloat(0.05)

	flatResult, err := engine.Project(flat)
	require.NoError(t, err)
	steppedResult, err := engine.Project(stepped)
	require.NoError(t, err)

	assert.True(t, steppedResult.FVContributions.GreaterThan(flatResult.FVContributions))
	assert.True(t, steppedResult.TotalInvested.GreaterThan(flatResult.TotalInvested))
	// The existing balance is unaffected by the step-up.
	assert.True(t, steppedResult.FVCurrent.Equal(flatResult.FVCurrent))
}

func TestProjectInvalidInputs(t *testing.T) {
	engine := NewProjectionEngine()

	tests := []struct {
		name   string
		mutate func(*domain.ProjectionInput)
		field  string
	}{
		{"retirement age equals current age", func(in *domain.ProjectionInput) {
			in.RetirementAge = in.CurrentAge
		}, "retirement_age"},
		{"retirement age below current age", func(in *domain.ProjectionInput) {
			in.RetirementAge = 40
		}, "retirement_age"},
		{"zero current age", func(in *domain.ProjectionInput) {
			in.CurrentAge = 0
		}, "current_age"},
		{"negative balance", func(in *domain.ProjectionInput) {
			in.CurrentBalance = decimal.NewFromInt(-1)
		}, "current_balance"},
		{"negative contribution", func(in *domain.ProjectionInput) {
			in.MonthlyContribution = decimal.NewFromInt(-5)
		}, "monthly_contribution"},
		{"negative return rate", func(in *domain.ProjectionInput) {
			in.AnnualReturnRate = decimal.NewFromFloat(-0.01)
		}, "annual_return_rate"},
		{"annuity ratio above one", func(in *domain.ProjectionInput) {
			in.AnnuityRatio = decimal.NewFromFloat(1.2)
		}, "annuity_ratio"},
		{"negative annuity ratio", func(in *domain.ProjectionInput) {
			in.AnnuityRatio = decimal.NewFromFloat(-0.1)
		}, "annuity_ratio"},
		{"negative annuity rate", func(in *domain.ProjectionInput) {
			in.AnnuityRate = decimal.NewFromFloat(-0.06)
		}, "annuity_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := referenceInput()
			tt.mutate(&input)

			result, err := engine.Project(input)
			require.Error(t, err)
			assert.Nil(t, result)

			var invalid *InvalidInputError
			require.True(t, errors.As(err, &invalid), "want InvalidInputError, got %T", err)
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}
