package domain

import (
	"github.com/shopspring/decimal"
)

// Scheme defaults applied when a field is omitted from a profile or an
// API request. Retirement age and annuity rate follow the NPS scheme
// conventions; the return and annuity-ratio assumptions match the
// documented reference scenario.
var (
	DefaultRetirementAge      = 60
	DefaultAnnualReturnRate   = decimal.NewFromFloat(0.08)
	DefaultAnnuityRatio       = decimal.NewFromFloat(0.40)
	DefaultAnnuityRate        = decimal.NewFromFloat(0.06)
	DefaultAnnualIncreaseRate = decimal.Zero
)

// ProjectionInput carries the saver's financial parameters for a single
// projection. Rates are fractions (0.08 for 8%), never percentages;
// percentage-to-fraction conversion belongs to the presentation layer.
type ProjectionInput struct {
	CurrentAge          int             `json:"current_age" yaml:"current_age"`
	RetirementAge       int             `json:"retirement_age" yaml:"retirement_age"`
	CurrentBalance      decimal.Decimal `json:"current_balance" yaml:"current_balance"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution" yaml:"monthly_contribution"`
	AnnualReturnRate    decimal.Decimal `json:"annual_return_rate" yaml:"annual_return_rate"`
	AnnualIncreaseRate  decimal.Decimal `json:"annual_increase_rate" yaml:"annual_increase_rate"`
	AnnuityRatio        decimal.Decimal `json:"annuity_ratio" yaml:"annuity_ratio"`
	AnnuityRate         decimal.Decimal `json:"annuity_rate" yaml:"annuity_rate"`
}

// ProjectionResult is the projected corpus at retirement and its split.
type ProjectionResult struct {
	TotalCorpus    decimal.Decimal `json:"total_corpus"`
	AnnuityCorpus  decimal.Decimal `json:"annuity_corpus"`
	LumpSum        decimal.Decimal `json:"lump_sum"`
	MonthlyPension decimal.Decimal `json:"monthly_pension"`

	// Breakdown of where the corpus came from
	FVContributions decimal.Decimal `json:"fv_contributions"`
	FVCurrent       decimal.Decimal `json:"fv_current"`
	TotalInvested   decimal.Decimal `json:"total_invested"`
	Growth          decimal.Decimal `json:"growth"`

	YearsToRetirement  int `json:"years_to_retirement"`
	MonthsToRetirement int `json:"months_to_retirement"`
}

// YearlyBalance is one completed year of the accumulation schedule.
type YearlyBalance struct {
	Year                int             `json:"year"`
	Age                 int             `json:"age"`
	Corpus              decimal.Decimal `json:"corpus"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
}

// Report bundles a projection with the inputs and schedule that produced
// it; this is what the output formatters consume.
type Report struct {
	Input    ProjectionInput  `json:"input"`
	Result   ProjectionResult `json:"result"`
	Schedule []YearlyBalance  `json:"schedule,omitempty"`
}
