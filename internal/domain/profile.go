package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/npsgo/pension-calculator/pkg/dateutil"
)

// SaverProfile is the on-disk configuration for a projection run.
type SaverProfile struct {
	Saver       Saver       `yaml:"saver"`
	Assumptions Assumptions `yaml:"assumptions"`
}

// Saver identifies the subscriber. Either CurrentAge or BirthDate must
// be set; when both are present the explicit age wins.
type Saver struct {
	CurrentAge          int             `yaml:"current_age"`
	BirthDate           *time.Time      `yaml:"birth_date"`
	RetirementAge       int             `yaml:"retirement_age"`
	CurrentBalance      decimal.Decimal `yaml:"current_balance"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution"`
}

// Assumptions are the scheme and market assumptions, as fractions.
type Assumptions struct {
	AnnualReturnRate   *decimal.Decimal `yaml:"annual_return_rate"`
	AnnualIncreaseRate *decimal.Decimal `yaml:"annual_increase_rate"`
	AnnuityRatio       *decimal.Decimal `yaml:"annuity_ratio"`
	AnnuityRate        *decimal.Decimal `yaml:"annuity_rate"`
}

// UnmarshalYAML decodes the optional rate fields through strings so that
// absent keys stay nil instead of becoming zero values.
func (a *Assumptions) UnmarshalYAML(value *yaml.Node) error {
	type alias struct {
		AnnualReturnRate   *string `yaml:"annual_return_rate,omitempty"`
		AnnualIncreaseRate *string `yaml:"annual_increase_rate,omitempty"`
		AnnuityRatio       *string `yaml:"annuity_ratio,omitempty"`
		AnnuityRate        *string `yaml:"annuity_rate,omitempty"`
	}

	var aux alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	fields := []struct {
		src *string
		dst **decimal.Decimal
	}{
		{aux.AnnualReturnRate, &a.AnnualReturnRate},
		{aux.AnnualIncreaseRate, &a.AnnualIncreaseRate},
		{aux.AnnuityRatio, &a.AnnuityRatio},
		{aux.AnnuityRate, &a.AnnuityRate},
	}
	for _, f := range fields {
		if f.src == nil {
			continue
		}
		val, err := decimal.NewFromString(*f.src)
		if err != nil {
			return err
		}
		*f.dst = &val
	}
	return nil
}

// ToProjectionInput resolves the profile into engine input, deriving the
// current age from the birth date when no explicit age is given and
// filling unset assumptions with the scheme defaults.
func (sp *SaverProfile) ToProjectionInput(now time.Time) ProjectionInput {
	age := sp.Saver.CurrentAge
	if age == 0 && sp.Saver.BirthDate != nil {
		age = dateutil.Age(*sp.Saver.BirthDate, now)
	}

	retirementAge := sp.Saver.RetirementAge
	if retirementAge == 0 {
		retirementAge = DefaultRetirementAge
	}

	input := ProjectionInput{
		CurrentAge:          age,
		RetirementAge:       retirementAge,
		CurrentBalance:      sp.Saver.CurrentBalance,
		MonthlyContribution: sp.Saver.MonthlyContribution,
		AnnualReturnRate:    DefaultAnnualReturnRate,
		AnnualIncreaseRate:  DefaultAnnualIncreaseRate,
		AnnuityRatio:        DefaultAnnuityRatio,
		AnnuityRate:         DefaultAnnuityRate,
	}
	if sp.Assumptions.AnnualReturnRate != nil {
		input.AnnualReturnRate = *sp.Assumptions.AnnualReturnRate
	}
	if sp.Assumptions.AnnualIncreaseRate != nil {
		input.AnnualIncreaseRate = *sp.Assumptions.AnnualIncreaseRate
	}
	if sp.Assumptions.AnnuityRatio != nil {
		input.AnnuityRatio = *sp.Assumptions.AnnuityRatio
	}
	if sp.Assumptions.AnnuityRate != nil {
		input.AnnuityRate = *sp.Assumptions.AnnuityRate
	}
	return input
}
