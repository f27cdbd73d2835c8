package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/npsgo/pension-calculator/internal/domain"
)

// GenerateSchedule simulates the corpus month by month and returns one
// snapshot per completed year plus the retirement month. Unlike the
// closed form in Project, the opening balance compounds monthly here, so
// the final corpus can differ slightly from TotalCorpus.
func (pe *ProjectionEngine) GenerateSchedule(input domain.ProjectionInput) ([]domain.YearlyBalance, error) {
	if err := ValidateInput(input); err != nil {
		return nil, err
	}

	years := input.RetirementAge - input.CurrentAge
	months := years * 12
	growthFactor := decimalOne.Add(input.AnnualReturnRate.Div(decimalTwelve))
	stepFactor := decimalOne.Add(input.AnnualIncreaseRate)

	corpus := input.CurrentBalance
	monthly := input.MonthlyContribution
	schedule := make([]domain.YearlyBalance, 0, years)

	for m := 1; m <= months; m++ {
		corpus = corpus.Mul(growthFactor).Add(monthly)

		if m%12 == 0 || m == months {
			elapsed := (m + 11) / 12
			schedule = append(schedule, domain.YearlyBalance{
				Year:                elapsed,
				Age:                 input.CurrentAge + elapsed,
				Corpus:              corpus,
				MonthlyContribution: monthly,
			})
		}

		if m%12 == 0 {
			monthly = monthly.Mul(stepFactor)
		}
	}

	return schedule, nil
}

// PensionPresentValue discounts a stream of monthly pension payments over
// the given number of years back to the retirement date.
func PensionPresentValue(monthlyPension, annualRate decimal.Decimal, years int) decimal.Decimal {
	months := int64(years) * 12
	if months <= 0 || monthlyPension.IsZero() {
		return decimal.Zero
	}

	monthlyRate := annualRate.Div(decimalTwelve)
	if monthlyRate.IsZero() {
		return monthlyPension.Mul(decimal.NewFromInt(months))
	}

	discount := decimalOne.Add(monthlyRate).Pow(decimal.NewFromInt(months))
	factor := decimalOne.Sub(decimalOne.Div(discount)).Div(monthlyRate)
	return monthlyPension.Mul(factor)
}
