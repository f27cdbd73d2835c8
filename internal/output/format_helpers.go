package output

import (
	"github.com/shopspring/decimal"

	money "github.com/npsgo/pension-calculator/pkg/decimal"
)

// FormatRupees formats a decimal as rupees with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatRupees(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatCompact formats a decimal in the Indian crore/lakh notation.
func FormatCompact(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).FormatCompact()
}

// FormatWords spells a decimal amount out in words.
func FormatWords(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).InWords()
}

// FormatPercentage formats a fractional rate as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
