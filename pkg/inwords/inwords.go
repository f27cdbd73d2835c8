// Package inwords spells out rupee amounts in the Indian numbering
// system (hundred, thousand, lakh, crore).
package inwords

import (
	"strings"

	"github.com/shopspring/decimal"
)

var units = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

const (
	thousand = 1000
	lakh     = 100000
	crore    = 10000000
)

// Number converts a non-negative integer to Indian-system words.
// Negative input yields "Minus" followed by the words for the magnitude.
func Number(n int64) string {
	if n == 0 {
		return "Zero"
	}
	if n < 0 {
		return "Minus " + Number(-n)
	}
	return words(n)
}

func words(n int64) string {
	switch {
	case n < 20:
		return units[n]
	case n < 100:
		s := tens[n/10]
		if n%10 != 0 {
			s += " " + units[n%10]
		}
		return s
	case n < thousand:
		s := units[n/100] + " Hundred"
		if n%100 != 0 {
			s += " and " + words(n%100)
		}
		return s
	case n < lakh:
		s := words(n/thousand) + " Thousand"
		if n%thousand != 0 {
			s += " " + words(n%thousand)
		}
		return s
	case n < crore:
		s := words(n/lakh) + " Lakh"
		if n%lakh != 0 {
			s += " " + words(n%lakh)
		}
		return s
	default:
		s := words(n/crore) + " Crore"
		if n%crore != 0 {
			s += " " + words(n%crore)
		}
		return s
	}
}

// Rupees spells a decimal rupee amount out in words, including paise
// when the fractional part is non-zero.
func Rupees(amount decimal.Decimal) string {
	if amount.IsZero() {
		return "Zero Rupees"
	}

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteString("Minus ")
		amount = amount.Abs()
	}

	whole := amount.Truncate(0)
	paise := amount.Sub(whole).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	// Rounding paise can carry into the next rupee (e.g. 1.999).
	if paise >= 100 {
		whole = whole.Add(decimal.NewFromInt(1))
		paise -= 100
	}

	b.WriteString(Number(whole.IntPart()))
	b.WriteString(" Rupees")
	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(Number(paise))
		b.WriteString(" Paise")
	}
	return b.String()
}
