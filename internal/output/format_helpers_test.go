package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatRupees(t *testing.T) {
	assert.Equal(t, "₹1234.50", FormatRupees(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "₹0.00", FormatRupees(decimal.Zero))
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{999, "₹999.00"},
		{99999, "₹99999.00"},
		{100000, "₹1.00 L"},
		{2550000, "₹25.50 L"},
		{10000000, "₹1.00 Cr"},
		{53060000, "₹5.31 Cr"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCompact(decimal.NewFromFloat(tt.in)))
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "8.00%", FormatPercentage(decimal.NewFromFloat(0.08)))
	assert.Equal(t, "0.00%", FormatPercentage(decimal.Zero))
	assert.Equal(t, "100.00%", FormatPercentage(decimal.NewFromInt(1)))
}

func TestFormatWords(t *testing.T) {
	assert.Equal(t, "One Lakh Rupees", FormatWords(decimal.NewFromInt(100000)))
}
