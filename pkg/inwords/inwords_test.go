package inwords

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "Zero"},
		{7, "Seven"},
		{13, "Thirteen"},
		{40, "Forty"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{101, "One Hundred and One"},
		{999, "Nine Hundred and Ninety Nine"},
		{1000, "One Thousand"},
		{12345, "Twelve Thousand Three Hundred and Forty Five"},
		{100000, "One Lakh"},
		{250000, "Two Lakh Fifty Thousand"},
		{10000000, "One Crore"},
		{53060000, "Five Crore Thirty Lakh Sixty Thousand"},
		{-42, "Minus Forty Two"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Number(tt.in), "Number(%d)", tt.in)
	}
}

func TestRupees(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "Zero Rupees"},
		{"1", "One Rupees"},
		{"100000", "One Lakh Rupees"},
		{"1234.56", "One Thousand Two Hundred and Thirty Four Rupees and Fifty Six Paise"},
		{"0.05", "Zero Rupees and Five Paise"},
		{"1.999", "Two Rupees"},
		{"-10", "Minus Ten Rupees"},
	}
	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.in)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, Rupees(d), "Rupees(%s)", tt.in)
	}
}
