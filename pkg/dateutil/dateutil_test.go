package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAge(t *testing.T) {
	birth := date(1980, time.May, 14)

	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{"day before birthday", date(2026, time.May, 13), 45},
		{"on birthday", date(2026, time.May, 14), 46},
		{"day after birthday", date(2026, time.May, 15), 46},
		{"earlier month", date(2026, time.February, 1), 45},
		{"later month", date(2026, time.December, 1), 46},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Age(birth, tt.at))
		})
	}
}

func TestRetirementDate(t *testing.T) {
	tests := []struct {
		name          string
		birth         time.Time
		retirementAge int
		want          time.Time
	}{
		{"mid-year birth", date(1980, time.May, 14), 60, date(2040, time.May, 31)},
		{"february", date(1980, time.February, 10), 60, date(2040, time.February, 29)},
		{"december rolls into next year", date(1975, time.December, 25), 60, date(2035, time.December, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RetirementDate(tt.birth, tt.retirementAge))
		})
	}
}

func TestMonthsBetween(t *testing.T) {
	assert.Equal(t, 0, MonthsBetween(date(2026, time.August, 1), date(2026, time.August, 27)))
	assert.Equal(t, 12, MonthsBetween(date(2025, time.August, 1), date(2026, time.August, 1)))
	assert.Equal(t, 169, MonthsBetween(date(2026, time.April, 30), date(2040, time.May, 31)))
	assert.Equal(t, -1, MonthsBetween(date(2026, time.September, 1), date(2026, time.August, 1)))
}
