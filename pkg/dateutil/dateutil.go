package dateutil

import (
	"time"
)

// Age calculates the completed age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// RetirementDate returns the last day of the birth month in the year the
// saver turns retirementAge.
func RetirementDate(birthDate time.Time, retirementAge int) time.Time {
	year := birthDate.Year() + retirementAge
	firstOfNext := time.Date(year, birthDate.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}

// MonthsBetween counts calendar months from one date to another, ignoring
// the day of month. Returns a negative count when to precedes from.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
