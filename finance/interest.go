package finance

import (
	"math"

	"calctools/calcerr"
)

// CompoundInterest returns the future value of principal compounded
// periodsPerYear times a year for years: P * (1 + r/n)^(n t).
func CompoundInterest(principal, rate float64, periodsPerYear int, years float64) (float64, error) {
	if periodsPerYear < 1 {
		return 0, calcerr.InvalidParam("periods_per_year",
			"must be at least 1, got %d", periodsPerYear)
	}
	if years < 0 {
		return 0, calcerr.InvalidParam("years", "must be non-negative, got %g", years)
	}
	n := float64(periodsPerYear)
	return principal * math.Pow(1+rate/n, n*years), nil
}

// PresentValue discounts a future amount back over years at the given
// annual rate.
func PresentValue(futureValue, rate, years float64) (float64, error) {
	if rate <= -1 {
		return 0, calcerr.InvalidParam("rate", "must exceed -1, got %g", rate)
	}
	return futureValue / math.Pow(1+rate, years), nil
}
