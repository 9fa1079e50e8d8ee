// Package prob wraps the discrete distributions the engine exposes.
package prob

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"calctools/calcerr"
)

// BinomialPMF returns P(X = k) for X ~ Binomial(n, p).
func BinomialPMF(n int, p float64, k int) (float64, error) {
	if err := checkBinomial(n, p); err != nil {
		return 0, err
	}
	if k < 0 || k > n {
		return 0, nil
	}
	d := distuv.Binomial{N: float64(n), P: p}
	return d.Prob(float64(k)), nil
}

// BinomialCDF returns P(X <= k) for X ~ Binomial(n, p).
func BinomialCDF(n int, p float64, k int) (float64, error) {
	if err := checkBinomial(n, p); err != nil {
		return 0, err
	}
	if k < 0 {
		return 0, nil
	}
	if k >= n {
		return 1, nil
	}
	d := distuv.Binomial{N: float64(n), P: p}
	return d.CDF(float64(k)), nil
}

// PoissonPMF returns P(X = k) for X ~ Poisson(lambda).
func PoissonPMF(lambda float64, k int) (float64, error) {
	if err := checkPoisson(lambda); err != nil {
		return 0, err
	}
	if k < 0 {
		return 0, nil
	}
	d := distuv.Poisson{Lambda: lambda}
	return d.Prob(float64(k)), nil
}

// PoissonCDF returns P(X <= k) for X ~ Poisson(lambda).
func PoissonCDF(lambda float64, k int) (float64, error) {
	if err := checkPoisson(lambda); err != nil {
		return 0, err
	}
	if k < 0 {
		return 0, nil
	}
	d := distuv.Poisson{Lambda: lambda}
	return d.CDF(float64(k)), nil
}

func checkBinomial(n int, p float64) error {
	if n < 0 {
		return calcerr.InvalidParam("n", "must be non-negative, got %d", n)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return calcerr.InvalidParam("p", "must lie in [0, 1], got %g", p)
	}
	return nil
}

func checkPoisson(lambda float64) error {
	if math.IsNaN(lambda) || lambda <= 0 {
		return calcerr.InvalidParam("lambda", "must be positive, got %g", lambda)
	}
	return nil
}
