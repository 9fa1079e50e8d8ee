package finance

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"calctools/calcerr"
)

// Minimum sample sizes below which the statistics are meaningless.
const (
	minSharpeSamples = 2
	minVaRSamples    = 10
)

// SharpeRatio computes the annualization-free Sharpe ratio of a return
// series against a per-period risk-free rate.
func SharpeRatio(returns []float64, riskFree float64) (float64, error) {
	if len(returns) < minSharpeSamples {
		return 0, &calcerr.InsufficientDataError{
			Op: "sharpe_ratio", Need: minSharpeSamples, Got: len(returns),
		}
	}
	mean := stat.Mean(returns, nil)
	sd := stat.StdDev(returns, nil)
	if sd == 0 {
		return 0, calcerr.InvalidParam("returns",
			"zero variance, the ratio is undefined")
	}
	return (mean - riskFree) / sd, nil
}

// ValueAtRisk computes the historical value at risk of a return series at
// the given confidence level, reported as a positive loss magnitude.
func ValueAtRisk(returns []float64, confidence float64) (float64, error) {
	if len(returns) < minVaRSamples {
		return 0, &calcerr.InsufficientDataError{
			Op: "value_at_risk", Need: minVaRSamples, Got: len(returns),
		}
	}
	if confidence <= 0 || confidence >= 1 {
		return 0, calcerr.InvalidParam("confidence",
			"must lie in (0, 1), got %g", confidence)
	}
	sorted := append([]float64(nil), returns...)
	sort.Float64s(sorted)
	q := stat.Quantile(1-confidence, stat.Empirical, sorted, nil)
	return -q, nil
}
