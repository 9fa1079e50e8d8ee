// Package budget bounds the work a single invocation may request. Callers
// pass counts through Clamp before looping so a bad parameter degrades
// gracefully and an abusive one is rejected outright.
package budget

import (
	"math"

	"calctools/calcerr"
)

// Hard caps on per-call iteration counts.
const (
	// MaxPartitions bounds the subinterval count of any quadrature scheme.
	MaxPartitions = 100000

	// MaxSeriesTerms bounds the term count of any truncated series.
	MaxSeriesTerms = 10000

	// MaxNewtonIterations bounds a single root-finding run. Each iteration
	// costs two expression evaluations, so this sits well below the
	// quadrature cap.
	MaxNewtonIterations = 10000
)

// Clamp normalizes a requested count against a hard cap. Counts above the
// cap are an error from the caller we refuse to absorb; counts that are
// non-finite, fractional, zero, or negative are degraded to a single unit
// of work instead.
func Clamp(requested float64, hardCap int) (int, error) {
	if !math.IsInf(requested, 0) && !math.IsNaN(requested) && requested > float64(hardCap) {
		return 0, calcerr.InvalidParam("count",
			"%g exceeds the per-call cap of %d", requested, hardCap)
	}
	if math.IsNaN(requested) || math.IsInf(requested, 0) || requested < 1 {
		return 1, nil
	}
	return int(requested), nil
}
