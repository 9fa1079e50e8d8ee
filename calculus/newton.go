package calculus

import (
	"math"

	"calctools/budget"
)

// Newton iteration defaults.
const (
	DefaultMaxIterations = 100
	DefaultStepTolerance = 1e-7

	// Below this the tangent is treated as flat and the iteration stops.
	derivativeFloor = 1e-12
)

// RootStatus explains how a Newton iteration ended.
type RootStatus string

const (
	StatusConverged          RootStatus = "converged"
	StatusDerivativeVanished RootStatus = "derivative_vanished"
	StatusMaxIterations      RootStatus = "max_iterations"
)

// RootResult is the outcome of a Newton iteration. Root holds the best
// estimate regardless of Status.
type RootResult struct {
	Root       float64
	Converged  bool
	Iterations int
	Status     RootStatus
}

// NewtonRoot runs Newton's method on f from x0. df may be nil, in which
// case the derivative is estimated by central differences. The iteration
// stops when the step shrinks below tol, the derivative magnitude falls
// below the flatness floor, or maxIter iterations have run. maxIter is
// checked against the per-call iteration cap before any evaluation.
func NewtonRoot(f, df Func, x0 float64, maxIter int, tol float64) (RootResult, error) {
	if _, err := budget.Clamp(float64(maxIter), budget.MaxNewtonIterations); err != nil {
		return RootResult{}, err
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	if tol <= 0 {
		tol = DefaultStepTolerance
	}
	if df == nil {
		df = func(x float64) (float64, error) { return DerivativeAt(f, x) }
	}
	x := x0
	for i := 1; i <= maxIter; i++ {
		fx, err := f(x)
		if err != nil {
			return RootResult{}, err
		}
		dfx, err := df(x)
		if err != nil {
			return RootResult{}, err
		}
		if math.Abs(dfx) < derivativeFloor {
			return RootResult{
				Root:       x,
				Converged:  false,
				Iterations: i,
				Status:     StatusDerivativeVanished,
			}, nil
		}
		next := x - fx/dfx
		if math.Abs(next-x) < tol {
			return RootResult{
				Root:       next,
				Converged:  true,
				Iterations: i,
				Status:     StatusConverged,
			}, nil
		}
		x = next
	}
	return RootResult{
		Root:       x,
		Converged:  false,
		Iterations: maxIter,
		Status:     StatusMaxIterations,
	}, nil
}
