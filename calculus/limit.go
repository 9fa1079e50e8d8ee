package calculus

import (
	"errors"
	"math"

	"calctools/calcerr"
)

// ErrNoLimit reports that the sampled values have no limit at the point:
// either the one-sided limits disagree or the sequence never stabilizes.
// This is an outcome of a well-posed question, not an evaluation failure.
var ErrNoLimit = errors.New("limit does not exist")

// Direction selects which side(s) the limit estimator approaches from.
type Direction string

const (
	FromBoth  Direction = "both"
	FromLeft  Direction = "left"
	FromRight Direction = "right"
)

// Smallest approach offset; below this, floating-point cancellation
// dominates any reasonable integrand.
const limitEpsilon = 1e-10

// DefaultLimitTolerance is the stabilization tolerance used when a caller
// does not supply one.
const DefaultLimitTolerance = 1e-6

// Limit estimates the limit of f as x approaches at, by evaluating f along
// a geometric sequence of offsets shrinking toward limitEpsilon and
// accepting once consecutive samples agree within tol. A two-sided limit
// additionally requires both sides to agree within tol.
func Limit(f Func, at float64, dir Direction, tol float64) (float64, error) {
	if tol <= 0 {
		tol = DefaultLimitTolerance
	}
	switch dir {
	case FromLeft:
		return oneSidedLimit(f, at, -1, tol)
	case FromRight:
		return oneSidedLimit(f, at, +1, tol)
	case FromBoth, "":
		left, err := oneSidedLimit(f, at, -1, tol)
		if err != nil {
			return 0, err
		}
		right, err := oneSidedLimit(f, at, +1, tol)
		if err != nil {
			return 0, err
		}
		if math.Abs(left-right) > tol {
			return 0, ErrNoLimit
		}
		return (left + right) / 2, nil
	}
	return 0, calcerr.InvalidParam("direction",
		"must be left, right or both, got %q", string(dir))
}

func oneSidedLimit(f Func, at, sign, tol float64) (float64, error) {
	prev := math.NaN()
	havePrev := false
	for h := 0.1; h >= limitEpsilon; h /= 10 {
		v, err := f(at + sign*h)
		if err != nil {
			// Outside the domain at this offset; keep shrinking.
			havePrev = false
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			havePrev = false
			continue
		}
		if havePrev && math.Abs(v-prev) <= tol {
			return v, nil
		}
		prev = v
		havePrev = true
	}
	return 0, ErrNoLimit
}
