// Package calculus implements the numerical schemes of the engine:
// partition-based quadrature, definite integration, limit estimation,
// Newton root finding, and finite-difference derivatives. Every routine is
// a pure function of its arguments.
package calculus

import (
	"math"

	"calctools/calcerr"
)

// Func is a scalar function of one real variable. Implementations report
// domain violations through the error return.
type Func func(x float64) (float64, error)

// Method selects the sample point of each Riemann subinterval.
type Method string

const (
	Left      Method = "left"
	Right     Method = "right"
	Midpoint  Method = "midpoint"
	Trapezoid Method = "trapezoid"
)

// RiemannSum approximates the integral of f over [a, b] with n equal
// subintervals, sampling per method. Reversed bounds integrate with the
// usual sign flip.
func RiemannSum(f Func, a, b float64, n int, method Method) (float64, error) {
	if n < 1 {
		return 0, calcerr.InvalidParam("partitions", "must be at least 1, got %d", n)
	}
	if a == b {
		return 0, nil
	}
	sign := 1.0
	if a > b {
		a, b = b, a
		sign = -1
	}
	dx := (b - a) / float64(n)

	if method == Trapezoid {
		// Half-weighted endpoints, full interior points.
		fa, err := f(a)
		if err != nil {
			return 0, err
		}
		fb, err := f(b)
		if err != nil {
			return 0, err
		}
		sum := (fa + fb) / 2
		for i := 1; i < n; i++ {
			v, err := f(a + float64(i)*dx)
			if err != nil {
				return 0, err
			}
			sum += v
		}
		return sign * sum * dx, nil
	}

	var offset float64
	switch method {
	case Left:
		offset = 0
	case Right:
		offset = 1
	case Midpoint:
		offset = 0.5
	default:
		return 0, calcerr.InvalidParam("method", "unknown sampling method %q", method)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		v, err := f(a + (float64(i)+offset)*dx)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sign * sum * dx, nil
}

// DarbouxSum approximates the upper and lower Darboux sums of f over [a, b]
// with n subintervals, using the extremes of the cell endpoints as the
// per-cell sup and inf estimates. Upper >= Lower always holds for the
// returned pair.
func DarbouxSum(f Func, a, b float64, n int) (upper, lower float64, err error) {
	if n < 1 {
		return 0, 0, calcerr.InvalidParam("partitions", "must be at least 1, got %d", n)
	}
	if a > b {
		a, b = b, a
	}
	dx := (b - a) / float64(n)
	prev, err := f(a)
	if err != nil {
		return 0, 0, err
	}
	for i := 1; i <= n; i++ {
		cur, err := f(a + float64(i)*dx)
		if err != nil {
			return 0, 0, err
		}
		upper += math.Max(prev, cur) * dx
		lower += math.Min(prev, cur) * dx
		prev = cur
	}
	return upper, lower, nil
}

// RiemannStieltjes approximates the integral of f with respect to the
// integrator g over [a, b]: sum of f(left endpoint) * (g(x_{i+1}) - g(x_i)).
func RiemannStieltjes(f, g Func, a, b float64, n int) (float64, error) {
	if n < 1 {
		return 0, calcerr.InvalidParam("partitions", "must be at least 1, got %d", n)
	}
	dx := (b - a) / float64(n)
	sum := 0.0
	gPrev, err := g(a)
	if err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		x := a + float64(i)*dx
		fv, err := f(x)
		if err != nil {
			return 0, err
		}
		gNext, err := g(x + dx)
		if err != nil {
			return 0, err
		}
		sum += fv * (gNext - gPrev)
		gPrev = gNext
	}
	return sum, nil
}

// LebesgueIntegral approximates the integral of a non-negative f over
// [a, b] by slicing the range of f into horizontal levels and accumulating
// level height times the measure of the set where f exceeds the level.
// The measure is itself estimated on a fixed grid of the domain.
func LebesgueIntegral(f Func, a, b float64, levels int) (float64, error) {
	if levels < 1 {
		return 0, calcerr.InvalidParam("levels", "must be at least 1, got %d", levels)
	}
	if a > b {
		a, b = b, a
	}
	const gridPoints = 1000
	dx := (b - a) / gridPoints
	samples := make([]float64, 0, gridPoints)
	fMax := math.Inf(-1)
	for i := 0; i < gridPoints; i++ {
		v, err := f(a + (float64(i)+0.5)*dx)
		if err != nil {
			return 0, err
		}
		if v < 0 {
			return 0, calcerr.InvalidParam("f",
				"level-set integration requires a non-negative integrand, got f=%g", v)
		}
		samples = append(samples, v)
		if v > fMax {
			fMax = v
		}
	}
	if fMax == 0 {
		return 0, nil
	}
	dy := fMax / float64(levels)
	total := 0.0
	for level := 0; level < levels; level++ {
		threshold := (float64(level) + 0.5) * dy
		measure := 0.0
		for _, v := range samples {
			if v > threshold {
				measure += dx
			}
		}
		total += measure * dy
	}
	return total, nil
}
