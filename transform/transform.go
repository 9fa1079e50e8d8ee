// Package transform approximates integral and series transforms of
// real-valued signals: Laplace, Fourier, and the unilateral Z transform.
// All three are deterministic truncations with fixed windows and step
// counts, so repeated calls with equal arguments return identical bits.
package transform

import (
	"fmt"
	"math"
	"math/cmplx"

	"calctools/calcerr"
	"calctools/calculus"
)

// Truncation windows. The Laplace integral runs over [0, laplaceHorizon];
// the Fourier integral over [-fourierWindow, fourierWindow]. Both use a
// fixed left-rectangle grid.
const (
	laplaceHorizon = 100.0
	laplaceSteps   = 1000

	fourierWindow = 50.0
	fourierSteps  = 1000
)

// DefaultZLimit is the inclusive upper series index used when the caller
// does not request one.
const DefaultZLimit = 100

// Sequence is a discrete one-sided signal indexed from zero.
type Sequence func(n int) (float64, error)

// Laplace approximates the one-sided Laplace transform of f at s:
// the integral of f(t) * exp(-s t) over [0, laplaceHorizon].
// Convergence requires Re(s) large enough that the tail past the horizon
// is negligible; that judgment is the caller's.
func Laplace(f calculus.Func, s complex128) (complex128, error) {
	dt := laplaceHorizon / laplaceSteps
	sum := complex(0, 0)
	for i := 0; i < laplaceSteps; i++ {
		t := float64(i) * dt
		v, err := f(t)
		if err != nil {
			return 0, err
		}
		sum += complex(v, 0) * cmplx.Exp(-s*complex(t, 0))
	}
	return sum * complex(dt, 0), nil
}

// Fourier approximates the continuous Fourier transform of f at angular
// frequency omega: the integral of f(t) * exp(-i omega t) over the
// truncation window.
func Fourier(f calculus.Func, omega float64) (complex128, error) {
	dt := 2 * fourierWindow / fourierSteps
	sum := complex(0, 0)
	for i := 0; i < fourierSteps; i++ {
		t := -fourierWindow + float64(i)*dt
		v, err := f(t)
		if err != nil {
			return 0, err
		}
		sum += complex(v, 0) * cmplx.Exp(complex(0, -omega*t))
	}
	return sum * complex(dt, 0), nil
}

// Z approximates the unilateral Z transform of x at z, truncated at the
// inclusive upper index limit: sum of x[n] * z^-n for n in [0, limit].
func Z(x Sequence, z complex128, limit int) (complex128, error) {
	if limit < 0 {
		return 0, calcerr.InvalidParam("limit", "must be non-negative, got %d", limit)
	}
	if z == 0 {
		return 0, calcerr.InvalidParam("z", "the transform is undefined at z = 0")
	}
	sum := complex(0, 0)
	zinv := 1 / z
	pow := complex(1, 0)
	for n := 0; n <= limit; n++ {
		v, err := x(n)
		if err != nil {
			return 0, err
		}
		sum += complex(v, 0) * pow
		pow *= zinv
	}
	return sum, nil
}

// Format renders a complex value as "a + bi" with a signed imaginary part,
// e.g. "2 - 0.5i". Negative zero imaginary parts render as "+ 0i".
func Format(z complex128) string {
	re, im := real(z), imag(z)
	if im == 0 {
		im = 0 // normalize -0
	}
	if math.Signbit(im) {
		return fmt.Sprintf("%g - %gi", re, -im)
	}
	return fmt.Sprintf("%g + %gi", re, im)
}
