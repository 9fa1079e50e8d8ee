// Package finance provides closed-form option pricing under the
// Black-Scholes model together with portfolio statistics and
// interest-rate arithmetic.
package finance

import (
	"math"

	"calctools/calcerr"
)

// Kind is the option exercise direction.
type Kind string

const (
	Call Kind = "call"
	Put  Kind = "put"
)

// Contract is a European option under Black-Scholes assumptions.
// Expiry is in years, Rate and Vol are annualized.
type Contract struct {
	Spot   float64
	Strike float64
	Expiry float64
	Rate   float64
	Vol    float64
	Kind   Kind
}

// Validate checks the contract before any float work happens; the pricing
// formulas divide by Vol*sqrt(Expiry) and take ln(Spot/Strike).
func (c Contract) Validate() error {
	switch {
	case !(c.Spot > 0):
		return calcerr.InvalidParam("spot", "must be positive, got %g", c.Spot)
	case !(c.Strike > 0):
		return calcerr.InvalidParam("strike", "must be positive, got %g", c.Strike)
	case !(c.Expiry > 0):
		return calcerr.InvalidParam("expiry", "must be positive, got %g", c.Expiry)
	case !(c.Vol > 0):
		return calcerr.InvalidParam("volatility", "must be positive, got %g", c.Vol)
	}
	if c.Kind != Call && c.Kind != Put {
		return calcerr.InvalidParam("kind", "must be %q or %q, got %q", Call, Put, c.Kind)
	}
	return nil
}

func (c Contract) d1d2() (float64, float64) {
	sqrtT := math.Sqrt(c.Expiry)
	d1 := (math.Log(c.Spot/c.Strike) + (c.Rate+0.5*c.Vol*c.Vol)*c.Expiry) /
		(c.Vol * sqrtT)
	return d1, d1 - c.Vol*sqrtT
}

// Price returns the Black-Scholes value of the contract.
func Price(c Contract) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	d1, d2 := c.d1d2()
	discount := c.Strike * math.Exp(-c.Rate*c.Expiry)
	if c.Kind == Call {
		return c.Spot*normCDF(d1) - discount*normCDF(d2), nil
	}
	return discount*normCDF(-d2) - c.Spot*normCDF(-d1), nil
}

// Greeks are the first-order sensitivities of the contract value. Theta is
// per year; Vega and Rho are per unit change of volatility and rate.
type Greeks struct {
	Delta float64
	Gamma float64
	Vega  float64
	Theta float64
	Rho   float64
}

// GreeksOf returns the Black-Scholes sensitivities of the contract.
func GreeksOf(c Contract) (Greeks, error) {
	if err := c.Validate(); err != nil {
		return Greeks{}, err
	}
	d1, d2 := c.d1d2()
	sqrtT := math.Sqrt(c.Expiry)
	pdf := normPDF(d1)
	discount := c.Strike * math.Exp(-c.Rate*c.Expiry)

	g := Greeks{
		Gamma: pdf / (c.Spot * c.Vol * sqrtT),
		Vega:  c.Spot * pdf * sqrtT,
	}
	if c.Kind == Call {
		g.Delta = normCDF(d1)
		g.Theta = -c.Spot*pdf*c.Vol/(2*sqrtT) - c.Rate*discount*normCDF(d2)
		g.Rho = c.Expiry * discount * normCDF(d2)
	} else {
		g.Delta = normCDF(d1) - 1
		g.Theta = -c.Spot*pdf*c.Vol/(2*sqrtT) + c.Rate*discount*normCDF(-d2)
		g.Rho = -c.Expiry * discount * normCDF(-d2)
	}
	return g, nil
}

func normPDF(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}

// normCDF is the Abramowitz & Stegun 26.2.17 rational approximation of the
// standard normal CDF, accurate to about 7.5e-8 absolute error.
func normCDF(x float64) float64 {
	if x < 0 {
		return 1 - normCDF(-x)
	}
	const (
		p  = 0.2316419
		b1 = 0.319381530
		b2 = -0.356563782
		b3 = 1.781477937
		b4 = -1.821255978
		b5 = 1.330274429
	)
	t := 1 / (1 + p*x)
	poly := t * (b1 + t*(b2+t*(b3+t*(b4+t*b5))))
	return 1 - normPDF(x)*poly
}
