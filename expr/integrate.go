package expr

import (
	"calctools/calcerr"
)

// Antiderivative returns an antiderivative of e with respect to variable,
// omitting the integration constant. Coverage is a fixed rule table:
// polynomials, sums, constant multiples, x^-1, and the elementary functions
// applied to a linear argument. Anything outside the table returns an
// UnsupportedExpressionError.
func Antiderivative(e Expr, variable string) (Expr, error) {
	x := Var(variable)
	switch v := e.(type) {
	case num:
		return MulOf(Num(v.val), x), nil

	case sym:
		if v.name == variable {
			return MulOf(Num(0.5), PowOf(x, Num(2))), nil
		}
		// Free symbol other than the integration variable is a constant.
		return MulOf(v, x), nil

	case add:
		parts := make([]Expr, 0, len(v.terms))
		for _, t := range v.terms {
			F, err := Antiderivative(t, variable)
			if err != nil {
				return nil, err
			}
			parts = append(parts, F)
		}
		return AddOf(parts...), nil

	case mul:
		// Pull the numeric coefficient out and integrate what remains,
		// provided a single non-constant factor is left.
		coeff := 1.0
		var rest []Expr
		for _, f := range v.factors {
			if c, ok := f.(num); ok {
				coeff *= c.val
			} else {
				rest = append(rest, f)
			}
		}
		if len(rest) == 1 {
			F, err := Antiderivative(rest[0], variable)
			if err != nil {
				return nil, err
			}
			return MulOf(Num(coeff), F), nil
		}

	case pow:
		if base, ok := v.base.(sym); ok && base.name == variable {
			if n, ok := v.exp.(num); ok {
				if n.val == -1 {
					return LnOf(AbsOf(x)), nil
				}
				return MulOf(Num(1/(n.val+1)), PowOf(x, Num(n.val+1))), nil
			}
		}

	case call:
		a, ok := linearCoeff(v.arg, variable)
		if !ok || a == 0 {
			break
		}
		switch v.fn {
		case "sin":
			return MulOf(Num(-1/a), CosOf(v.arg)), nil
		case "cos":
			return MulOf(Num(1/a), SinOf(v.arg)), nil
		case "exp":
			return MulOf(Num(1/a), ExpOf(v.arg)), nil
		case "ln":
			// Only the plain ln(x) case: x ln(x) - x.
			if s, ok := v.arg.(sym); ok && s.name == variable {
				return AddOf(MulOf(x, LnOf(x)), Neg(x)), nil
			}
		}
	}
	return nil, &calcerr.UnsupportedExpressionError{Construct: e.String()}
}

// linearCoeff reports the slope a when e has the form a*x (+ constant terms),
// so chain-rule inverses stay exact for linear inner arguments.
func linearCoeff(e Expr, variable string) (float64, bool) {
	switch v := e.(type) {
	case sym:
		if v.name == variable {
			return 1, true
		}
	case mul:
		coeff := 1.0
		sawVar := false
		for _, f := range v.factors {
			switch fv := f.(type) {
			case num:
				coeff *= fv.val
			case sym:
				if fv.name != variable || sawVar {
					return 0, false
				}
				sawVar = true
			default:
				return 0, false
			}
		}
		if sawVar {
			return coeff, true
		}
	case add:
		// a*x + c: exactly one linear term, the rest constant.
		slope := 0.0
		found := false
		for _, t := range v.terms {
			if _, isNum := t.(num); isNum {
				continue
			}
			a, ok := linearCoeff(t, variable)
			if !ok || found {
				return 0, false
			}
			slope, found = a, true
		}
		if found {
			return slope, true
		}
	}
	return 0, false
}
