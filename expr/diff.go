package expr

import (
	"math"

	"calctools/calcerr"
)

func (n num) Diff(string) (Expr, error) { return Num(0), nil }

func (s sym) Diff(variable string) (Expr, error) {
	if s.name == variable {
		return Num(1), nil
	}
	return Num(0), nil
}

func (a add) Diff(variable string) (Expr, error) {
	parts := make([]Expr, 0, len(a.terms))
	for _, t := range a.terms {
		d, err := t.Diff(variable)
		if err != nil {
			return nil, err
		}
		parts = append(parts, d)
	}
	return AddOf(parts...), nil
}

// Product rule generalized over n factors: sum over i of
// f_i' * product of the remaining factors.
func (m mul) Diff(variable string) (Expr, error) {
	terms := make([]Expr, 0, len(m.factors))
	for i, f := range m.factors {
		d, err := f.Diff(variable)
		if err != nil {
			return nil, err
		}
		rest := make([]Expr, 0, len(m.factors))
		rest = append(rest, d)
		for j, g := range m.factors {
			if j != i {
				rest = append(rest, g)
			}
		}
		terms = append(terms, MulOf(rest...))
	}
	return AddOf(terms...), nil
}

func (p pow) Diff(variable string) (Expr, error) {
	du, err := p.base.Diff(variable)
	if err != nil {
		return nil, err
	}
	// u^c with constant c: c * u^(c-1) * u'
	if c, ok := p.exp.(num); ok {
		return MulOf(Num(c.val), PowOf(p.base, Num(c.val-1)), du), nil
	}
	dv, err := p.exp.Diff(variable)
	if err != nil {
		return nil, err
	}
	// c^v with constant c: c^v * ln(c) * v'
	if c, ok := p.base.(num); ok {
		if c.val <= 0 {
			return nil, &calcerr.UnsupportedExpressionError{Construct: p.String()}
		}
		return MulOf(PowOf(p.base, p.exp), Num(math.Log(c.val)), dv), nil
	}
	// General u^v = exp(v ln u):
	// u^v * (v' ln(u) + v * u'/u)
	return MulOf(
		PowOf(p.base, p.exp),
		AddOf(
			MulOf(dv, LnOf(p.base)),
			MulOf(p.exp, du, PowOf(p.base, Num(-1))),
		),
	), nil
}

func (c call) Diff(variable string) (Expr, error) {
	du, err := c.arg.Diff(variable)
	if err != nil {
		return nil, err
	}
	var outer Expr
	switch c.fn {
	case "sin":
		outer = CosOf(c.arg)
	case "cos":
		outer = Neg(SinOf(c.arg))
	case "tan":
		outer = AddOf(Num(1), PowOf(TanOf(c.arg), Num(2)))
	case "exp":
		outer = ExpOf(c.arg)
	case "ln":
		outer = PowOf(c.arg, Num(-1))
	case "sqrt":
		outer = MulOf(Num(0.5), PowOf(c.arg, Num(-0.5)))
	default:
		// abs has no derivative within the rule set (not differentiable at
		// zero, and sign() is not a representable construct here).
		return nil, &calcerr.UnsupportedExpressionError{Construct: c.String()}
	}
	return MulOf(outer, du), nil
}
