// Package expr provides a small scalar expression engine: parsing of textual
// formulas over named variables, evaluation over reals or complex numbers
// against a per-call binding, symbolic differentiation, and a fixed-rule
// antiderivative table.
//
// Expressions are immutable once built. Evaluating the same Expr against
// different bindings is side-effect free and repeatable; every numerical
// scheme in this module depends on that.
package expr

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
	"strconv"
	"strings"

	"calctools/calcerr"
)

// Binding maps variable names to real values for one evaluation. A fresh
// binding is expected per call; nothing in this package retains one.
type Binding map[string]float64

// ComplexBinding maps variable names to complex values.
type ComplexBinding map[string]complex128

// Expr is an immutable parsed expression.
type Expr interface {
	// Eval computes the expression over the reals. Domain violations
	// (division by zero, ln of a non-positive value, fractional powers of
	// negatives) return an EvaluationError rather than a silent NaN.
	Eval(b Binding) (float64, error)

	// EvalComplex computes the expression over the complex numbers with the
	// standard branch conventions.
	EvalComplex(b ComplexBinding) (complex128, error)

	// Diff returns the derivative with respect to variable, or an
	// UnsupportedExpressionError when no rule covers a construct.
	Diff(variable string) (Expr, error)

	String() string
}

// ============================================================
// Nodes
// ============================================================

type num struct{ val float64 }

type sym struct{ name string }

type add struct{ terms []Expr }

type mul struct{ factors []Expr }

type pow struct{ base, exp Expr }

type call struct {
	fn  string
	arg Expr
}

// Num returns a constant expression.
func Num(v float64) Expr { return num{val: v} }

// Var returns a variable reference.
func Var(name string) Expr { return sym{name: name} }

// AddOf returns the sum of terms, folding constants and dropping zeros.
func AddOf(terms ...Expr) Expr {
	flat := make([]Expr, 0, len(terms))
	acc := 0.0
	for _, t := range terms {
		switch v := t.(type) {
		case add:
			flat = append(flat, v.terms...)
		case num:
			acc += v.val
		default:
			flat = append(flat, t)
		}
	}
	if acc != 0 || len(flat) == 0 {
		flat = append(flat, num{val: acc})
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return add{terms: flat}
}

// MulOf returns the product of factors, folding constants; a zero factor
// collapses the whole product.
func MulOf(factors ...Expr) Expr {
	flat := make([]Expr, 0, len(factors))
	coeff := 1.0
	for _, f := range factors {
		switch v := f.(type) {
		case mul:
			flat = append(flat, v.factors...)
		case num:
			coeff *= v.val
		default:
			flat = append(flat, f)
		}
	}
	if coeff == 0 {
		return num{val: 0}
	}
	if len(flat) == 0 {
		return num{val: coeff}
	}
	if coeff != 1 {
		flat = append([]Expr{num{val: coeff}}, flat...)
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return mul{factors: flat}
}

// PowOf returns base^exp with the trivial exponents folded away.
func PowOf(base, exp Expr) Expr {
	if en, ok := exp.(num); ok {
		if en.val == 0 {
			return num{val: 1}
		}
		if en.val == 1 {
			return base
		}
	}
	return pow{base: base, exp: exp}
}

// Neg returns -e.
func Neg(e Expr) Expr { return MulOf(Num(-1), e) }

// Function constructors for the supported elementary set.

func SinOf(arg Expr) Expr  { return call{fn: "sin", arg: arg} }
func CosOf(arg Expr) Expr  { return call{fn: "cos", arg: arg} }
func TanOf(arg Expr) Expr  { return call{fn: "tan", arg: arg} }
func ExpOf(arg Expr) Expr  { return call{fn: "exp", arg: arg} }
func LnOf(arg Expr) Expr   { return call{fn: "ln", arg: arg} }
func SqrtOf(arg Expr) Expr { return call{fn: "sqrt", arg: arg} }
func AbsOf(arg Expr) Expr  { return call{fn: "abs", arg: arg} }

// ============================================================
// Real evaluation
// ============================================================

func (n num) Eval(Binding) (float64, error) { return n.val, nil }

func (s sym) Eval(b Binding) (float64, error) {
	v, ok := b[s.name]
	if !ok {
		return 0, &calcerr.UnboundVariableError{Name: s.name}
	}
	return v, nil
}

func (a add) Eval(b Binding) (float64, error) {
	acc := 0.0
	for _, t := range a.terms {
		v, err := t.Eval(b)
		if err != nil {
			return 0, err
		}
		acc += v
	}
	return acc, nil
}

func (m mul) Eval(b Binding) (float64, error) {
	acc := 1.0
	for _, f := range m.factors {
		v, err := f.Eval(b)
		if err != nil {
			return 0, err
		}
		acc *= v
	}
	return acc, nil
}

func (p pow) Eval(b Binding) (float64, error) {
	base, err := p.base.Eval(b)
	if err != nil {
		return 0, err
	}
	exp, err := p.exp.Eval(b)
	if err != nil {
		return 0, err
	}
	if base == 0 && exp < 0 {
		return 0, &calcerr.EvaluationError{Op: "^", Detail: "division by zero"}
	}
	v := math.Pow(base, exp)
	if math.IsNaN(v) {
		return 0, &calcerr.EvaluationError{
			Op:     "^",
			Detail: fmt.Sprintf("%g^%g is undefined over the reals", base, exp),
		}
	}
	return v, nil
}

func (c call) Eval(b Binding) (float64, error) {
	arg, err := c.arg.Eval(b)
	if err != nil {
		return 0, err
	}
	switch c.fn {
	case "sin":
		return math.Sin(arg), nil
	case "cos":
		return math.Cos(arg), nil
	case "tan":
		return math.Tan(arg), nil
	case "exp":
		return math.Exp(arg), nil
	case "ln":
		if arg <= 0 {
			return 0, &calcerr.EvaluationError{
				Op:     "ln",
				Detail: fmt.Sprintf("ln(%g) is undefined over the reals", arg),
			}
		}
		return math.Log(arg), nil
	case "sqrt":
		if arg < 0 {
			return 0, &calcerr.EvaluationError{
				Op:     "sqrt",
				Detail: fmt.Sprintf("sqrt(%g) is undefined over the reals", arg),
			}
		}
		return math.Sqrt(arg), nil
	case "abs":
		return math.Abs(arg), nil
	}
	return 0, &calcerr.UnsupportedExpressionError{Construct: c.fn}
}

// ============================================================
// Complex evaluation
// ============================================================

func (n num) EvalComplex(ComplexBinding) (complex128, error) {
	return complex(n.val, 0), nil
}

func (s sym) EvalComplex(b ComplexBinding) (complex128, error) {
	v, ok := b[s.name]
	if !ok {
		return 0, &calcerr.UnboundVariableError{Name: s.name}
	}
	return v, nil
}

func (a add) EvalComplex(b ComplexBinding) (complex128, error) {
	acc := complex(0, 0)
	for _, t := range a.terms {
		v, err := t.EvalComplex(b)
		if err != nil {
			return 0, err
		}
		acc += v
	}
	return acc, nil
}

func (m mul) EvalComplex(b ComplexBinding) (complex128, error) {
	acc := complex(1, 0)
	for _, f := range m.factors {
		v, err := f.EvalComplex(b)
		if err != nil {
			return 0, err
		}
		acc *= v
	}
	return acc, nil
}

func (p pow) EvalComplex(b ComplexBinding) (complex128, error) {
	base, err := p.base.EvalComplex(b)
	if err != nil {
		return 0, err
	}
	exp, err := p.exp.EvalComplex(b)
	if err != nil {
		return 0, err
	}
	if base == 0 && real(exp) < 0 {
		return 0, &calcerr.EvaluationError{Op: "^", Detail: "division by zero"}
	}
	return cmplx.Pow(base, exp), nil
}

func (c call) EvalComplex(b ComplexBinding) (complex128, error) {
	arg, err := c.arg.EvalComplex(b)
	if err != nil {
		return 0, err
	}
	switch c.fn {
	case "sin":
		return cmplx.Sin(arg), nil
	case "cos":
		return cmplx.Cos(arg), nil
	case "tan":
		return cmplx.Tan(arg), nil
	case "exp":
		return cmplx.Exp(arg), nil
	case "ln":
		if arg == 0 {
			return 0, &calcerr.EvaluationError{Op: "ln", Detail: "ln(0) is undefined"}
		}
		return cmplx.Log(arg), nil
	case "sqrt":
		return cmplx.Sqrt(arg), nil
	case "abs":
		return complex(cmplx.Abs(arg), 0), nil
	}
	return 0, &calcerr.UnsupportedExpressionError{Construct: c.fn}
}

// ============================================================
// String forms
// ============================================================

func (n num) String() string {
	return strconv.FormatFloat(n.val, 'g', -1, 64)
}

func (s sym) String() string { return s.name }

func (a add) String() string {
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

func (m mul) String() string {
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if _, isAdd := f.(add); isAdd {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}
	return strings.Join(parts, "*")
}

func (p pow) String() string {
	baseStr := p.base.String()
	switch p.base.(type) {
	case add, mul, pow:
		baseStr = "(" + baseStr + ")"
	}
	expStr := p.exp.String()
	switch p.exp.(type) {
	case add, mul, pow:
		expStr = "(" + expStr + ")"
	default:
		if en, ok := p.exp.(num); ok && en.val < 0 {
			expStr = "(" + expStr + ")"
		}
	}
	return baseStr + "^" + expStr
}

func (c call) String() string { return c.fn + "(" + c.arg.String() + ")" }

// Vars returns the sorted-free set of variable names referenced by e.
func Vars(e Expr) []string {
	seen := map[string]struct{}{}
	collectVars(e, seen)
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func collectVars(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case sym:
		out[v.name] = struct{}{}
	case add:
		for _, t := range v.terms {
			collectVars(t, out)
		}
	case mul:
		for _, f := range v.factors {
			collectVars(f, out)
		}
	case pow:
		collectVars(v.base, out)
		collectVars(v.exp, out)
	case call:
		collectVars(v.arg, out)
	}
}

