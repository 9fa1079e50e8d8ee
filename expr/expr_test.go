package expr

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"calctools/calcerr"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestParseAndEval(t *testing.T) {
	cases := []struct {
		input   string
		binding Binding
		want    float64
	}{
		{"2 + 3*4", nil, 14},
		{"(2 + 3)*4", nil, 20},
		{"2^3^2", nil, 512}, // right associative
		{"-x^2", Binding{"x": 3}, -9},
		{"x^-2", Binding{"x": 2}, 0.25},
		{"10/4", nil, 2.5},
		{"sin(pi/2)", nil, 1},
		{"cos(0) + tan(0)", nil, 1},
		{"ln(e)", nil, 1},
		{"log(e^2)", nil, 2},
		{"sqrt(x + 7)", Binding{"x": 9}, 4},
		{"abs(-3.5)", nil, 3.5},
		{"exp(0)", nil, 1},
		{"2*x + y", Binding{"x": 3, "y": 4}, 10},
	}
	for _, tc := range cases {
		e, err := Parse(tc.input)
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.input, err)
			continue
		}
		got, err := e.Eval(tc.binding)
		if err != nil {
			t.Errorf("Eval(%q): %v", tc.input, err)
			continue
		}
		if !almostEqual(got, tc.want, 1e-12) {
			t.Errorf("Eval(%q) = %g, want %g", tc.input, got, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"(x +",
		"x $ y",
		"sin()",
		"2 +",
		"foo(3)",
		"x + * y",
		"",
	}
	for _, input := range bad {
		_, err := Parse(input)
		if err == nil {
			t.Errorf("Parse(%q) succeeded, want error", input)
			continue
		}
		var pe *calcerr.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Parse(%q) = %v, want *ParseError", input, err)
		}
	}
}

func TestEvalDomainErrors(t *testing.T) {
	cases := []struct {
		input   string
		binding Binding
	}{
		{"1/x", Binding{"x": 0}},
		{"ln(x)", Binding{"x": -1}},
		{"ln(x)", Binding{"x": 0}},
		{"sqrt(x)", Binding{"x": -4}},
		{"x^0.5", Binding{"x": -1}},
	}
	for _, tc := range cases {
		e := MustParse(tc.input)
		_, err := e.Eval(tc.binding)
		var ee *calcerr.EvaluationError
		if !errors.As(err, &ee) {
			t.Errorf("Eval(%q, %v) = %v, want *EvaluationError", tc.input, tc.binding, err)
		}
	}
}

func TestEvalUnboundVariable(t *testing.T) {
	e := MustParse("x + y")
	_, err := e.Eval(Binding{"x": 1})
	var ue *calcerr.UnboundVariableError
	if !errors.As(err, &ue) {
		t.Fatalf("Eval = %v, want *UnboundVariableError", err)
	}
	if ue.Name != "y" {
		t.Errorf("unbound name = %q, want %q", ue.Name, "y")
	}
}

func TestEvalComplex(t *testing.T) {
	// exp(i*pi) = -1
	e := MustParse("exp(i*pi)")
	got, err := e.EvalComplex(ComplexBinding{"i": complex(0, 1)})
	if err != nil {
		t.Fatal(err)
	}
	if cmplx.Abs(got-complex(-1, 0)) > 1e-12 {
		t.Errorf("exp(i*pi) = %v, want -1", got)
	}

	// sqrt(-1) = i over the complex numbers.
	e = MustParse("sqrt(z)")
	got, err = e.EvalComplex(ComplexBinding{"z": complex(-1, 0)})
	if err != nil {
		t.Fatal(err)
	}
	if cmplx.Abs(got-complex(0, 1)) > 1e-12 {
		t.Errorf("sqrt(-1) = %v, want i", got)
	}
}

func TestDiffPolynomial(t *testing.T) {
	e := MustParse("x^3")
	d, err := e.Diff("x")
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "3*x^2" {
		t.Errorf("d/dx x^3 = %q, want %q", d.String(), "3*x^2")
	}
}

func TestDiffElementary(t *testing.T) {
	cases := []struct {
		input string
		at    float64
		want  float64
	}{
		{"sin(x)", 0.7, math.Cos(0.7)},
		{"cos(x)", 0.7, -math.Sin(0.7)},
		{"tan(x)", 0.3, 1 / (math.Cos(0.3) * math.Cos(0.3))},
		{"exp(2*x)", 0.5, 2 * math.Exp(1)},
		{"ln(x)", 3, 1.0 / 3},
		{"sqrt(x)", 4, 0.25},
		{"x*sin(x)", 1.2, math.Sin(1.2) + 1.2*math.Cos(1.2)},
		{"x^x", 2, 4 * (math.Log(2) + 1)},
		{"sin(x^2)", 0.9, 2 * 0.9 * math.Cos(0.81)},
	}
	for _, tc := range cases {
		d, err := MustParse(tc.input).Diff("x")
		if err != nil {
			t.Errorf("Diff(%q): %v", tc.input, err)
			continue
		}
		got, err := d.Eval(Binding{"x": tc.at})
		if err != nil {
			t.Errorf("Eval of d/dx %q: %v", tc.input, err)
			continue
		}
		if !almostEqual(got, tc.want, 1e-10) {
			t.Errorf("d/dx %q at %g = %g, want %g", tc.input, tc.at, got, tc.want)
		}
	}
}

func TestDiffConstantAndOtherVariable(t *testing.T) {
	d, err := MustParse("3*y + 7").Diff("x")
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "0" {
		t.Errorf("d/dx (3y+7) = %q, want 0", d.String())
	}
}

func TestDiffAbsUnsupported(t *testing.T) {
	_, err := MustParse("abs(x)").Diff("x")
	var ue *calcerr.UnsupportedExpressionError
	if !errors.As(err, &ue) {
		t.Fatalf("Diff(abs(x)) = %v, want *UnsupportedExpressionError", err)
	}
}

func TestAntiderivative(t *testing.T) {
	cases := []struct {
		input string
		a, b  float64
		want  float64 // integral over [a, b]
	}{
		{"x^2", 0, 1, 1.0 / 3},
		{"3*x^2 + 2*x + 1", 0, 2, 14},
		{"1/x", 1, math.E, 1},
		{"sin(x)", 0, math.Pi, 2},
		{"cos(2*x)", 0, math.Pi / 4, 0.5},
		{"exp(x)", 0, 1, math.E - 1},
		{"ln(x)", 1, math.E, 1},
		{"5", 0, 3, 15},
	}
	for _, tc := range cases {
		F, err := Antiderivative(MustParse(tc.input), "x")
		if err != nil {
			t.Errorf("Antiderivative(%q): %v", tc.input, err)
			continue
		}
		fb, err := F.Eval(Binding{"x": tc.b})
		if err != nil {
			t.Errorf("eval F(%g) for %q: %v", tc.b, tc.input, err)
			continue
		}
		fa, err := F.Eval(Binding{"x": tc.a})
		if err != nil {
			t.Errorf("eval F(%g) for %q: %v", tc.a, tc.input, err)
			continue
		}
		if !almostEqual(fb-fa, tc.want, 1e-10) {
			t.Errorf("integral of %q over [%g,%g] = %g, want %g",
				tc.input, tc.a, tc.b, fb-fa, tc.want)
		}
	}
}

func TestAntiderivativeUnsupported(t *testing.T) {
	for _, input := range []string{"sin(x^2)", "x*sin(x)", "tan(x)"} {
		_, err := Antiderivative(MustParse(input), "x")
		var ue *calcerr.UnsupportedExpressionError
		if !errors.As(err, &ue) {
			t.Errorf("Antiderivative(%q) = %v, want *UnsupportedExpressionError", input, err)
		}
	}
}

func TestVars(t *testing.T) {
	e := MustParse("x*sin(y) + z^x")
	got := Vars(e)
	want := []string{"x", "y", "z"}
	if len(got) != len(want) {
		t.Fatalf("Vars = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Vars = %v, want %v", got, want)
		}
	}
}

func TestEvalIsRepeatable(t *testing.T) {
	e := MustParse("sin(x)*exp(x) + x^3")
	b := Binding{"x": 1.234567}
	first, err := e.Eval(b)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := e.Eval(b)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("repeat eval %d = %v, first = %v", i, again, first)
		}
	}
}
