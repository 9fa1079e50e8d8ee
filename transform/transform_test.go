package transform

import (
	"math"
	"math/cmplx"
	"testing"

	"calctools/calcerr"
)

func TestLaplaceOfUnitStep(t *testing.T) {
	one := func(float64) (float64, error) { return 1, nil }
	got, err := Laplace(one, complex(1, 0))
	if err != nil {
		t.Fatal(err)
	}
	// Exact transform is 1/s = 1; the rectangle grid overshoots slightly.
	if math.Abs(real(got)-1) > 0.06 || math.Abs(imag(got)) > 1e-12 {
		t.Errorf("Laplace(1)(1) = %v, want ~1", got)
	}
}

func TestLaplaceLinearity(t *testing.T) {
	f := func(x float64) (float64, error) { return math.Exp(-x), nil }
	g := func(x float64) (float64, error) { return 2 * math.Exp(-x), nil }
	s := complex(2, 0.5)
	fv, err := Laplace(f, s)
	if err != nil {
		t.Fatal(err)
	}
	gv, err := Laplace(g, s)
	if err != nil {
		t.Fatal(err)
	}
	if cmplx.Abs(gv-2*fv) > 1e-12 {
		t.Errorf("linearity violated: L(2f)=%v, 2*L(f)=%v", gv, 2*fv)
	}
}

func TestFourierOfGaussian(t *testing.T) {
	gauss := func(x float64) (float64, error) { return math.Exp(-x * x), nil }

	got, err := Fourier(gauss, 0)
	if err != nil {
		t.Fatal(err)
	}
	if cmplx.Abs(got-complex(math.Sqrt(math.Pi), 0)) > 1e-6 {
		t.Errorf("Fourier(gauss)(0) = %v, want sqrt(pi)", got)
	}

	got, err = Fourier(gauss, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := math.Sqrt(math.Pi) * math.Exp(-0.25)
	if math.Abs(real(got)-want) > 1e-6 {
		t.Errorf("Fourier(gauss)(1) = %v, want %g", got, want)
	}
}

func TestZGeometricSequence(t *testing.T) {
	geo := func(n int) (float64, error) { return math.Pow(0.5, float64(n)), nil }
	got, err := Z(geo, complex(2, 0), DefaultZLimit)
	if err != nil {
		t.Fatal(err)
	}
	// Sum of (1/4)^n = 4/3.
	if cmplx.Abs(got-complex(4.0/3, 0)) > 1e-12 {
		t.Errorf("Z(0.5^n)(2) = %v, want 4/3", got)
	}
}

func TestZUpperIndexIsInclusive(t *testing.T) {
	one := func(int) (float64, error) { return 1, nil }

	// Sum over n in [0, 4] at z=1 counts the terms: five of them.
	got, err := Z(one, complex(1, 0), 4)
	if err != nil {
		t.Fatal(err)
	}
	if got != complex(5, 0) {
		t.Errorf("Z(1)(1) with limit 4 = %v, want 5", got)
	}

	// Limit 0 keeps just x[0].
	got, err = Z(one, complex(3, 0), 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != complex(1, 0) {
		t.Errorf("Z(1)(3) with limit 0 = %v, want 1", got)
	}
}

func TestZRejectsBadArguments(t *testing.T) {
	one := func(int) (float64, error) { return 1, nil }
	if _, err := Z(one, 0, 10); !calcerr.IsInvalidParameter(err) {
		t.Errorf("Z at z=0: %v, want InvalidParameterError", err)
	}
	if _, err := Z(one, complex(2, 0), -1); !calcerr.IsInvalidParameter(err) {
		t.Errorf("Z with negative limit: %v, want InvalidParameterError", err)
	}
}

func TestTransformsAreRepeatable(t *testing.T) {
	f := func(x float64) (float64, error) { return math.Sin(x) * math.Exp(-x*x/10), nil }
	first, err := Fourier(f, 2.5)
	if err != nil {
		t.Fatal(err)
	}
	again, err := Fourier(f, 2.5)
	if err != nil {
		t.Fatal(err)
	}
	if first != again {
		t.Fatalf("repeat Fourier differs: %v vs %v", first, again)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   complex128
		want string
	}{
		{complex(3, 2), "3 + 2i"},
		{complex(2, -0.5), "2 - 0.5i"},
		{complex(1, 0), "1 + 0i"},
		{complex(-1.5, 0), "-1.5 + 0i"},
		{complex(0, 1), "0 + 1i"},
	}
	for _, tc := range cases {
		if got := Format(tc.in); got != tc.want {
			t.Errorf("Format(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
