package budget

import (
	"math"
	"testing"

	"calctools/calcerr"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		requested float64
		want      int
	}{
		{1000, 1000},
		{1, 1},
		{float64(MaxPartitions), MaxPartitions},
		{0, 1},
		{-5, 1},
		{0.4, 1},
		{math.NaN(), 1},
		{math.Inf(1), 1},
		{math.Inf(-1), 1},
	}
	for _, tc := range cases {
		got, err := Clamp(tc.requested, MaxPartitions)
		if err != nil {
			t.Errorf("Clamp(%g) error: %v", tc.requested, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Clamp(%g) = %d, want %d", tc.requested, got, tc.want)
		}
	}
}

func TestClampOverCap(t *testing.T) {
	_, err := Clamp(float64(MaxPartitions)+1, MaxPartitions)
	if !calcerr.IsInvalidParameter(err) {
		t.Fatalf("Clamp over cap = %v, want InvalidParameterError", err)
	}
	_, err = Clamp(15000, MaxSeriesTerms)
	if !calcerr.IsInvalidParameter(err) {
		t.Fatalf("Clamp over series cap = %v, want InvalidParameterError", err)
	}
}
