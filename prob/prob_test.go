package prob

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calctools/calcerr"
)

func TestBinomialPMF(t *testing.T) {
	// Fair coin, 4 flips, exactly 2 heads: C(4,2)/16 = 0.375.
	got, err := BinomialPMF(4, 0.5, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.375, got, 1e-12)

	got, err = BinomialPMF(4, 0.5, 7)
	require.NoError(t, err)
	assert.Zero(t, got, "out-of-support k has zero mass")
}

func TestBinomialPMFSumsToOne(t *testing.T) {
	total := 0.0
	for k := 0; k <= 10; k++ {
		p, err := BinomialPMF(10, 0.3, k)
		require.NoError(t, err)
		total += p
	}
	assert.InDelta(t, 1.0, total, 1e-12)
}

func TestBinomialCDF(t *testing.T) {
	got, err := BinomialCDF(4, 0.5, 4)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = BinomialCDF(4, 0.5, -1)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestBinomialValidation(t *testing.T) {
	_, err := BinomialPMF(-1, 0.5, 0)
	assert.True(t, calcerr.IsInvalidParameter(err))
	_, err = BinomialPMF(4, 1.5, 0)
	assert.True(t, calcerr.IsInvalidParameter(err))
	_, err = BinomialPMF(4, math.NaN(), 0)
	assert.True(t, calcerr.IsInvalidParameter(err))
}

func TestPoissonPMF(t *testing.T) {
	// P(X=0) = e^-lambda.
	got, err := PoissonPMF(2, 0)
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-2), got, 1e-12)

	got, err = PoissonPMF(2, -3)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestPoissonCDFMonotone(t *testing.T) {
	prev := 0.0
	for k := 0; k < 15; k++ {
		v, err := PoissonCDF(3.5, k)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
	assert.InDelta(t, 1.0, prev, 1e-4)
}

func TestPoissonValidation(t *testing.T) {
	_, err := PoissonPMF(0, 1)
	assert.True(t, calcerr.IsInvalidParameter(err))
	_, err = PoissonPMF(-2, 1)
	assert.True(t, calcerr.IsInvalidParameter(err))
}
