package finance

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calctools/calcerr"
)

func atm() Contract {
	return Contract{Spot: 100, Strike: 100, Expiry: 1, Rate: 0.05, Vol: 0.2, Kind: Call}
}

func TestBlackScholesCallPrice(t *testing.T) {
	price, err := Price(atm())
	require.NoError(t, err)
	assert.InDelta(t, 10.4506, price, 1e-3)
}

func TestPutCallParity(t *testing.T) {
	c := atm()
	call, err := Price(c)
	require.NoError(t, err)
	c.Kind = Put
	put, err := Price(c)
	require.NoError(t, err)

	parity := c.Spot - c.Strike*math.Exp(-c.Rate*c.Expiry)
	assert.InDelta(t, parity, call-put, 1e-6)
}

func TestContractValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Contract)
	}{
		{"zero spot", func(c *Contract) { c.Spot = 0 }},
		{"negative strike", func(c *Contract) { c.Strike = -5 }},
		{"zero expiry", func(c *Contract) { c.Expiry = 0 }},
		{"zero vol", func(c *Contract) { c.Vol = 0 }},
		{"nan spot", func(c *Contract) { c.Spot = math.NaN() }},
		{"bad kind", func(c *Contract) { c.Kind = "straddle" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := atm()
			tc.mutate(&c)
			_, err := Price(c)
			assert.True(t, calcerr.IsInvalidParameter(err), "got %v", err)
			_, err = GreeksOf(c)
			assert.True(t, calcerr.IsInvalidParameter(err), "got %v", err)
		})
	}
}

func TestGreeks(t *testing.T) {
	c := atm()
	call, err := GreeksOf(c)
	require.NoError(t, err)
	c.Kind = Put
	put, err := GreeksOf(c)
	require.NoError(t, err)

	assert.InDelta(t, 0.6368, call.Delta, 1e-3)
	assert.InDelta(t, 1.0, call.Delta-put.Delta, 1e-9, "delta parity")
	assert.InDelta(t, call.Gamma, put.Gamma, 1e-12, "gamma is kind-independent")
	assert.InDelta(t, call.Vega, put.Vega, 1e-12, "vega is kind-independent")
	assert.Less(t, call.Theta, 0.0)
	assert.Greater(t, call.Rho, 0.0)
	assert.Less(t, put.Rho, 0.0)
}

func TestSharpeRatio(t *testing.T) {
	got, err := SharpeRatio([]float64{0.01, 0.02, 0.03}, 0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-9)

	_, err = SharpeRatio([]float64{0.01}, 0)
	var ide *calcerr.InsufficientDataError
	require.ErrorAs(t, err, &ide)
	assert.Equal(t, 2, ide.Need)

	_, err = SharpeRatio([]float64{0.01, 0.01, 0.01}, 0)
	assert.True(t, calcerr.IsInvalidParameter(err), "zero variance: %v", err)
}

func TestValueAtRisk(t *testing.T) {
	returns := []float64{-0.08, -0.05, -0.03, -0.01, 0.0, 0.01, 0.02, 0.03, 0.04, 0.06}
	got, err := ValueAtRisk(returns, 0.95)
	require.NoError(t, err)
	assert.Greater(t, got, 0.0)
	assert.LessOrEqual(t, got, 0.08)

	_, err = ValueAtRisk(returns[:5], 0.95)
	var ide *calcerr.InsufficientDataError
	require.ErrorAs(t, err, &ide)

	_, err = ValueAtRisk(returns, 1.2)
	assert.True(t, calcerr.IsInvalidParameter(err))
}

func TestCompoundInterest(t *testing.T) {
	got, err := CompoundInterest(1000, 0.05, 12, 10)
	require.NoError(t, err)
	assert.InDelta(t, 1647.0095, got, 1e-3)

	_, err = CompoundInterest(1000, 0.05, 0, 10)
	assert.True(t, calcerr.IsInvalidParameter(err))
}

func TestPresentValue(t *testing.T) {
	got, err := PresentValue(1000, 0.05, 10)
	require.NoError(t, err)
	assert.InDelta(t, 613.9133, got, 1e-3)

	// Round trip with compound interest at annual compounding.
	fv, err := CompoundInterest(613.9133, 0.05, 1, 10)
	require.NoError(t, err)
	assert.InDelta(t, 1000, fv, 1e-2)
}

func TestAmortizationScheduleZeroRate(t *testing.T) {
	rows, err := AmortizationSchedule(1200, 0, 12)
	require.NoError(t, err)
	require.Len(t, rows, 12)
	assert.True(t, rows[0].Payment.Equal(decimal.NewFromInt(100)))
	assert.True(t, rows[11].Balance.IsZero(), "final balance %s", rows[11].Balance)
}

func TestAmortizationSchedule(t *testing.T) {
	rows, err := AmortizationSchedule(10000, 0.01, 12)
	require.NoError(t, err)
	require.Len(t, rows, 12)

	// Standard annuity payment for 10k at 1% per period over 12 periods.
	assert.True(t, rows[0].Payment.Equal(decimal.NewFromFloat(888.49)),
		"payment %s", rows[0].Payment)

	total := decimal.Zero
	for _, row := range rows {
		assert.True(t, row.Payment.Equal(row.Interest.Add(row.Principal)),
			"period %d does not balance", row.Period)
		total = total.Add(row.Principal)
	}
	assert.True(t, total.Equal(decimal.NewFromInt(10000)), "principal sum %s", total)
	assert.True(t, rows[11].Balance.IsZero())
}

func TestAmortizationScheduleRejectsBadInput(t *testing.T) {
	for _, tc := range []struct {
		principal float64
		rate      float64
		periods   int
	}{
		{0, 0.01, 12},
		{-100, 0.01, 12},
		{1000, -0.01, 12},
		{1000, 0.01, 0},
	} {
		_, err := AmortizationSchedule(tc.principal, tc.rate, tc.periods)
		assert.True(t, calcerr.IsInvalidParameter(err),
			"(%g,%g,%d): %v", tc.principal, tc.rate, tc.periods, err)
	}
}
