package finance

import (
	"github.com/shopspring/decimal"

	"calctools/calcerr"
)

// AmortizationRow is one period of a fixed-payment schedule. Money fields
// are exact decimals rounded to cents.
type AmortizationRow struct {
	Period    int             `json:"period"`
	Payment   decimal.Decimal `json:"payment"`
	Interest  decimal.Decimal `json:"interest"`
	Principal decimal.Decimal `json:"principal"`
	Balance   decimal.Decimal `json:"balance"`
}

// AmortizationSchedule builds the full repayment schedule of a loan with
// periods equal payments at a per-period rate. The final payment absorbs
// rounding drift so the balance closes at exactly zero.
func AmortizationSchedule(principal, rate float64, periods int) ([]AmortizationRow, error) {
	if principal <= 0 {
		return nil, calcerr.InvalidParam("principal", "must be positive, got %g", principal)
	}
	if rate < 0 {
		return nil, calcerr.InvalidParam("rate", "must be non-negative, got %g", rate)
	}
	if periods < 1 {
		return nil, calcerr.InvalidParam("periods", "must be at least 1, got %d", periods)
	}

	p := decimal.NewFromFloat(principal)
	r := decimal.NewFromFloat(rate)
	one := decimal.NewFromInt(1)

	var payment decimal.Decimal
	if rate == 0 {
		payment = p.Div(decimal.NewFromInt(int64(periods))).Round(2)
	} else {
		// P * r / (1 - (1+r)^-n)
		growth := one.Add(r).Pow(decimal.NewFromInt(int64(periods)))
		payment = p.Mul(r).Mul(growth).Div(growth.Sub(one)).Round(2)
	}

	rows := make([]AmortizationRow, 0, periods)
	balance := p
	for i := 1; i <= periods; i++ {
		interest := balance.Mul(r).Round(2)
		pay := payment
		principalPart := pay.Sub(interest)
		if i == periods || principalPart.GreaterThan(balance) {
			// Close out: last payment clears whatever remains.
			principalPart = balance
			pay = interest.Add(principalPart)
		}
		balance = balance.Sub(principalPart)
		rows = append(rows, AmortizationRow{
			Period:    i,
			Payment:   pay,
			Interest:  interest,
			Principal: principalPart,
			Balance:   balance,
		})
	}
	return rows, nil
}
