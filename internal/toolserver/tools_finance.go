package toolserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"calctools/calcerr"
	"calctools/finance"
)

func (s *Server) registerFinanceTools() {
	contractParams := []mcp.ToolOption{
		mcp.WithNumber("spot", mcp.Required(), mcp.Description("Current asset price")),
		mcp.WithNumber("strike", mcp.Required(), mcp.Description("Strike price")),
		mcp.WithNumber("expiry", mcp.Required(), mcp.Description("Time to expiration in years")),
		mcp.WithNumber("rate", mcp.Required(), mcp.Description("Annualized risk-free rate")),
		mcp.WithNumber("volatility", mcp.Required(), mcp.Description("Annualized volatility")),
		mcp.WithString("kind", mcp.Description("call or put, default call")),
	}

	s.mcp.AddTool(mcp.NewTool("black_scholes",
		append([]mcp.ToolOption{
			mcp.WithDescription("Black-Scholes price of a European option."),
		}, contractParams...)...,
	), s.wrap("black_scholes", handleBlackScholes))

	s.mcp.AddTool(mcp.NewTool("option_greeks",
		append([]mcp.ToolOption{
			mcp.WithDescription("Black-Scholes sensitivities: delta, gamma, vega, theta and rho."),
		}, contractParams...)...,
	), s.wrap("option_greeks", handleOptionGreeks))

	s.mcp.AddTool(mcp.NewTool("sharpe_ratio",
		mcp.WithDescription("Sharpe ratio of a return series against a per-period risk-free rate."),
		mcp.WithArray("returns", mcp.Required(), mcp.Description("Per-period returns, at least 2")),
		mcp.WithNumber("risk_free", mcp.Description("Per-period risk-free rate, default 0")),
	), s.wrap("sharpe_ratio", handleSharpeRatio))

	s.mcp.AddTool(mcp.NewTool("value_at_risk",
		mcp.WithDescription("Historical value at risk of a return series, reported as a positive loss."),
		mcp.WithArray("returns", mcp.Required(), mcp.Description("Per-period returns, at least 10")),
		mcp.WithNumber("confidence", mcp.Description("Confidence level in (0, 1), default 0.95")),
	), s.wrap("value_at_risk", handleValueAtRisk))

	s.mcp.AddTool(mcp.NewTool("compound_interest",
		mcp.WithDescription("Future value of a principal under periodic compounding."),
		mcp.WithNumber("principal", mcp.Required(), mcp.Description("Starting amount")),
		mcp.WithNumber("rate", mcp.Required(), mcp.Description("Annual rate")),
		mcp.WithNumber("periods_per_year", mcp.Description("Compounding periods per year, default 1")),
		mcp.WithNumber("years", mcp.Required(), mcp.Description("Investment horizon in years")),
	), s.wrap("compound_interest", handleCompoundInterest))

	s.mcp.AddTool(mcp.NewTool("present_value",
		mcp.WithDescription("Present value of a future amount under annual discounting."),
		mcp.WithNumber("future_value", mcp.Required(), mcp.Description("Amount received in the future")),
		mcp.WithNumber("rate", mcp.Required(), mcp.Description("Annual discount rate")),
		mcp.WithNumber("years", mcp.Required(), mcp.Description("Years until receipt")),
	), s.wrap("present_value", handlePresentValue))

	s.mcp.AddTool(mcp.NewTool("amortization_schedule",
		mcp.WithDescription("Fixed-payment loan amortization schedule with cent-exact rows."),
		mcp.WithNumber("principal", mcp.Required(), mcp.Description("Loan amount")),
		mcp.WithNumber("rate", mcp.Required(), mcp.Description("Per-period interest rate")),
		mcp.WithNumber("periods", mcp.Required(), mcp.Description("Number of payments")),
	), s.wrap("amortization_schedule", handleAmortization))
}

func contractArg(req mcp.CallToolRequest) (finance.Contract, error) {
	var c finance.Contract
	for _, field := range []struct {
		name string
		dst  *float64
	}{
		{"spot", &c.Spot},
		{"strike", &c.Strike},
		{"expiry", &c.Expiry},
		{"rate", &c.Rate},
		{"volatility", &c.Vol},
	} {
		v, err := req.RequireFloat(field.name)
		if err != nil {
			return finance.Contract{}, calcerr.InvalidParam(field.name, "%v", err)
		}
		*field.dst = v
	}
	c.Kind = finance.Kind(req.GetString("kind", string(finance.Call)))
	return c, c.Validate()
}

func handleBlackScholes(_ context.Context, req mcp.CallToolRequest) (any, error) {
	c, err := contractArg(req)
	if err != nil {
		return nil, err
	}
	price, err := finance.Price(c)
	if err != nil {
		return nil, err
	}
	return map[string]any{"price": price, "kind": string(c.Kind)}, nil
}

func handleOptionGreeks(_ context.Context, req mcp.CallToolRequest) (any, error) {
	c, err := contractArg(req)
	if err != nil {
		return nil, err
	}
	g, err := finance.GreeksOf(c)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"delta": g.Delta,
		"gamma": g.Gamma,
		"vega":  g.Vega,
		"theta": g.Theta,
		"rho":   g.Rho,
	}, nil
}

func handleSharpeRatio(_ context.Context, req mcp.CallToolRequest) (any, error) {
	returns, err := floatsArg(req, "returns")
	if err != nil {
		return nil, err
	}
	v, err := finance.SharpeRatio(returns, req.GetFloat("risk_free", 0))
	if err != nil {
		return nil, err
	}
	return map[string]any{"sharpe_ratio": v, "samples": len(returns)}, nil
}

func handleValueAtRisk(_ context.Context, req mcp.CallToolRequest) (any, error) {
	returns, err := floatsArg(req, "returns")
	if err != nil {
		return nil, err
	}
	confidence := req.GetFloat("confidence", 0.95)
	v, err := finance.ValueAtRisk(returns, confidence)
	if err != nil {
		return nil, err
	}
	return map[string]any{"value_at_risk": v, "confidence": confidence}, nil
}

func handleCompoundInterest(_ context.Context, req mcp.CallToolRequest) (any, error) {
	principal, err := req.RequireFloat("principal")
	if err != nil {
		return nil, calcerr.InvalidParam("principal", "%v", err)
	}
	rate, err := req.RequireFloat("rate")
	if err != nil {
		return nil, calcerr.InvalidParam("rate", "%v", err)
	}
	years, err := req.RequireFloat("years")
	if err != nil {
		return nil, calcerr.InvalidParam("years", "%v", err)
	}
	v, err := finance.CompoundInterest(principal, rate,
		req.GetInt("periods_per_year", 1), years)
	if err != nil {
		return nil, err
	}
	return map[string]any{"future_value": v}, nil
}

func handlePresentValue(_ context.Context, req mcp.CallToolRequest) (any, error) {
	future, err := req.RequireFloat("future_value")
	if err != nil {
		return nil, calcerr.InvalidParam("future_value", "%v", err)
	}
	rate, err := req.RequireFloat("rate")
	if err != nil {
		return nil, calcerr.InvalidParam("rate", "%v", err)
	}
	years, err := req.RequireFloat("years")
	if err != nil {
		return nil, calcerr.InvalidParam("years", "%v", err)
	}
	v, err := finance.PresentValue(future, rate, years)
	if err != nil {
		return nil, err
	}
	return map[string]any{"present_value": v}, nil
}

func handleAmortization(_ context.Context, req mcp.CallToolRequest) (any, error) {
	principal, err := req.RequireFloat("principal")
	if err != nil {
		return nil, calcerr.InvalidParam("principal", "%v", err)
	}
	rate, err := req.RequireFloat("rate")
	if err != nil {
		return nil, calcerr.InvalidParam("rate", "%v", err)
	}
	periods, err := req.RequireInt("periods")
	if err != nil {
		return nil, calcerr.InvalidParam("periods", "%v", err)
	}
	rows, err := finance.AmortizationSchedule(principal, rate, periods)
	if err != nil {
		return nil, err
	}
	return map[string]any{"schedule": rows, "periods": len(rows)}, nil
}
