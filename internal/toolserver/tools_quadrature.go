package toolserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"calctools/budget"
	"calctools/calcerr"
	"calctools/calculus"
	"calctools/expr"
)

const defaultPartitions = 1000

func (s *Server) registerQuadratureTools() {
	s.mcp.AddTool(mcp.NewTool("riemann_sum",
		mcp.WithDescription("Riemann sum of an expression over an interval with left, right, midpoint or trapezoid sampling."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Integrand")),
		mcp.WithNumber("lower", mcp.Required(), mcp.Description("Lower bound")),
		mcp.WithNumber("upper", mcp.Required(), mcp.Description("Upper bound")),
		mcp.WithNumber("partitions", mcp.Description("Subinterval count, default 1000, capped at 100000")),
		mcp.WithString("method", mcp.Description("left, right, midpoint or trapezoid; default midpoint")),
		mcp.WithString("variable", mcp.Description("Integration variable, default x")),
	), s.wrap("riemann_sum", handleRiemannSum))

	s.mcp.AddTool(mcp.NewTool("darboux_sum",
		mcp.WithDescription("Upper and lower Darboux sums of an expression over an interval."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Integrand")),
		mcp.WithNumber("lower", mcp.Required(), mcp.Description("Lower bound")),
		mcp.WithNumber("upper", mcp.Required(), mcp.Description("Upper bound")),
		mcp.WithNumber("partitions", mcp.Description("Subinterval count, default 1000, capped at 100000")),
		mcp.WithString("variable", mcp.Description("Integration variable, default x")),
	), s.wrap("darboux_sum", handleDarbouxSum))

	s.mcp.AddTool(mcp.NewTool("riemann_stieltjes",
		mcp.WithDescription("Riemann-Stieltjes sum of an integrand against an integrator expression."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Integrand f")),
		mcp.WithString("integrator", mcp.Required(), mcp.Description("Integrator g; the sum weights by its increments")),
		mcp.WithNumber("lower", mcp.Required(), mcp.Description("Lower bound")),
		mcp.WithNumber("upper", mcp.Required(), mcp.Description("Upper bound")),
		mcp.WithNumber("partitions", mcp.Description("Subinterval count, default 1000, capped at 100000")),
		mcp.WithString("variable", mcp.Description("Integration variable, default x")),
	), s.wrap("riemann_stieltjes", handleRiemannStieltjes))

	s.mcp.AddTool(mcp.NewTool("lebesgue_integral",
		mcp.WithDescription("Level-set approximation of the integral of a non-negative expression."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Non-negative integrand")),
		mcp.WithNumber("lower", mcp.Required(), mcp.Description("Lower bound")),
		mcp.WithNumber("upper", mcp.Required(), mcp.Description("Upper bound")),
		mcp.WithNumber("levels", mcp.Description("Horizontal slice count, default 1000, capped at 100000")),
		mcp.WithString("variable", mcp.Description("Integration variable, default x")),
	), s.wrap("lebesgue_integral", handleLebesgueIntegral))
}

func boundsArgs(req mcp.CallToolRequest) (lower, upper float64, err error) {
	lower, err = req.RequireFloat("lower")
	if err != nil {
		return 0, 0, calcerr.InvalidParam("lower", "%v", err)
	}
	upper, err = req.RequireFloat("upper")
	if err != nil {
		return 0, 0, calcerr.InvalidParam("upper", "%v", err)
	}
	return lower, upper, nil
}

func partitionsArg(req mcp.CallToolRequest, name string) (int, error) {
	return budget.Clamp(req.GetFloat(name, defaultPartitions), budget.MaxPartitions)
}

func handleRiemannSum(_ context.Context, req mcp.CallToolRequest) (any, error) {
	f, err := fnArg(req, "expression")
	if err != nil {
		return nil, err
	}
	lower, upper, err := boundsArgs(req)
	if err != nil {
		return nil, err
	}
	n, err := partitionsArg(req, "partitions")
	if err != nil {
		return nil, err
	}
	method := calculus.Method(req.GetString("method", string(calculus.Midpoint)))
	v, err := calculus.RiemannSum(f, lower, upper, n, method)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"value":      v,
		"partitions": n,
		"method":     string(method),
	}, nil
}

func handleDarbouxSum(_ context.Context, req mcp.CallToolRequest) (any, error) {
	f, err := fnArg(req, "expression")
	if err != nil {
		return nil, err
	}
	lower, upper, err := boundsArgs(req)
	if err != nil {
		return nil, err
	}
	n, err := partitionsArg(req, "partitions")
	if err != nil {
		return nil, err
	}
	hi, lo, err := calculus.DarbouxSum(f, lower, upper, n)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"upper":      hi,
		"lower":      lo,
		"partitions": n,
	}, nil
}

func handleRiemannStieltjes(_ context.Context, req mcp.CallToolRequest) (any, error) {
	f, err := fnArg(req, "expression")
	if err != nil {
		return nil, err
	}
	gExpr, err := exprArg(req, "integrator")
	if err != nil {
		return nil, err
	}
	variable := variableArg(req)
	g := func(x float64) (float64, error) {
		return gExpr.Eval(expr.Binding{variable: x})
	}
	lower, upper, err := boundsArgs(req)
	if err != nil {
		return nil, err
	}
	n, err := partitionsArg(req, "partitions")
	if err != nil {
		return nil, err
	}
	v, err := calculus.RiemannStieltjes(f, g, lower, upper, n)
	if err != nil {
		return nil, err
	}
	return map[string]any{"value": v, "partitions": n}, nil
}

func handleLebesgueIntegral(_ context.Context, req mcp.CallToolRequest) (any, error) {
	f, err := fnArg(req, "expression")
	if err != nil {
		return nil, err
	}
	lower, upper, err := boundsArgs(req)
	if err != nil {
		return nil, err
	}
	levels, err := partitionsArg(req, "levels")
	if err != nil {
		return nil, err
	}
	v, err := calculus.LebesgueIntegral(f, lower, upper, levels)
	if err != nil {
		return nil, err
	}
	return map[string]any{"value": v, "levels": levels}, nil
}
