package toolserver

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"calctools/budget"
	"calctools/calcerr"
	"calctools/calculus"
	"calctools/expr"
)

func (s *Server) registerAnalysisTools() {
	s.mcp.AddTool(mcp.NewTool("limit",
		mcp.WithDescription("Numerically estimate the limit of an expression as the variable approaches a point; the value is the sentinel string \"limit does not exist\" when there is none."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Formula, e.g. sin(x)/x")),
		mcp.WithNumber("point", mcp.Required(), mcp.Description("Approach point")),
		mcp.WithString("direction", mcp.Description("left, right or both; default both")),
		mcp.WithNumber("tolerance", mcp.Description("Stabilization tolerance, default 1e-6")),
		mcp.WithString("variable", mcp.Description("Variable, default x")),
	), s.wrap("limit", handleLimit))

	s.mcp.AddTool(mcp.NewTool("newton_root",
		mcp.WithDescription("Find a root of an expression by Newton's method from an initial guess."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Function whose root to find")),
		mcp.WithNumber("guess", mcp.Required(), mcp.Description("Initial iterate")),
		mcp.WithNumber("max_iterations", mcp.Description("Iteration cap, default 100, at most 10000")),
		mcp.WithNumber("tolerance", mcp.Description("Step tolerance, default 1e-7")),
		mcp.WithString("variable", mcp.Description("Variable, default x")),
	), s.wrap("newton_root", handleNewtonRoot))
}

func handleLimit(_ context.Context, req mcp.CallToolRequest) (any, error) {
	f, err := fnArg(req, "expression")
	if err != nil {
		return nil, err
	}
	point, err := req.RequireFloat("point")
	if err != nil {
		return nil, calcerr.InvalidParam("point", "%v", err)
	}
	dir := calculus.Direction(req.GetString("direction", string(calculus.FromBoth)))
	tol := req.GetFloat("tolerance", calculus.DefaultLimitTolerance)
	v, err := calculus.Limit(f, point, dir, tol)
	if errors.Is(err, calculus.ErrNoLimit) {
		// A non-existent limit is an answer, not a failure.
		return map[string]any{
			"value":     "limit does not exist",
			"direction": string(dir),
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return map[string]any{"value": v, "direction": string(dir)}, nil
}

func handleNewtonRoot(_ context.Context, req mcp.CallToolRequest) (any, error) {
	e, err := exprArg(req, "expression")
	if err != nil {
		return nil, err
	}
	guess, err := req.RequireFloat("guess")
	if err != nil {
		return nil, calcerr.InvalidParam("guess", "%v", err)
	}
	variable := variableArg(req)
	f := func(x float64) (float64, error) {
		return e.Eval(expr.Binding{variable: x})
	}

	// Prefer the exact tangent; fall back to finite differences when the
	// rule table cannot differentiate the expression.
	var df calculus.Func
	if d, diffErr := e.Diff(variable); diffErr == nil {
		df = func(x float64) (float64, error) {
			return d.Eval(expr.Binding{variable: x})
		}
	}

	maxIter, err := budget.Clamp(
		req.GetFloat("max_iterations", calculus.DefaultMaxIterations),
		budget.MaxNewtonIterations)
	if err != nil {
		return nil, err
	}

	res, err := calculus.NewtonRoot(f, df,
		guess,
		maxIter,
		req.GetFloat("tolerance", calculus.DefaultStepTolerance))
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"root":       res.Root,
		"converged":  res.Converged,
		"iterations": res.Iterations,
		"status":     string(res.Status),
	}, nil
}
