package toolserver

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"calctools/calcerr"
	"calctools/calculus"
	"calctools/expr"
	"calctools/transform"
)

func (s *Server) registerExpressionTools() {
	s.mcp.AddTool(mcp.NewTool("evaluate",
		mcp.WithDescription("Evaluate an expression against variable bindings, over the reals or the complex numbers."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Formula, e.g. sin(x)^2 + 1")),
		mcp.WithObject("variables", mcp.Description("Variable bindings; complex values as {re, im} objects")),
		mcp.WithBoolean("complex", mcp.Description("Evaluate over the complex numbers with i pre-bound")),
	), s.wrap("evaluate", handleEvaluate))

	s.mcp.AddTool(mcp.NewTool("differentiate",
		mcp.WithDescription("Differentiate an expression symbolically."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Formula to differentiate")),
		mcp.WithString("variable", mcp.Description("Differentiation variable, default x")),
	), s.wrap("differentiate", handleDifferentiate))

	s.mcp.AddTool(mcp.NewTool("derivative_at",
		mcp.WithDescription("Derivative of an expression at a point; symbolic when possible, central differences otherwise."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Formula to differentiate")),
		mcp.WithNumber("point", mcp.Required(), mcp.Description("Evaluation point")),
		mcp.WithString("variable", mcp.Description("Differentiation variable, default x")),
	), s.wrap("derivative_at", handleDerivativeAt))

	s.mcp.AddTool(mcp.NewTool("antiderivative",
		mcp.WithDescription("Antiderivative of an expression from the symbolic rule table, without the integration constant."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Formula to integrate")),
		mcp.WithString("variable", mcp.Description("Integration variable, default x")),
	), s.wrap("antiderivative", handleAntiderivative))

	s.mcp.AddTool(mcp.NewTool("integrate_definite",
		mcp.WithDescription("Definite integral; exact via the antiderivative table when possible, Gauss-Legendre quadrature otherwise."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Integrand")),
		mcp.WithNumber("lower", mcp.Required(), mcp.Description("Lower bound")),
		mcp.WithNumber("upper", mcp.Required(), mcp.Description("Upper bound")),
		mcp.WithString("variable", mcp.Description("Integration variable, default x")),
	), s.wrap("integrate_definite", handleIntegrateDefinite))
}

func handleEvaluate(_ context.Context, req mcp.CallToolRequest) (any, error) {
	e, err := exprArg(req, "expression")
	if err != nil {
		return nil, err
	}
	if req.GetBool("complex", false) {
		binding, err := complexBindingArg(req, "variables")
		if err != nil {
			return nil, err
		}
		v, err := e.EvalComplex(binding)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"value": transform.Format(v),
			"re":    real(v),
			"im":    imag(v),
		}, nil
	}
	binding, err := bindingArg(req, "variables")
	if err != nil {
		return nil, err
	}
	v, err := e.Eval(binding)
	if err != nil {
		return nil, err
	}
	return map[string]any{"value": v}, nil
}

func handleDifferentiate(_ context.Context, req mcp.CallToolRequest) (any, error) {
	e, err := exprArg(req, "expression")
	if err != nil {
		return nil, err
	}
	variable := variableArg(req)
	d, err := e.Diff(variable)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"derivative": d.String(),
		"variable":   variable,
	}, nil
}

func handleDerivativeAt(_ context.Context, req mcp.CallToolRequest) (any, error) {
	e, err := exprArg(req, "expression")
	if err != nil {
		return nil, err
	}
	point, err := req.RequireFloat("point")
	if err != nil {
		return nil, calcerr.InvalidParam("point", "%v", err)
	}
	variable := variableArg(req)

	d, err := e.Diff(variable)
	if err == nil {
		v, evalErr := d.Eval(expr.Binding{variable: point})
		if evalErr != nil {
			return nil, evalErr
		}
		return map[string]any{"value": v, "method": "symbolic"}, nil
	}
	var unsupported *calcerr.UnsupportedExpressionError
	if !errors.As(err, &unsupported) {
		return nil, err
	}
	f := func(x float64) (float64, error) {
		return e.Eval(expr.Binding{variable: x})
	}
	v, err := calculus.DerivativeAt(f, point)
	if err != nil {
		return nil, err
	}
	return map[string]any{"value": v, "method": "finite_difference"}, nil
}

func handleAntiderivative(_ context.Context, req mcp.CallToolRequest) (any, error) {
	e, err := exprArg(req, "expression")
	if err != nil {
		return nil, err
	}
	variable := variableArg(req)
	F, err := expr.Antiderivative(e, variable)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"antiderivative": F.String(),
		"variable":       variable,
	}, nil
}

func handleIntegrateDefinite(_ context.Context, req mcp.CallToolRequest) (any, error) {
	e, err := exprArg(req, "expression")
	if err != nil {
		return nil, err
	}
	lower, err := req.RequireFloat("lower")
	if err != nil {
		return nil, calcerr.InvalidParam("lower", "%v", err)
	}
	upper, err := req.RequireFloat("upper")
	if err != nil {
		return nil, calcerr.InvalidParam("upper", "%v", err)
	}
	v, err := calculus.DefiniteIntegral(e, variableArg(req), lower, upper)
	if err != nil {
		return nil, err
	}
	return map[string]any{"value": v}, nil
}
