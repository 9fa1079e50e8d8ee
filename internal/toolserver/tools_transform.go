package toolserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"calctools/budget"
	"calctools/calcerr"
	"calctools/expr"
	"calctools/transform"
)

func (s *Server) registerTransformTools() {
	s.mcp.AddTool(mcp.NewTool("laplace_transform",
		mcp.WithDescription("Numerically approximate the one-sided Laplace transform of an expression at a complex s."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Signal f(t)")),
		mcp.WithNumber("s_re", mcp.Required(), mcp.Description("Real part of s")),
		mcp.WithNumber("s_im", mcp.Description("Imaginary part of s, default 0")),
		mcp.WithString("variable", mcp.Description("Time variable, default t")),
	), s.wrap("laplace_transform", handleLaplace))

	s.mcp.AddTool(mcp.NewTool("fourier_transform",
		mcp.WithDescription("Numerically approximate the Fourier transform of an expression at an angular frequency."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Signal f(t)")),
		mcp.WithNumber("omega", mcp.Required(), mcp.Description("Angular frequency")),
		mcp.WithString("variable", mcp.Description("Time variable, default t")),
	), s.wrap("fourier_transform", handleFourier))

	s.mcp.AddTool(mcp.NewTool("z_transform",
		mcp.WithDescription("Truncated unilateral Z transform of a sequence expression at a complex z."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Sequence x[n] as an expression in n")),
		mcp.WithNumber("z_re", mcp.Required(), mcp.Description("Real part of z")),
		mcp.WithNumber("z_im", mcp.Description("Imaginary part of z, default 0")),
		mcp.WithNumber("limit", mcp.Description("Inclusive upper series index, default 100, capped at 10000")),
		mcp.WithString("variable", mcp.Description("Index variable, default n")),
	), s.wrap("z_transform", handleZTransform))
}

func complexResult(v complex128) map[string]any {
	return map[string]any{
		"value": transform.Format(v),
		"re":    real(v),
		"im":    imag(v),
	}
}

// signalArg builds the time-domain function, defaulting the variable to t.
func signalArg(req mcp.CallToolRequest) (func(float64) (float64, error), error) {
	e, err := exprArg(req, "expression")
	if err != nil {
		return nil, err
	}
	variable := req.GetString("variable", "t")
	return func(x float64) (float64, error) {
		return e.Eval(expr.Binding{variable: x})
	}, nil
}

func handleLaplace(_ context.Context, req mcp.CallToolRequest) (any, error) {
	f, err := signalArg(req)
	if err != nil {
		return nil, err
	}
	sRe, err := req.RequireFloat("s_re")
	if err != nil {
		return nil, calcerr.InvalidParam("s_re", "%v", err)
	}
	v, err := transform.Laplace(f, complex(sRe, req.GetFloat("s_im", 0)))
	if err != nil {
		return nil, err
	}
	return complexResult(v), nil
}

func handleFourier(_ context.Context, req mcp.CallToolRequest) (any, error) {
	f, err := signalArg(req)
	if err != nil {
		return nil, err
	}
	omega, err := req.RequireFloat("omega")
	if err != nil {
		return nil, calcerr.InvalidParam("omega", "%v", err)
	}
	v, err := transform.Fourier(f, omega)
	if err != nil {
		return nil, err
	}
	return complexResult(v), nil
}

func handleZTransform(_ context.Context, req mcp.CallToolRequest) (any, error) {
	e, err := exprArg(req, "expression")
	if err != nil {
		return nil, err
	}
	zRe, err := req.RequireFloat("z_re")
	if err != nil {
		return nil, calcerr.InvalidParam("z_re", "%v", err)
	}
	limit, err := budget.Clamp(
		req.GetFloat("limit", transform.DefaultZLimit), budget.MaxSeriesTerms)
	if err != nil {
		return nil, err
	}
	variable := req.GetString("variable", "n")
	seq := func(n int) (float64, error) {
		return e.Eval(expr.Binding{variable: float64(n)})
	}
	v, err := transform.Z(seq, complex(zRe, req.GetFloat("z_im", 0)), limit)
	if err != nil {
		return nil, err
	}
	out := complexResult(v)
	out["limit"] = limit
	return out, nil
}
