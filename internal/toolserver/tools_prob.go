package toolserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"calctools/calcerr"
	"calctools/prob"
)

func (s *Server) registerProbabilityTools() {
	s.mcp.AddTool(mcp.NewTool("binomial_pmf",
		mcp.WithDescription("Binomial probability mass and cumulative probability at k."),
		mcp.WithNumber("n", mcp.Required(), mcp.Description("Trial count")),
		mcp.WithNumber("p", mcp.Required(), mcp.Description("Success probability in [0, 1]")),
		mcp.WithNumber("k", mcp.Required(), mcp.Description("Success count")),
	), s.wrap("binomial_pmf", handleBinomialPMF))

	s.mcp.AddTool(mcp.NewTool("poisson_pmf",
		mcp.WithDescription("Poisson probability mass and cumulative probability at k."),
		mcp.WithNumber("lambda", mcp.Required(), mcp.Description("Event rate, positive")),
		mcp.WithNumber("k", mcp.Required(), mcp.Description("Event count")),
	), s.wrap("poisson_pmf", handlePoissonPMF))
}

func handleBinomialPMF(_ context.Context, req mcp.CallToolRequest) (any, error) {
	n, err := req.RequireInt("n")
	if err != nil {
		return nil, calcerr.InvalidParam("n", "%v", err)
	}
	p, err := req.RequireFloat("p")
	if err != nil {
		return nil, calcerr.InvalidParam("p", "%v", err)
	}
	k, err := req.RequireInt("k")
	if err != nil {
		return nil, calcerr.InvalidParam("k", "%v", err)
	}
	pmf, err := prob.BinomialPMF(n, p, k)
	if err != nil {
		return nil, err
	}
	cdf, err := prob.BinomialCDF(n, p, k)
	if err != nil {
		return nil, err
	}
	return map[string]any{"pmf": pmf, "cdf": cdf}, nil
}

func handlePoissonPMF(_ context.Context, req mcp.CallToolRequest) (any, error) {
	lambda, err := req.RequireFloat("lambda")
	if err != nil {
		return nil, calcerr.InvalidParam("lambda", "%v", err)
	}
	k, err := req.RequireInt("k")
	if err != nil {
		return nil, calcerr.InvalidParam("k", "%v", err)
	}
	pmf, err := prob.PoissonPMF(lambda, k)
	if err != nil {
		return nil, err
	}
	cdf, err := prob.PoissonCDF(lambda, k)
	if err != nil {
		return nil, err
	}
	return map[string]any{"pmf": pmf, "cdf": cdf}, nil
}
