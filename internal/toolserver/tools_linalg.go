package toolserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"calctools/linalg"
	"calctools/transform"
)

func (s *Server) registerLinalgTools() {
	s.mcp.AddTool(mcp.NewTool("matrix_multiply",
		mcp.WithDescription("Product of two matrices supplied as arrays of number rows."),
		mcp.WithArray("a", mcp.Required(), mcp.Description("Left matrix, rows of numbers")),
		mcp.WithArray("b", mcp.Required(), mcp.Description("Right matrix, rows of numbers")),
	), s.wrap("matrix_multiply", handleMatrixMultiply))

	s.mcp.AddTool(mcp.NewTool("matrix_inverse",
		mcp.WithDescription("Inverse of a square matrix."),
		mcp.WithArray("matrix", mcp.Required(), mcp.Description("Square matrix, rows of numbers")),
	), s.wrap("matrix_inverse", handleMatrixInverse))

	s.mcp.AddTool(mcp.NewTool("matrix_determinant",
		mcp.WithDescription("Determinant of a square matrix."),
		mcp.WithArray("matrix", mcp.Required(), mcp.Description("Square matrix, rows of numbers")),
	), s.wrap("matrix_determinant", handleMatrixDeterminant))

	s.mcp.AddTool(mcp.NewTool("matrix_eigenvalues",
		mcp.WithDescription("Eigenvalues of a square matrix, possibly complex."),
		mcp.WithArray("matrix", mcp.Required(), mcp.Description("Square matrix, rows of numbers")),
	), s.wrap("matrix_eigenvalues", handleMatrixEigenvalues))
}

func handleMatrixMultiply(_ context.Context, req mcp.CallToolRequest) (any, error) {
	a, err := matrixArg(req, "a")
	if err != nil {
		return nil, err
	}
	b, err := matrixArg(req, "b")
	if err != nil {
		return nil, err
	}
	prod, err := linalg.Multiply(a, b)
	if err != nil {
		return nil, err
	}
	return map[string]any{"result": prod}, nil
}

func handleMatrixInverse(_ context.Context, req mcp.CallToolRequest) (any, error) {
	m, err := matrixArg(req, "matrix")
	if err != nil {
		return nil, err
	}
	inv, err := linalg.Inverse(m)
	if err != nil {
		return nil, err
	}
	return map[string]any{"result": inv}, nil
}

func handleMatrixDeterminant(_ context.Context, req mcp.CallToolRequest) (any, error) {
	m, err := matrixArg(req, "matrix")
	if err != nil {
		return nil, err
	}
	det, err := linalg.Determinant(m)
	if err != nil {
		return nil, err
	}
	return map[string]any{"determinant": det}, nil
}

func handleMatrixEigenvalues(_ context.Context, req mcp.CallToolRequest) (any, error) {
	m, err := matrixArg(req, "matrix")
	if err != nil {
		return nil, err
	}
	vals, err := linalg.Eigenvalues(m)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, len(vals))
	for i, v := range vals {
		out[i] = map[string]any{
			"value": transform.Format(v),
			"re":    real(v),
			"im":    imag(v),
		}
	}
	return map[string]any{"eigenvalues": out}, nil
}
