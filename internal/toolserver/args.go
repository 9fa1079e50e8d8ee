package toolserver

import (
	"github.com/mark3labs/mcp-go/mcp"

	"calctools/calcerr"
	"calctools/calculus"
	"calctools/expr"
)

// exprArg parses the named argument as a formula.
func exprArg(req mcp.CallToolRequest, name string) (expr.Expr, error) {
	text, err := req.RequireString(name)
	if err != nil {
		return nil, calcerr.InvalidParam(name, "%v", err)
	}
	return expr.Parse(text)
}

// variableArg returns the independent-variable name, defaulting to x.
func variableArg(req mcp.CallToolRequest) string {
	return req.GetString("variable", "x")
}

// fnArg turns an expression argument into a real scalar function of the
// independent variable.
func fnArg(req mcp.CallToolRequest, name string) (calculus.Func, error) {
	e, err := exprArg(req, name)
	if err != nil {
		return nil, err
	}
	variable := variableArg(req)
	return func(x float64) (float64, error) {
		return e.Eval(expr.Binding{variable: x})
	}, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// bindingArg decodes the named argument as an object of variable bindings.
// A missing argument is an empty binding.
func bindingArg(req mcp.CallToolRequest, name string) (expr.Binding, error) {
	raw, ok := req.GetArguments()[name]
	if !ok || raw == nil {
		return expr.Binding{}, nil
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, calcerr.InvalidParam(name, "must be an object of numbers")
	}
	b := make(expr.Binding, len(obj))
	for k, v := range obj {
		f, ok := toFloat(v)
		if !ok {
			return nil, calcerr.InvalidParam(name, "%s must be a number", k)
		}
		b[k] = f
	}
	return b, nil
}

// complexBindingArg is bindingArg over the complex numbers: each value is
// either a number or an object with re and im fields. The imaginary unit
// is pre-bound as i unless the caller overrides it.
func complexBindingArg(req mcp.CallToolRequest, name string) (expr.ComplexBinding, error) {
	b := expr.ComplexBinding{"i": complex(0, 1)}
	raw, ok := req.GetArguments()[name]
	if !ok || raw == nil {
		return b, nil
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, calcerr.InvalidParam(name, "must be an object")
	}
	for k, v := range obj {
		if f, ok := toFloat(v); ok {
			b[k] = complex(f, 0)
			continue
		}
		parts, ok := v.(map[string]any)
		if !ok {
			return nil, calcerr.InvalidParam(name,
				"%s must be a number or {re, im} object", k)
		}
		re, _ := toFloat(parts["re"])
		im, _ := toFloat(parts["im"])
		b[k] = complex(re, im)
	}
	return b, nil
}

// floatsArg decodes the named argument as a non-empty array of numbers.
func floatsArg(req mcp.CallToolRequest, name string) ([]float64, error) {
	raw, ok := req.GetArguments()[name]
	if !ok {
		return nil, calcerr.InvalidParam(name, "required")
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, calcerr.InvalidParam(name, "must be an array of numbers")
	}
	out := make([]float64, 0, len(items))
	for i, v := range items {
		f, ok := toFloat(v)
		if !ok {
			return nil, calcerr.InvalidParam(name, "element %d must be a number", i)
		}
		out = append(out, f)
	}
	return out, nil
}

// matrixArg decodes the named argument as an array of number rows.
// Shape checks belong to the linalg layer; this only enforces types.
func matrixArg(req mcp.CallToolRequest, name string) ([][]float64, error) {
	raw, ok := req.GetArguments()[name]
	if !ok {
		return nil, calcerr.InvalidParam(name, "required")
	}
	rows, ok := raw.([]any)
	if !ok {
		return nil, calcerr.InvalidParam(name, "must be an array of rows")
	}
	out := make([][]float64, 0, len(rows))
	for i, rawRow := range rows {
		cells, ok := rawRow.([]any)
		if !ok {
			return nil, calcerr.InvalidParam(name, "row %d must be an array", i)
		}
		row := make([]float64, 0, len(cells))
		for j, v := range cells {
			f, ok := toFloat(v)
			if !ok {
				return nil, calcerr.InvalidParam(name,
					"entry (%d, %d) must be a number", i, j)
			}
			row = append(row, f)
		}
		out = append(out, row)
	}
	return out, nil
}
