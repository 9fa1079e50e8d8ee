package toolserver

import (
	"errors"
	"fmt"

	"calctools/calcerr"
)

// renderError prefixes a domain error with its machine-readable kind so
// callers can branch on the failure class without parsing prose.
func renderError(err error) string {
	var (
		parseErr       *calcerr.ParseError
		unboundErr     *calcerr.UnboundVariableError
		evalErr        *calcerr.EvaluationError
		unsupportedErr *calcerr.UnsupportedExpressionError
		paramErr       *calcerr.InvalidParameterError
		dataErr        *calcerr.InsufficientDataError
	)
	kind := "internal_error"
	switch {
	case errors.As(err, &parseErr):
		kind = "parse_error"
	case errors.As(err, &unboundErr):
		kind = "unbound_variable"
	case errors.As(err, &evalErr):
		kind = "evaluation_error"
	case errors.As(err, &unsupportedErr):
		kind = "unsupported_expression"
	case errors.As(err, &paramErr):
		kind = "invalid_parameter"
	case errors.As(err, &dataErr):
		kind = "insufficient_data"
	}
	return fmt.Sprintf("%s: %s", kind, err.Error())
}
