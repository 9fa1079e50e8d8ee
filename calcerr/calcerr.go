// Package calcerr defines the failure taxonomy shared by every engine
// package. Each routine returns exactly one of these kinds; nothing in the
// engine logs, retries, or rethrows a bare string.
package calcerr

import (
	"errors"
	"fmt"
)

// ParseError reports malformed expression text: unbalanced parentheses,
// unknown tokens, or wrong function arity.
type ParseError struct {
	Pos int // byte offset into the source text, -1 when unknown
	Msg string
}

func (e *ParseError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Msg)
	}
	return "parse error: " + e.Msg
}

// UnboundVariableError reports evaluation of an expression whose binding is
// missing a referenced variable.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.Name)
}

// EvaluationError reports a domain violation during real-mode evaluation,
// e.g. division by zero or ln of a non-positive value.
type EvaluationError struct {
	Op     string
	Detail string
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error in %s: %s", e.Op, e.Detail)
}

// UnsupportedExpressionError reports a construct with no differentiation or
// antiderivative rule. Distinct from ParseError: the text was well formed.
type UnsupportedExpressionError struct {
	Construct string
}

func (e *UnsupportedExpressionError) Error() string {
	return "unsupported expression: " + e.Construct
}

// InvalidParameterError reports an out-of-range or unknown argument before
// any numeric work begins: non-positive price inputs, partition counts above
// the hard cap, unknown method or contract-kind selectors.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Reason)
}

// InsufficientDataError reports a sample set below the statistical minimum a
// routine needs.
type InsufficientDataError struct {
	Op   string
	Need int
	Got  int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s needs at least %d samples, got %d", e.Op, e.Need, e.Got)
}

// InvalidParam is shorthand for constructing an InvalidParameterError.
func InvalidParam(param, format string, args ...interface{}) error {
	return &InvalidParameterError{Param: param, Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidParameter reports whether err is (or wraps) an InvalidParameterError.
func IsInvalidParameter(err error) bool {
	var ipe *InvalidParameterError
	return errors.As(err, &ipe)
}

// IsUnbound reports whether err is (or wraps) an UnboundVariableError.
func IsUnbound(err error) bool {
	var uve *UnboundVariableError
	return errors.As(err, &uve)
}
