package xpath

import (
	"errors"
	"fmt"
)

// EvalError is the single error kind raised by expression evaluation:
// unclosed brackets or quotes, a path with no step after "/", an unknown
// function, or the attribute axis applied to a non-element.
type EvalError struct {
	Msg string
}

func (e *EvalError) Error() string {
	if e.Msg == "" {
		return "xpath: evaluation error"
	}
	return "xpath: " + e.Msg
}

func (e *EvalError) Is(target error) bool {
	var ee *EvalError
	if errors.As(target, &ee) {
		return ee.Msg == "" || ee.Msg == e.Msg
	}
	return false
}

func evalErrorf(format string, args ...any) error {
	return &EvalError{Msg: fmt.Sprintf(format, args...)}
}
