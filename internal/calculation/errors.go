package calculation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a precondition failure in caller-supplied values
	ErrInvalidInput = errors.New("invalid input")
	// ErrDegenerate marks inputs the formulas cannot be evaluated on (e.g. zero tenure)
	ErrDegenerate = errors.New("arithmetic degenerate")
)

// InputError reports which field was rejected and why. It unwraps to
// ErrInvalidInput or ErrDegenerate.
type InputError struct {
	Field  string
	Reason string
	Kind   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Kind, e.Field, e.Reason)
}

func (e *InputError) Unwrap() error { return e.Kind }

func invalid(field, format string, args ...any) error {
	return &InputError{Field: field, Reason: fmt.Sprintf(format, args...), Kind: ErrInvalidInput}
}

func degenerate(field, format string, args ...any) error {
	return &InputError{Field: field, Reason: fmt.Sprintf(format, args...), Kind: ErrDegenerate}
}
