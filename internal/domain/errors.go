package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a CalculationError.
type ErrorKind string

const (
	// MissingOrInvalidField means a required field is absent, non-numeric,
	// negative or outside its permitted range.
	MissingOrInvalidField ErrorKind = "missing_or_invalid_field"
	// UndefinedComputation means the inputs are structurally valid but the
	// requested figure has no finite value.
	UndefinedComputation ErrorKind = "undefined_computation"
)

var (
	ErrMissingOrInvalidField = errors.New("missing or invalid field")
	ErrUndefinedComputation  = errors.New("undefined computation")
)

// CalculationError is returned by the calculation engine for structurally
// invalid input or mathematically undefined results.
type CalculationError struct {
	Kind       ErrorKind
	Calculator CalculatorID
	Field      string
	Reason     string
	Cause      error
}

func (e *CalculationError) Error() string {
	var msg string
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s: %s", e.Calculator, e.Field, e.Reason)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Calculator, e.Reason)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *CalculationError) Unwrap() error {
	return e.Cause
}

// Is matches the sentinel for the error's kind.
func (e *CalculationError) Is(target error) bool {
	switch target {
	case ErrMissingOrInvalidField:
		return e.Kind == MissingOrInvalidField
	case ErrUndefinedComputation:
		return e.Kind == UndefinedComputation
	}
	return false
}

// InvalidField builds a MissingOrInvalidField error.
func InvalidField(calc CalculatorID, field, reason string) *CalculationError {
	return &CalculationError{Kind: MissingOrInvalidField, Calculator: calc, Field: field, Reason: reason}
}

// Undefined builds an UndefinedComputation error.
func Undefined(calc CalculatorID, field, reason string) *CalculationError {
	return &CalculationError{Kind: UndefinedComputation, Calculator: calc, Field: field, Reason: reason}
}

// AsCalculationError extracts a *CalculationError from err.
func AsCalculationError(err error) (*CalculationError, bool) {
	var ce *CalculationError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
