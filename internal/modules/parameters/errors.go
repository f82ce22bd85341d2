package parameters

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownParameter is returned when a name is not present in the catalog.
	ErrUnknownParameter = errors.New("unknown parameter")
	// ErrParameterCountMismatch is returned when an override vector does not
	// cover the catalog exactly.
	ErrParameterCountMismatch = errors.New("parameter count mismatch")
	// ErrDuplicateParameter is returned when a catalog declares a name twice.
	ErrDuplicateParameter = errors.New("duplicate parameter")
	// ErrInvalidParameterValue is returned for a NaN or infinite value.
	ErrInvalidParameterValue = errors.New("invalid parameter value")
)

// UnknownParameterError names the parameter that could not be resolved.
type UnknownParameterError struct {
	Name string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter %q", e.Name)
}

// Is makes errors.Is(err, ErrUnknownParameter) match.
func (e *UnknownParameterError) Is(target error) bool {
	return target == ErrUnknownParameter
}

// CountMismatchError reports the catalog size against the supplied vector length.
type CountMismatchError struct {
	Expected int
	Got      int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("parameter count mismatch: expected %d values, got %d", e.Expected, e.Got)
}

// Is makes errors.Is(err, ErrParameterCountMismatch) match.
func (e *CountMismatchError) Is(target error) bool {
	return target == ErrParameterCountMismatch
}

// InvalidValueError names the parameter that received a non-finite value.
type InvalidValueError struct {
	Name  string
	Value float64
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %v for parameter %q: must be finite", e.Value, e.Name)
}

// Is makes errors.Is(err, ErrInvalidParameterValue) match.
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidParameterValue
}
