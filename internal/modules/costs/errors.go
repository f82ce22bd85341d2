package costs

import "errors"

var (
	// ErrInvalidBirthsCount is returned for a negative or non-finite births count.
	ErrInvalidBirthsCount = errors.New("invalid births count")
	// ErrEmptyRepartition marks a repartition with nothing to split because
	// every disorder group was disabled.
	ErrEmptyRepartition = errors.New("empty repartition: every disorder group is disabled")
	// ErrInvalidSweep is returned for a sweep that cannot produce a grid.
	ErrInvalidSweep = errors.New("invalid sensitivity sweep")
	// ErrNonFiniteResult is returned when a computation overflows or yields NaN.
	ErrNonFiniteResult = errors.New("non-finite cost result")
)
