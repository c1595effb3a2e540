package chartist

import "errors"

var (
	// ErrEmptySeries is returned when an analysis is requested over an
	// input containing no bars.
	ErrEmptySeries = errors.New("empty series")

	// ErrInsufficientHistory is returned when the signal engine is invoked
	// before the required indicator columns have defined values at the
	// evaluation point.
	ErrInsufficientHistory = errors.New("insufficient history")

	// ErrInvalidParameter is returned for malformed indicator or strategy
	// parameters, like a non-positive period or a negative standard
	// deviation multiplier.
	ErrInvalidParameter = errors.New("invalid parameter")
)
