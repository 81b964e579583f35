package plot2d

import "errors"

// Errors reported by actor rebuilds. Render entry points log these and
// return zero rendered items; the caller may retry on the next frame once
// the underlying condition is fixed.
var (
	// ErrNoInput indicates the actor has no input data source attached.
	ErrNoInput = errors.New("plot2d: no input data")

	// ErrNoFieldData indicates the input has no field arrays to plot.
	ErrNoFieldData = errors.New("plot2d: input has no field data")

	// ErrInvalidVariableCount indicates the computed number of independent
	// variables is zero, negative, or past the sanity ceiling.
	ErrInvalidVariableCount = errors.New("plot2d: invalid independent variable count")

	// ErrNoLookupTable indicates a scalar bar has no lookup table attached.
	ErrNoLookupTable = errors.New("plot2d: no lookup table")
)
