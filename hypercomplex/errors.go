package hypercomplex

import "errors"

// Sentinel errors for structural misuse. Numeric outcomes (zero products,
// tiny norms) are never errors; they are data carried by the callers.
var (
	// ErrDimensionMismatch reports operands of different lengths.
	ErrDimensionMismatch = errors.New("hypercomplex: dimension mismatch")

	// ErrIndexOutOfRange reports a basis index outside [0, dim).
	ErrIndexOutOfRange = errors.New("hypercomplex: basis index out of range")

	// ErrUnsupportedDimension reports a dimension that is not a power of two >= 1.
	ErrUnsupportedDimension = errors.New("hypercomplex: dimension must be a power of two")

	// ErrZeroNorm reports an attempt to invert an element of (near-)zero norm.
	// For sedenions this is the signature of a zero divisor.
	ErrZeroNorm = errors.New("hypercomplex: cannot invert element with zero norm")
)
