package geometry

import "errors"

var (
	// ErrInvalidMode is returned for a mode name other than aspectFill or aspectFit.
	ErrInvalidMode = errors.New("invalid mode")
	// ErrInvalidSize is returned when an input size is not strictly positive.
	ErrInvalidSize = errors.New("invalid size")
	// ErrUnsatisfiableGeometry is returned when the paper leaves no room for
	// padding around the photograph at the chosen density.
	ErrUnsatisfiableGeometry = errors.New("unsatisfiable geometry")
)
