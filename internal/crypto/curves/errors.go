package curves

import "errors"

// Common errors returned by the curves package
var (
	ErrInvalidParameters = errors.New("invalid curve parameters")
	ErrUnknownCurve      = errors.New("unknown curve")
	ErrNilScalar         = errors.New("scalar cannot be nil")
	ErrAmbiguousInfinity = errors.New("(0, 0) is a curve point when B = 0")
)
