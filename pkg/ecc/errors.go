package ecc

import (
	"errors"
	"fmt"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

// Errors returned by the ecc package. They can be matched with errors.Is.
var (
	ErrNotInvertible     = field.ErrNotInvertible
	ErrInvalidModulus    = field.ErrInvalidModulus
	ErrInvalidParameters = curves.ErrInvalidParameters
	ErrUnknownCurve      = curves.ErrUnknownCurve
	ErrNilScalar         = curves.ErrNilScalar
	ErrNotOnCurve        = errors.New("point is not on the curve")
)

// DomainError is the failure of a field operation on a value it is not
// defined for, such as inverting zero.
type DomainError = field.DomainError

// PointError reports a point rejected at the API boundary.
type PointError struct {
	Curve string
	Point AffinePoint
	Err   error
}

func (e *PointError) Error() string {
	return fmt.Sprintf("%s: point %s: %v", e.Curve, e.Point, e.Err)
}

func (e *PointError) Unwrap() error {
	return e.Err
}
