package field

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrNotInvertible  = errors.New("element is not invertible")
	ErrInvalidModulus = errors.New("invalid modulus")
)

// DomainError reports an arithmetic request outside the domain of the
// operation, e.g. inverting an element that shares a factor with the modulus.
type DomainError struct {
	Op      string
	Value   *big.Int
	Modulus *big.Int
	Err     error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("field: %s(%v, %v): %v", e.Op, e.Value, e.Modulus, e.Err)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError.
func NewDomainError(op string, value, modulus *big.Int, err error) *DomainError {
	return &DomainError{
		Op:      op,
		Value:   value,
		Modulus: modulus,
		Err:     err,
	}
}
