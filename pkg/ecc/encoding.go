package ecc

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrMalformedInteger is returned when an integer string cannot be parsed.
var ErrMalformedInteger = errors.New("malformed integer")

// ParseInt parses a signed decimal or 0x-prefixed hexadecimal integer.
func ParseInt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")

	base := 10
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		base = 16
		digits = digits[2:]
	}
	if digits == "" || strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		return nil, fmt.Errorf("%w: %q", ErrMalformedInteger, s)
	}

	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedInteger, s)
	}
	if neg {
		v.Neg(v)
	}
	return v, nil
}

// ParsePoint builds an affine point from coordinate strings. The point at
// infinity is written "inf" for one coordinate with the other empty or also
// "inf", or with both coordinates empty.
func ParsePoint(x, y string) (AffinePoint, error) {
	xBlank, yBlank := isBlank(x), isBlank(y)
	switch {
	case isInfinity(x) && (yBlank || isInfinity(y)),
		isInfinity(y) && xBlank,
		xBlank && yBlank:
		return Infinity(), nil
	case isInfinity(x):
		return AffinePoint{}, fmt.Errorf("y: %w: %q given with infinite x", ErrMalformedInteger, y)
	case isInfinity(y):
		return AffinePoint{}, fmt.Errorf("x: %w: %q given with infinite y", ErrMalformedInteger, x)
	}
	px, err := ParseInt(x)
	if err != nil {
		return AffinePoint{}, fmt.Errorf("x: %w", err)
	}
	py, err := ParseInt(y)
	if err != nil {
		return AffinePoint{}, fmt.Errorf("y: %w", err)
	}
	return AffinePoint{X: px, Y: py}, nil
}

func isInfinity(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "inf")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// PointJSON is the wire form of an affine point. Coordinates are decimal
// strings so that JavaScript hosts do not lose precision.
type PointJSON struct {
	X        string `json:"x,omitempty"`
	Y        string `json:"y,omitempty"`
	Infinity bool   `json:"infinity"`
}

// EncodePoint converts p to its wire form.
func EncodePoint(p AffinePoint) PointJSON {
	if p.Inf {
		return PointJSON{Infinity: true}
	}
	return PointJSON{X: p.X.String(), Y: p.Y.String()}
}
