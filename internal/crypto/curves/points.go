package curves

import (
	"fmt"
	"math/big"
)

// AffinePoint is a curve point (X, Y), or the point at infinity when Inf is
// set, in which case X and Y are ignored.
type AffinePoint struct {
	X, Y *big.Int
	Inf  bool
}

// Infinity returns the group identity.
func Infinity() AffinePoint {
	return AffinePoint{Inf: true}
}

// NewAffinePoint copies x and y into a finite point. It does not check curve
// membership; see (*Weierstrass).IsOnCurve.
func NewAffinePoint(x, y *big.Int) AffinePoint {
	return AffinePoint{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

func (p AffinePoint) IsInfinity() bool {
	return p.Inf
}

// Equal compares canonical affine coordinates.
func (p AffinePoint) Equal(q AffinePoint) bool {
	if p.Inf || q.Inf {
		return p.Inf == q.Inf
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

func (p AffinePoint) String() string {
	if p.Inf {
		return "O"
	}
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// JacobianPoint represents the affine point (X/Z^2, Y/Z^3). Z = 0 is the
// point at infinity. Many triples map to the same affine point, so two
// JacobianPoints must be compared with (*Weierstrass).JacobianEqual.
type JacobianPoint struct {
	X, Y, Z *big.Int
}

// JacobianInfinity returns the canonical infinity triple (1, 1, 0).
func JacobianInfinity() JacobianPoint {
	return JacobianPoint{X: big.NewInt(1), Y: big.NewInt(1), Z: new(big.Int)}
}

func (p JacobianPoint) String() string {
	return fmt.Sprintf("(%s : %s : %s)", p.X, p.Y, p.Z)
}
