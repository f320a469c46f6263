package curves

import (
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"
)

// jacobian is the working form of a JacobianPoint: coordinates reduced into
// the field at the modulus width. Arithmetic stays in this form and only the
// exported methods convert at their edges.
type jacobian struct {
	x, y, z *saferith.Nat
}

func (c *Weierstrass) lift(p JacobianPoint) jacobian {
	return jacobian{x: c.f.FromBig(p.X), y: c.f.FromBig(p.Y), z: c.f.FromBig(p.Z)}
}

func (c *Weierstrass) lower(p jacobian) JacobianPoint {
	return JacobianPoint{X: c.f.ToBig(p.x), Y: c.f.ToBig(p.y), Z: c.f.ToBig(p.z)}
}

func (c *Weierstrass) infinity() jacobian {
	return jacobian{x: c.f.FromUint64(1), y: c.f.FromUint64(1), z: c.f.FromUint64(0)}
}

// ToJacobian lifts an affine point to (x, y, 1). Infinity maps to a triple
// with Z = 0.
func (c *Weierstrass) ToJacobian(p AffinePoint) JacobianPoint {
	if p.Inf {
		return JacobianInfinity()
	}
	return JacobianPoint{
		X: new(big.Int).Set(p.X),
		Y: new(big.Int).Set(p.Y),
		Z: big.NewInt(1),
	}
}

// FromJacobian lowers (X, Y, Z) to (X/Z^2, Y/Z^3). This is the only place the
// group arithmetic inverts a field element, and it never inverts zero.
func (c *Weierstrass) FromJacobian(p JacobianPoint) AffinePoint {
	if c.isInfinity(p) {
		return Infinity()
	}
	return c.toAffine(c.lift(p))
}

func (c *Weierstrass) toAffine(p jacobian) AffinePoint {
	f := c.f
	if f.IsZero(p.z) {
		return Infinity()
	}

	zInv, err := f.Inv(p.z)
	if err != nil {
		// Z is nonzero mod P here.
		panic(fmt.Sprintf("curves: %s: %v", c.params.Name, err))
	}
	zInv2 := f.Square(zInv)
	zInv3 := f.Mul(zInv2, zInv)

	return AffinePoint{
		X: f.ToBig(f.Mul(p.x, zInv2)),
		Y: f.ToBig(f.Mul(p.y, zInv3)),
	}
}

// JacobianDouble returns 2p. Infinity and points with Y = 0 (the tangent is
// vertical) double to infinity.
//
//	S  = 4*X*Y^2
//	M  = 3*X^2 + A*Z^4
//	X' = M^2 - 2*S
//	Y' = M*(S - X') - 8*Y^4
//	Z' = 2*Y*Z
func (c *Weierstrass) JacobianDouble(p JacobianPoint) JacobianPoint {
	if c.isInfinity(p) {
		return JacobianInfinity()
	}
	return c.lower(c.double(c.lift(p)))
}

func (c *Weierstrass) double(p jacobian) jacobian {
	f := c.f
	if f.IsZero(p.z) || f.IsZero(p.y) {
		return c.infinity()
	}

	yy := f.Square(p.y)
	s := f.MulSmall(f.Mul(p.x, yy), 4)
	m := f.MulSmall(f.Square(p.x), 3)
	if !c.aIsZero {
		zz := f.Square(p.z)
		m = f.Add(m, f.Mul(c.a, f.Square(zz)))
	}

	x3 := f.Sub(f.Square(m), f.MulSmall(s, 2))
	y3 := f.Sub(f.Mul(m, f.Sub(s, x3)), f.MulSmall(f.Square(yy), 8))
	z3 := f.MulSmall(f.Mul(p.y, p.z), 2)

	return jacobian{x: x3, y: y3, z: z3}
}

// JacobianAdd returns p + q.
//
// The general formula divides by H = U2 - U1, which vanishes exactly when
// p = q or p = -q; both cases are detected on the cross-multiplied
// coordinates before the formula is applied.
func (c *Weierstrass) JacobianAdd(p, q JacobianPoint) JacobianPoint {
	if c.isInfinity(p) {
		return q
	}
	if c.isInfinity(q) {
		return p
	}
	return c.lower(c.add(c.lift(p), c.lift(q)))
}

func (c *Weierstrass) add(p, q jacobian) jacobian {
	f := c.f
	if f.IsZero(p.z) {
		return q
	}
	if f.IsZero(q.z) {
		return p
	}

	t := c.crossTerms(p, q)
	if f.Equal(t.u1, t.u2) {
		if f.Equal(t.s1, t.s2) {
			return c.double(p)
		}
		return c.infinity()
	}

	h := f.Sub(t.u2, t.u1)
	r := f.Sub(t.s2, t.s1)
	hh := f.Square(h)
	hhh := f.Mul(h, hh)
	v := f.Mul(t.u1, hh)

	x3 := f.Sub(f.Sub(f.Square(r), hhh), f.MulSmall(v, 2))
	y3 := f.Sub(f.Mul(r, f.Sub(v, x3)), f.Mul(t.s1, hhh))
	z3 := f.Mul(h, f.Mul(p.z, q.z))

	return jacobian{x: x3, y: y3, z: z3}
}

// JacobianEqual reports whether p and q represent the same affine point.
func (c *Weierstrass) JacobianEqual(p, q JacobianPoint) bool {
	pInf, qInf := c.isInfinity(p), c.isInfinity(q)
	if pInf || qInf {
		return pInf == qInf
	}
	t := c.crossTerms(c.lift(p), c.lift(q))
	return c.f.Equal(t.u1, t.u2) && c.f.Equal(t.s1, t.s2)
}

// JacobianNegate returns -p = (X, -Y, Z).
func (c *Weierstrass) JacobianNegate(p JacobianPoint) JacobianPoint {
	if c.isInfinity(p) {
		return JacobianInfinity()
	}
	return c.lower(c.negate(c.lift(p)))
}

func (c *Weierstrass) negate(p jacobian) jacobian {
	return jacobian{x: p.x, y: c.f.Neg(p.y), z: p.z}
}

func (c *Weierstrass) isInfinity(p JacobianPoint) bool {
	return p.Z == nil || c.f.IsZero(c.f.FromBig(p.Z))
}

// commonBasis holds two points brought to a shared denominator:
// U1 = X1*Z2^2, U2 = X2*Z1^2, S1 = Y1*Z2^3, S2 = Y2*Z1^3.
type commonBasis struct {
	u1, u2, s1, s2 *saferith.Nat
}

func (c *Weierstrass) crossTerms(p, q jacobian) commonBasis {
	f := c.f
	z1z1 := f.Square(p.z)
	z2z2 := f.Square(q.z)
	return commonBasis{
		u1: f.Mul(p.x, z2z2),
		u2: f.Mul(q.x, z1z1),
		s1: f.Mul(p.y, f.Mul(q.z, z2z2)),
		s2: f.Mul(q.y, f.Mul(p.z, z1z1)),
	}
}
