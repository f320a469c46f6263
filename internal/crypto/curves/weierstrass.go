package curves

import (
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"

	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

// Weierstrass is the group of a short-Weierstrass curve fixed at
// construction. Nothing mutates it afterwards, so it is safe for concurrent
// use.
type Weierstrass struct {
	params      *Params
	curveParams *elliptic.CurveParams
	f           *field.Field
	a, b        *saferith.Nat
	aIsZero     bool
	zeroOnCurve bool
	g           AffinePoint
}

// New validates params and returns the curve group they describe.
func New(params *Params) (*Weierstrass, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	f, err := field.New(params.P)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidParameters, params.Name, err)
	}

	own := params.Clone()
	c := &Weierstrass{
		params:      own,
		curveParams: own.CurveParams(),
		f:           f,
		a:           f.FromBig(own.A),
		b:           f.FromBig(own.B),
		aIsZero:     own.A.Sign() == 0,
		zeroOnCurve: own.B.Sign() == 0,
		g:           NewAffinePoint(own.Gx, own.Gy),
	}

	if !c.FastMultiply(c.g, own.N).Inf {
		return nil, fmt.Errorf("%w: %s: generator does not have order N", ErrInvalidParameters, own.Name)
	}
	return c, nil
}

// MustNew is like New but panics on invalid parameters.
func MustNew(params *Params) *Weierstrass {
	c, err := New(params)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Weierstrass) Name() string {
	return c.params.Name
}

// Domain returns a copy of the curve's domain parameters.
func (c *Weierstrass) Domain() *Params {
	return c.params.Clone()
}

// Order returns a copy of N.
func (c *Weierstrass) Order() *big.Int {
	return new(big.Int).Set(c.params.N)
}

// Generator returns a copy of G.
func (c *Weierstrass) Generator() AffinePoint {
	return NewAffinePoint(c.g.X, c.g.Y)
}

// Inverse returns a^-1 mod P.
func (c *Weierstrass) Inverse(a *big.Int) (*big.Int, error) {
	return field.Inverse(a, c.params.P)
}

// IsOnCurve reports whether a is infinity or a canonical point satisfying
// the curve equation.
func (c *Weierstrass) IsOnCurve(a AffinePoint) bool {
	if a.Inf {
		return true
	}
	if !c.f.Contains(a.X) || !c.f.Contains(a.Y) {
		return false
	}
	f := c.f
	x, y := f.FromBig(a.X), f.FromBig(a.Y)
	rhs := f.Add(f.Mul(f.Square(x), x), c.b)
	if !c.aIsZero {
		rhs = f.Add(rhs, f.Mul(c.a, x))
	}
	return f.Equal(f.Square(y), rhs)
}

// Negate returns -a = (x, P - y).
func (c *Weierstrass) Negate(a AffinePoint) AffinePoint {
	if a.Inf {
		return Infinity()
	}
	return AffinePoint{X: new(big.Int).Set(a.X), Y: c.f.ToBig(c.f.Neg(c.f.FromBig(a.Y)))}
}

// FastMultiply returns n*a. Curve membership of a is the caller's
// responsibility.
func (c *Weierstrass) FastMultiply(a AffinePoint, n *big.Int) AffinePoint {
	return c.FromJacobian(c.JacobianMultiply(c.ToJacobian(a), n))
}

// FastAdd returns a + b.
func (c *Weierstrass) FastAdd(a, b AffinePoint) AffinePoint {
	return c.FromJacobian(c.JacobianAdd(c.ToJacobian(a), c.ToJacobian(b)))
}

// BaseMultiply returns k*G.
func (c *Weierstrass) BaseMultiply(k *big.Int) AffinePoint {
	return c.FastMultiply(c.g, k)
}

// CombinedMultiply returns n*a + m*b with a single final inversion.
func (c *Weierstrass) CombinedMultiply(a AffinePoint, n *big.Int, b AffinePoint, m *big.Int) AffinePoint {
	return c.FromJacobian(c.JacobianCombinedMultiply(c.ToJacobian(a), n, c.ToJacobian(b), m))
}

// The methods below implement Curve. On that surface points travel as bare
// (x, y) pairs and (0, 0) stands for infinity, as in crypto/elliptic. When
// B = 0 the pair (0, 0) is also a finite point of the curve, so the point
// methods panic with ErrAmbiguousInfinity; use the AffinePoint methods there.

func (c *Weierstrass) Params() *elliptic.CurveParams {
	return c.curveParams
}

// NewScalar returns a uniformly random scalar in [0, N).
func (c *Weierstrass) NewScalar() (*big.Int, error) {
	return rand.Int(rand.Reader, c.params.N)
}

func (c *Weierstrass) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	c.requireUnambiguousInfinity()
	return toXY(c.BaseMultiply(k))
}

func (c *Weierstrass) ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int) {
	c.requireUnambiguousInfinity()
	return toXY(c.FastMultiply(fromXY(Px, Py), k))
}

func (c *Weierstrass) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	c.requireUnambiguousInfinity()
	return toXY(c.FastAdd(fromXY(x1, y1), fromXY(x2, y2)))
}

func (c *Weierstrass) requireUnambiguousInfinity() {
	if c.zeroOnCurve {
		panic(fmt.Errorf("curves: %s: %w", c.params.Name, ErrAmbiguousInfinity))
	}
}

func fromXY(x, y *big.Int) AffinePoint {
	if x.Sign() == 0 && y.Sign() == 0 {
		return Infinity()
	}
	return NewAffinePoint(x, y)
}

func toXY(p AffinePoint) (*big.Int, *big.Int) {
	if p.Inf {
		return new(big.Int), new(big.Int)
	}
	return p.X, p.Y
}
