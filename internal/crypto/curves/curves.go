package curves

import (
	"crypto/elliptic"
	"crypto/rand"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Curve is the coordinate-pair surface shared by this package's Weierstrass
// group and the library-backed reference curves. Points are (x, y) pairs and
// (0, 0) encodes the point at infinity. That encoding collides with a real
// point when B = 0, so a Weierstrass group with B = 0 panics with
// ErrAmbiguousInfinity on the point methods.
type Curve interface {
	// Params returns the curve parameters (Order, etc.)
	Params() *elliptic.CurveParams

	// NewScalar generates a random scalar in [0, N)
	NewScalar() (*big.Int, error)

	// ScalarBaseMult computes k * G
	ScalarBaseMult(k *big.Int) (*big.Int, *big.Int)

	// ScalarMult computes k * P
	ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int)

	// Add combines two points
	Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int)
}

var (
	_ Curve = (*Weierstrass)(nil)
	_ Curve = (*Secp256k1)(nil)
	_ Curve = (*BN254)(nil)
)

// Secp256k1 is decred's constant-time secp256k1 implementation behind the
// Curve interface. It serves as a reference for the generic arithmetic.
type Secp256k1 struct{}

func (c *Secp256k1) Params() *elliptic.CurveParams {
	return secp256k1.S256().Params()
}

func (c *Secp256k1) NewScalar() (*big.Int, error) {
	return rand.Int(rand.Reader, c.Params().N)
}

func (c *Secp256k1) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	var s secp256k1.ModNScalar
	s.SetByteSlice(reduce(k, c.Params().N).Bytes())

	var r secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&s, &r)
	return jacobianToXY(&r)
}

func (c *Secp256k1) ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int) {
	if Px.Sign() == 0 && Py.Sign() == 0 {
		return new(big.Int), new(big.Int)
	}

	var s secp256k1.ModNScalar
	s.SetByteSlice(reduce(k, c.Params().N).Bytes())

	var p, r secp256k1.JacobianPoint
	p.X.SetByteSlice(Px.Bytes())
	p.Y.SetByteSlice(Py.Bytes())
	p.Z.SetInt(1)
	secp256k1.ScalarMultNonConst(&s, &p, &r)
	return jacobianToXY(&r)
}

func (c *Secp256k1) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	return secp256k1.S256().Add(x1, y1, x2, y2)
}

// NewSecp256k1 returns a new instance of the Secp256k1 curve wrapper
func NewSecp256k1() Curve {
	return &Secp256k1{}
}

func jacobianToXY(p *secp256k1.JacobianPoint) (*big.Int, *big.Int) {
	if (p.X.IsZero() && p.Y.IsZero()) || p.Z.IsZero() {
		return new(big.Int), new(big.Int)
	}
	p.ToAffine()
	x := p.X.Bytes()
	y := p.Y.Bytes()
	return new(big.Int).SetBytes(x[:]), new(big.Int).SetBytes(y[:])
}

// reduce maps k into [0, n), so negative scalars become n - |k| mod n.
func reduce(k, n *big.Int) *big.Int {
	return new(big.Int).Mod(k, n)
}
