package curves

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
)

// Params holds the domain parameters of a short-Weierstrass curve
// y^2 = x^3 + A*x + B over F_P with base point G = (Gx, Gy) of order N.
type Params struct {
	Name    string
	P       *big.Int // field modulus
	A, B    *big.Int // curve coefficients, reduced mod P
	N       *big.Int // order of G
	Gx, Gy  *big.Int
	BitSize int
}

// Validate checks that P is a prime > 3, the coefficients are reduced, the
// curve is non-singular and G lies on it. The order of G is checked by New,
// which needs the group law for it.
func (p *Params) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil parameters", ErrInvalidParameters)
	}
	if p.P == nil || p.A == nil || p.B == nil || p.N == nil || p.Gx == nil || p.Gy == nil {
		return fmt.Errorf("%w: %s: missing parameter", ErrInvalidParameters, p.Name)
	}
	if p.P.Cmp(big.NewInt(3)) <= 0 || !p.P.ProbablyPrime(20) {
		return fmt.Errorf("%w: %s: modulus must be a prime greater than 3", ErrInvalidParameters, p.Name)
	}
	if !p.reduced(p.A) || !p.reduced(p.B) {
		return fmt.Errorf("%w: %s: coefficients must lie in [0, P)", ErrInvalidParameters, p.Name)
	}
	if p.discriminant().Sign() == 0 {
		return fmt.Errorf("%w: %s: curve is singular", ErrInvalidParameters, p.Name)
	}
	if p.N.Sign() <= 0 {
		return fmt.Errorf("%w: %s: order must be positive", ErrInvalidParameters, p.Name)
	}
	if !p.reduced(p.Gx) || !p.reduced(p.Gy) || !p.onCurve(p.Gx, p.Gy) {
		return fmt.Errorf("%w: %s: generator is not on the curve", ErrInvalidParameters, p.Name)
	}
	return nil
}

// Clone returns a deep copy.
func (p *Params) Clone() *Params {
	return &Params{
		Name:    p.Name,
		P:       new(big.Int).Set(p.P),
		A:       new(big.Int).Set(p.A),
		B:       new(big.Int).Set(p.B),
		N:       new(big.Int).Set(p.N),
		Gx:      new(big.Int).Set(p.Gx),
		Gy:      new(big.Int).Set(p.Gy),
		BitSize: p.BitSize,
	}
}

// CurveParams converts to the crypto/elliptic container. The stdlib methods
// on CurveParams assume A = -3, so the result is only meant as a carrier of
// P, N, B, G and the bit size.
func (p *Params) CurveParams() *elliptic.CurveParams {
	bits := p.BitSize
	if bits == 0 {
		bits = p.P.BitLen()
	}
	return &elliptic.CurveParams{
		P:       new(big.Int).Set(p.P),
		N:       new(big.Int).Set(p.N),
		B:       new(big.Int).Set(p.B),
		Gx:      new(big.Int).Set(p.Gx),
		Gy:      new(big.Int).Set(p.Gy),
		BitSize: bits,
		Name:    p.Name,
	}
}

func (p *Params) reduced(v *big.Int) bool {
	return v.Sign() >= 0 && v.Cmp(p.P) < 0
}

// discriminant returns 4A^3 + 27B^2 mod P; the curve is singular iff it is 0.
func (p *Params) discriminant() *big.Int {
	a3 := new(big.Int).Exp(p.A, big.NewInt(3), p.P)
	a3.Mul(a3, big.NewInt(4))
	b2 := new(big.Int).Mul(p.B, p.B)
	b2.Mul(b2, big.NewInt(27))
	d := a3.Add(a3, b2)
	return d.Mod(d, p.P)
}

// polynomial returns x^3 + A*x + B mod P.
func (p *Params) polynomial(x *big.Int) *big.Int {
	x3 := new(big.Int).Mul(x, x)
	x3.Mul(x3, x)
	x3.Add(x3, new(big.Int).Mul(p.A, x))
	x3.Add(x3, p.B)
	return x3.Mod(x3, p.P)
}

func (p *Params) onCurve(x, y *big.Int) bool {
	y2 := new(big.Int).Mul(y, y)
	y2.Mod(y2, p.P)
	return p.polynomial(x).Cmp(y2) == 0
}
