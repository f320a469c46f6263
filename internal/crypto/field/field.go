package field

import (
	"math/big"

	"github.com/cronokirby/saferith"
)

var one = big.NewInt(1)

// Inverse returns a^-1 mod n, normalized into [0, n). It fails with a
// *DomainError when gcd(a, n) != 1.
//
// Odd moduli, which include every field prime, go through saferith's
// constant-time inversion. Even moduli are public values outside the curve
// arithmetic and use big.Int.ModInverse.
func Inverse(a, n *big.Int) (*big.Int, error) {
	if a == nil || n == nil || n.Sign() <= 0 {
		return nil, NewDomainError("inverse", a, n, ErrInvalidModulus)
	}
	if n.Cmp(one) == 0 {
		return nil, NewDomainError("inverse", a, n, ErrNotInvertible)
	}

	if n.Bit(0) == 0 {
		inv := new(big.Int).ModInverse(new(big.Int).Mod(a, n), n)
		if inv == nil {
			return nil, NewDomainError("inverse", a, n, ErrNotInvertible)
		}
		return inv, nil
	}

	m := saferith.ModulusFromBytes(n.Bytes())
	x := natFromBig(a, m)
	if x.EqZero() == 1 {
		return nil, NewDomainError("inverse", a, n, ErrNotInvertible)
	}

	inv := new(saferith.Nat).ModInverse(x, m)
	// ModInverse is only meaningful for units; anything else fails the check.
	if new(saferith.Nat).ModMul(inv, x, m).Big().Cmp(one) != 0 {
		return nil, NewDomainError("inverse", a, n, ErrNotInvertible)
	}
	return inv.Big(), nil
}

// natFromBig reduces a (of any sign) into [0, m) at m's width.
func natFromBig(a *big.Int, m *saferith.Modulus) *saferith.Nat {
	abs := new(big.Int).Abs(a)
	n := new(saferith.Nat).SetBig(abs, max(abs.BitLen(), m.BitLen()))
	n.Mod(n, m)
	if a.Sign() < 0 {
		n.ModNeg(n, m)
	}
	return n
}

// Field is the prime field F_p. Elements are saferith Nats sized to the
// modulus, so the running time of every operation depends only on p. Methods
// return freshly allocated values and never modify their arguments; a Field
// is safe for concurrent use.
type Field struct {
	p       *big.Int
	m       *saferith.Modulus
	pMinus2 *saferith.Nat
}

// New creates the field of integers modulo the prime p (p > 3).
func New(p *big.Int) (*Field, error) {
	if p == nil || p.Cmp(big.NewInt(3)) <= 0 || !p.ProbablyPrime(20) {
		return nil, NewDomainError("new", p, p, ErrInvalidModulus)
	}
	pMinus2 := new(big.Int).Sub(p, big.NewInt(2))
	return &Field{
		p:       new(big.Int).Set(p),
		m:       saferith.ModulusFromBytes(p.Bytes()),
		pMinus2: new(saferith.Nat).SetBig(pMinus2, p.BitLen()),
	}, nil
}

// Modulus returns a copy of p.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// FromBig converts a into a field element; negative and oversized inputs are
// reduced. A nil a is zero.
func (f *Field) FromBig(a *big.Int) *saferith.Nat {
	if a == nil {
		return f.FromUint64(0)
	}
	return natFromBig(a, f.m)
}

// FromUint64 returns k mod p.
func (f *Field) FromUint64(k uint64) *saferith.Nat {
	n := new(saferith.Nat).SetUint64(k)
	return n.Mod(n, f.m)
}

// ToBig returns a as a big.Int in [0, p).
func (f *Field) ToBig(a *saferith.Nat) *big.Int {
	return a.Big()
}

func (f *Field) Add(a, b *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).ModAdd(a, b, f.m)
}

func (f *Field) Sub(a, b *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).ModSub(a, b, f.m)
}

func (f *Field) Mul(a, b *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).ModMul(a, b, f.m)
}

func (f *Field) Square(a *saferith.Nat) *saferith.Nat {
	return f.Mul(a, a)
}

// MulSmall multiplies a by a small constant, as needed by the doubling
// formulas (2·, 3·, 4·, 8·).
func (f *Field) MulSmall(a *saferith.Nat, k uint64) *saferith.Nat {
	return f.Mul(a, f.FromUint64(k))
}

func (f *Field) Neg(a *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).ModNeg(a, f.m)
}

func (f *Field) Exp(a, e *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).Exp(a, e, f.m)
}

// Inv returns a^-1 computed as a^(p-2) mod p with saferith's constant-time
// exponentiation.
func (f *Field) Inv(a *saferith.Nat) (*saferith.Nat, error) {
	r := new(saferith.Nat).Mod(a, f.m)
	if r.EqZero() == 1 {
		return nil, NewDomainError("inv", r.Big(), f.Modulus(), ErrNotInvertible)
	}
	return f.Exp(r, f.pMinus2), nil
}

func (f *Field) IsZero(a *saferith.Nat) bool {
	return new(saferith.Nat).Mod(a, f.m).EqZero() == 1
}

// Equal reports whether a ≡ b (mod p).
func (f *Field) Equal(a, b *saferith.Nat) bool {
	return f.Sub(a, b).EqZero() == 1
}

// Contains reports whether a is a canonical field element, i.e. 0 <= a < p.
func (f *Field) Contains(a *big.Int) bool {
	return a != nil && a.Sign() >= 0 && a.Cmp(f.p) < 0
}
