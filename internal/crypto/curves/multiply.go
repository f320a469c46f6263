package curves

import (
	"math/big"
)

// JacobianMultiply returns n*p by left-to-right double-and-add over the bits
// of n. Negative scalars multiply the negated point by |n|; n is never
// reduced mod the group order. No field inversion happens here.
func (c *Weierstrass) JacobianMultiply(p JacobianPoint, n *big.Int) JacobianPoint {
	switch {
	case n.Sign() == 0:
		return JacobianInfinity()
	case n.Sign() < 0:
		return c.JacobianMultiply(c.JacobianNegate(p), new(big.Int).Neg(n))
	case n.IsInt64() && n.Int64() == 1:
		return p
	}
	if c.isInfinity(p) {
		return JacobianInfinity()
	}
	return c.lower(c.multiply(c.lift(p), n))
}

func (c *Weierstrass) multiply(p jacobian, n *big.Int) jacobian {
	acc := c.infinity()
	for i := n.BitLen() - 1; i >= 0; i-- {
		acc = c.double(acc)
		if n.Bit(i) == 1 {
			acc = c.add(acc, p)
		}
	}
	return acc
}

// JacobianCombinedMultiply returns n*p + m*q, sharing one doubling chain
// between both scalars (Straus-Shamir).
func (c *Weierstrass) JacobianCombinedMultiply(p JacobianPoint, n *big.Int, q JacobianPoint, m *big.Int) JacobianPoint {
	jp, jq := c.lift(p), c.lift(q)
	if n.Sign() < 0 {
		jp, n = c.negate(jp), new(big.Int).Neg(n)
	}
	if m.Sign() < 0 {
		jq, m = c.negate(jq), new(big.Int).Neg(m)
	}

	pq := c.add(jp, jq)
	bits := max(n.BitLen(), m.BitLen())

	acc := c.infinity()
	for i := bits - 1; i >= 0; i-- {
		acc = c.double(acc)
		switch {
		case n.Bit(i) == 1 && m.Bit(i) == 1:
			acc = c.add(acc, pq)
		case n.Bit(i) == 1:
			acc = c.add(acc, jp)
		case m.Bit(i) == 1:
			acc = c.add(acc, jq)
		}
	}
	return c.lower(acc)
}
