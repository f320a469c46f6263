package curves

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bi(v int64) *big.Int { return big.NewInt(v) }

func pt(x, y int64) AffinePoint { return AffinePoint{X: bi(x), Y: bi(y)} }

func hexInt(t testing.TB, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok, "bad hex %q", s)
	return v
}

func tiny23(t testing.TB) *Weierstrass {
	t.Helper()
	c, err := New(Tiny23Params())
	require.NoError(t, err)
	return c
}

// tinyPoints enumerates every finite point of tiny23 by brute force.
func tinyPoints(c *Weierstrass) []AffinePoint {
	var pts []AffinePoint
	for x := int64(0); x < 23; x++ {
		for y := int64(0); y < 23; y++ {
			if p := pt(x, y); c.IsOnCurve(p) {
				pts = append(pts, p)
			}
		}
	}
	return pts
}

// modP is plain big.Int arithmetic mod P, kept apart from the field package
// so the reference law below does not share code with the formulas it checks.
type modP struct{ p, a *big.Int }

func refArith(c *Weierstrass) modP {
	d := c.Domain()
	return modP{p: d.P, a: d.A}
}

func (m modP) mod(v *big.Int) *big.Int    { return v.Mod(v, m.p) }
func (m modP) add(x, y *big.Int) *big.Int { return m.mod(new(big.Int).Add(x, y)) }
func (m modP) sub(x, y *big.Int) *big.Int { return m.mod(new(big.Int).Sub(x, y)) }
func (m modP) mul(x, y *big.Int) *big.Int { return m.mod(new(big.Int).Mul(x, y)) }
func (m modP) inv(x *big.Int) *big.Int {
	r := new(big.Int).ModInverse(m.mod(new(big.Int).Set(x)), m.p)
	if r == nil {
		panic("reference inverse of zero")
	}
	return r
}

// scale returns the triple (X*l^2, Y*l^3, Z*l), a different representative
// of the same affine point.
func scale(c *Weierstrass, p JacobianPoint, l int64) JacobianPoint {
	m := refArith(c)
	lam := bi(l)
	l2 := m.mul(lam, lam)
	return JacobianPoint{
		X: m.mul(p.X, l2),
		Y: m.mul(p.Y, m.mul(l2, lam)),
		Z: m.mul(p.Z, lam),
	}
}

// affineAdd is the textbook chord-and-tangent law, used as an independent
// reference for the Jacobian formulas.
func affineAdd(c *Weierstrass, p, q AffinePoint) AffinePoint {
	m := refArith(c)
	if p.Inf {
		return q
	}
	if q.Inf {
		return p
	}
	if p.X.Cmp(q.X) == 0 && m.add(p.Y, q.Y).Sign() == 0 {
		return Infinity()
	}

	var lambda *big.Int
	if p.Equal(q) {
		num := m.add(m.mul(bi(3), m.mul(p.X, p.X)), m.a)
		lambda = m.mul(num, m.inv(m.mul(bi(2), p.Y)))
	} else {
		lambda = m.mul(m.sub(q.Y, p.Y), m.inv(m.sub(q.X, p.X)))
	}
	x := m.sub(m.sub(m.mul(lambda, lambda), p.X), q.X)
	y := m.sub(m.mul(lambda, m.sub(p.X, x)), p.Y)
	return AffinePoint{X: x, Y: y}
}

func TestTinyCurveHasAllPoints(t *testing.T) {
	c := tiny23(t)
	// 27 finite points plus infinity.
	assert.Len(t, tinyPoints(c), 27)
}

func TestToJacobian(t *testing.T) {
	c := tiny23(t)

	j := c.ToJacobian(pt(3, 10))
	assert.Equal(t, int64(3), j.X.Int64())
	assert.Equal(t, int64(10), j.Y.Int64())
	assert.Equal(t, int64(1), j.Z.Int64())

	inf := c.ToJacobian(Infinity())
	assert.Equal(t, 0, inf.Z.Sign())
}

func TestFromJacobianRoundTrip(t *testing.T) {
	c := tiny23(t)
	for _, p := range tinyPoints(c) {
		assert.True(t, p.Equal(c.FromJacobian(c.ToJacobian(p))), "p=%s", p)

		for _, l := range []int64{2, 5, 22} {
			assert.True(t, p.Equal(c.FromJacobian(scale(c, c.ToJacobian(p), l))), "p=%s l=%d", p, l)
		}
	}
	assert.True(t, c.FromJacobian(c.ToJacobian(Infinity())).Inf)
}

func TestFromJacobianInfinityDoesNotInvert(t *testing.T) {
	c := tiny23(t)
	assert.NotPanics(t, func() {
		got := c.FromJacobian(JacobianPoint{X: bi(7), Y: bi(9), Z: bi(0)})
		assert.True(t, got.Inf)
	})
	// Z = P is zero in the field as well.
	assert.True(t, c.FromJacobian(JacobianPoint{X: bi(7), Y: bi(9), Z: bi(23)}).Inf)
}

func TestJacobianDouble(t *testing.T) {
	c := tiny23(t)

	t.Run("infinity", func(t *testing.T) {
		assert.True(t, c.FromJacobian(c.JacobianDouble(JacobianInfinity())).Inf)
	})

	t.Run("order two point", func(t *testing.T) {
		got := c.JacobianDouble(c.ToJacobian(pt(4, 0)))
		assert.True(t, c.FromJacobian(got).Inf)
	})

	t.Run("matches affine tangent", func(t *testing.T) {
		for _, p := range tinyPoints(c) {
			want := affineAdd(c, p, p)
			got := c.FromJacobian(c.JacobianDouble(c.ToJacobian(p)))
			assert.True(t, want.Equal(got), "2*%s: want %s, got %s", p, want, got)
		}
	})

	t.Run("textbook value", func(t *testing.T) {
		got := c.FromJacobian(c.JacobianDouble(c.ToJacobian(pt(3, 10))))
		assert.True(t, pt(7, 12).Equal(got), "got %s", got)
	})
}

func TestJacobianAdd(t *testing.T) {
	c := tiny23(t)
	pts := tinyPoints(c)

	t.Run("identity", func(t *testing.T) {
		for _, p := range pts {
			j := c.ToJacobian(p)
			assert.True(t, c.JacobianEqual(j, c.JacobianAdd(j, JacobianInfinity())))
			assert.True(t, c.JacobianEqual(j, c.JacobianAdd(JacobianInfinity(), j)))
		}
	})

	t.Run("infinity operand returned unchanged", func(t *testing.T) {
		q := scale(c, c.ToJacobian(pt(3, 10)), 5)
		got := c.JacobianAdd(JacobianInfinity(), q)
		assert.Equal(t, q, got)
	})

	t.Run("all pairs match affine law", func(t *testing.T) {
		for _, p := range pts {
			for _, q := range pts {
				want := affineAdd(c, p, q)
				got := c.FromJacobian(c.JacobianAdd(c.ToJacobian(p), c.ToJacobian(q)))
				require.True(t, want.Equal(got), "%s + %s: want %s, got %s", p, q, want, got)
			}
		}
	})

	t.Run("equal points in different representations", func(t *testing.T) {
		p := c.ToJacobian(pt(3, 10))
		got := c.JacobianAdd(p, scale(c, p, 7))
		assert.True(t, c.JacobianEqual(c.JacobianDouble(p), got))
	})

	t.Run("inverse points in different representations", func(t *testing.T) {
		p := c.ToJacobian(pt(3, 10))
		negP := scale(c, c.ToJacobian(pt(3, 13)), 11)
		got := c.JacobianAdd(p, negP)
		assert.True(t, c.FromJacobian(got).Inf)
	})

	t.Run("order two point plus itself", func(t *testing.T) {
		p := c.ToJacobian(pt(4, 0))
		assert.True(t, c.FromJacobian(c.JacobianAdd(p, p)).Inf)
	})
}

func TestJacobianEqual(t *testing.T) {
	c := tiny23(t)
	p := c.ToJacobian(pt(3, 10))

	assert.True(t, c.JacobianEqual(p, scale(c, p, 3)))
	assert.False(t, c.JacobianEqual(p, c.ToJacobian(pt(3, 13))))
	assert.False(t, c.JacobianEqual(p, c.ToJacobian(pt(7, 12))))
	assert.False(t, c.JacobianEqual(p, JacobianInfinity()))
	assert.True(t, c.JacobianEqual(JacobianInfinity(), JacobianPoint{X: bi(5), Y: bi(6), Z: bi(0)}))

	// Raw tuples differ even though the points are equal.
	assert.NotEqual(t, p, scale(c, p, 3))
}

func TestJacobianNegate(t *testing.T) {
	c := tiny23(t)
	for _, p := range tinyPoints(c) {
		j := c.ToJacobian(p)
		sum := c.JacobianAdd(j, c.JacobianNegate(j))
		assert.True(t, c.FromJacobian(sum).Inf, "p=%s", p)
	}
	assert.True(t, c.FromJacobian(c.JacobianNegate(JacobianInfinity())).Inf)
}

func TestJacobianOpsDoNotMutateInputs(t *testing.T) {
	c := tiny23(t)
	p := scale(c, c.ToJacobian(pt(3, 10)), 4)
	q := c.ToJacobian(pt(7, 12))
	pc := JacobianPoint{X: new(big.Int).Set(p.X), Y: new(big.Int).Set(p.Y), Z: new(big.Int).Set(p.Z)}

	_ = c.JacobianAdd(p, q)
	_ = c.JacobianDouble(p)
	_ = c.JacobianNegate(p)
	_ = c.JacobianMultiply(p, bi(-9))
	_ = c.FromJacobian(p)

	assert.Equal(t, pc, p)
}
