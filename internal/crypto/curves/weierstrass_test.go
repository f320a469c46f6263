package curves

import (
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Params)
	}{
		{"composite modulus", func(p *Params) { p.P = bi(21) }},
		{"modulus too small", func(p *Params) { p.P = bi(3) }},
		{"singular curve", func(p *Params) { p.A, p.B = bi(0), bi(0); p.Gx, p.Gy = bi(0), bi(0) }},
		{"unreduced coefficient", func(p *Params) { p.A = bi(24) }},
		{"negative coefficient", func(p *Params) { p.B = bi(-1) }},
		{"generator off curve", func(p *Params) { p.Gy = bi(11) }},
		{"generator unreduced", func(p *Params) { p.Gx = bi(26) }},
		{"zero order", func(p *Params) { p.N = bi(0) }},
		{"wrong order", func(p *Params) { p.N = bi(14) }},
		{"missing field", func(p *Params) { p.B = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := Tiny23Params()
			tt.mutate(params)

			c, err := New(params)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, ErrInvalidParameters)
		})
	}

	_, err := New(nil)
	assert.ErrorIs(t, err, ErrInvalidParameters)
	assert.Panics(t, func() { MustNew(nil) })
}

func TestNewKeepsPrivateCopy(t *testing.T) {
	params := Tiny23Params()
	c, err := New(params)
	require.NoError(t, err)

	params.P.SetInt64(29)
	params.Gx.SetInt64(0)
	assert.Equal(t, int64(23), c.Domain().P.Int64())
	assert.True(t, pt(3, 10).Equal(c.Generator()))

	d := c.Domain()
	d.N.SetInt64(1)
	assert.Equal(t, int64(28), c.Order().Int64())
}

func TestIsOnCurve(t *testing.T) {
	c := tiny23(t)

	assert.True(t, c.IsOnCurve(pt(3, 10)))
	assert.True(t, c.IsOnCurve(pt(4, 0)))
	assert.True(t, c.IsOnCurve(Infinity()))
	assert.False(t, c.IsOnCurve(pt(3, 11)))
	assert.False(t, c.IsOnCurve(pt(26, 10)), "unreduced x")
	assert.False(t, c.IsOnCurve(pt(-20, 10)), "negative x")
}

func TestNegate(t *testing.T) {
	c := tiny23(t)

	assert.True(t, pt(3, 13).Equal(c.Negate(pt(3, 10))))
	assert.True(t, pt(4, 0).Equal(c.Negate(pt(4, 0))))
	assert.True(t, c.Negate(Infinity()).Inf)
}

func TestGroupLaws(t *testing.T) {
	for _, name := range []string{NameSecp256k1, NameP256, NameBN254} {
		t.Run(name, func(t *testing.T) {
			c, err := ByName(name)
			require.NoError(t, err)

			random := func() AffinePoint {
				k, err := c.NewScalar()
				require.NoError(t, err)
				return c.BaseMultiply(k)
			}

			for i := 0; i < 4; i++ {
				p, q, r := random(), random(), random()

				assert.True(t, c.FastAdd(c.FastAdd(p, q), r).Equal(c.FastAdd(p, c.FastAdd(q, r))), "associativity")
				assert.True(t, c.FastAdd(p, q).Equal(c.FastAdd(q, p)), "commutativity")
				assert.True(t, p.Equal(c.FastAdd(p, Infinity())), "right identity")
				assert.True(t, p.Equal(c.FastAdd(Infinity(), p)), "left identity")

				negP := AffinePoint{X: p.X, Y: new(big.Int).Sub(c.Domain().P, p.Y)}
				assert.True(t, c.FastAdd(p, negP).Inf, "inverse cancellation")

				double := c.FromJacobian(c.JacobianDouble(c.ToJacobian(p)))
				assert.True(t, double.Equal(c.FastAdd(p, p)), "doubling")
			}
		})
	}
}

func TestGroupLawsTinyCurveExhaustive(t *testing.T) {
	c := tiny23(t)
	pts := append(tinyPoints(c), Infinity())

	for _, p := range pts {
		for _, q := range pts {
			assert.True(t, c.FastAdd(p, q).Equal(c.FastAdd(q, p)))
			for _, r := range pts[:5] {
				require.True(t, c.FastAdd(c.FastAdd(p, q), r).Equal(c.FastAdd(p, c.FastAdd(q, r))),
					"(%s + %s) + %s", p, q, r)
			}
		}
	}
}

func TestFastAddSymmetricInfinity(t *testing.T) {
	c := tiny23(t)
	assert.True(t, c.FastAdd(Infinity(), Infinity()).Inf)
	assert.True(t, pt(7, 12).Equal(c.FastAdd(Infinity(), pt(7, 12))))
	assert.True(t, pt(7, 12).Equal(c.FastAdd(pt(7, 12), Infinity())))
}

func TestInverseOnCurveField(t *testing.T) {
	c := tiny23(t)

	inv, err := c.Inverse(bi(5))
	require.NoError(t, err)
	assert.Equal(t, int64(14), inv.Int64())

	_, err = c.Inverse(bi(23))
	assert.Error(t, err)
}

func TestCurveInterface(t *testing.T) {
	c := tiny23(t)
	var iface Curve = c

	assert.Equal(t, int64(23), iface.Params().P.Int64())
	assert.Equal(t, int64(28), iface.Params().N.Int64())
	assert.Equal(t, NameTiny23, iface.Params().Name)

	x, y := iface.ScalarBaseMult(bi(2))
	assert.Equal(t, int64(7), x.Int64())
	assert.Equal(t, int64(12), y.Int64())

	// (0, 0) is infinity on this surface.
	x, y = iface.ScalarBaseMult(bi(28))
	assert.Equal(t, 0, x.Sign())
	assert.Equal(t, 0, y.Sign())

	x, y = iface.Add(bi(0), bi(0), bi(3), bi(10))
	assert.Equal(t, int64(3), x.Int64())
	assert.Equal(t, int64(10), y.Int64())

	x, y = iface.ScalarMult(bi(3), bi(10), bi(3))
	assert.Equal(t, int64(19), x.Int64())
	assert.Equal(t, int64(5), y.Int64())

	k, err := iface.NewScalar()
	require.NoError(t, err)
	assert.True(t, k.Sign() >= 0 && k.Cmp(bi(28)) < 0)
}

func TestCurveInterfaceRejectsZeroB(t *testing.T) {
	// y^2 = x^3 + x over F_23: (0, 0) is a point of order 2.
	c, err := New(&Params{
		Name: "b0-23",
		P:    bi(23), A: bi(1), B: bi(0),
		N:  bi(2),
		Gx: bi(0), Gy: bi(0),
	})
	require.NoError(t, err)

	g := c.BaseMultiply(bi(1))
	assert.False(t, g.Inf)
	assert.True(t, pt(0, 0).Equal(g))
	assert.True(t, c.BaseMultiply(bi(2)).Inf)

	var iface Curve = c
	assert.PanicsWithError(t, "curves: b0-23: "+ErrAmbiguousInfinity.Error(), func() { iface.ScalarBaseMult(bi(1)) })
	assert.Panics(t, func() { iface.ScalarMult(bi(0), bi(0), bi(1)) })
	assert.Panics(t, func() { iface.Add(bi(0), bi(0), bi(0), bi(0)) })
}

func TestConcurrentUse(t *testing.T) {
	c, err := ByName(NameSecp256k1)
	require.NoError(t, err)
	want := c.BaseMultiply(bi(0xdeadbeef))

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := c.BaseMultiply(bi(0xdeadbeef)); !want.Equal(got) {
				errs <- got.String()
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("concurrent result mismatch: %s", got)
	}
}
