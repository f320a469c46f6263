package curves

import (
	"crypto/elliptic"
	"crypto/rand"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// BN254 is gnark-crypto's BN254 G1 behind the Curve interface, used as a
// reference for the generic arithmetic on a second A = 0 curve.
type BN254 struct {
	params *elliptic.CurveParams
}

// NewBN254 returns a new instance of the BN254 G1 wrapper.
func NewBN254() Curve {
	return &BN254{params: BN254Params().CurveParams()}
}

func (c *BN254) Params() *elliptic.CurveParams {
	return c.params
}

func (c *BN254) NewScalar() (*big.Int, error) {
	return rand.Int(rand.Reader, fr.Modulus())
}

func (c *BN254) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	_, _, g1, _ := bn254.Generators()
	var r bn254.G1Affine
	r.ScalarMultiplication(&g1, reduce(k, c.params.N))
	return g1ToXY(&r)
}

func (c *BN254) ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int) {
	p := g1FromXY(Px, Py)
	var r bn254.G1Affine
	r.ScalarMultiplication(&p, reduce(k, c.params.N))
	return g1ToXY(&r)
}

func (c *BN254) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	a := g1FromXY(x1, y1)
	b := g1FromXY(x2, y2)
	var r bn254.G1Affine
	r.Add(&a, &b)
	return g1ToXY(&r)
}

// gnark encodes infinity in affine form as (0, 0) as well.
func g1FromXY(x, y *big.Int) bn254.G1Affine {
	var p bn254.G1Affine
	p.X.SetBigInt(x)
	p.Y.SetBigInt(y)
	return p
}

func g1ToXY(p *bn254.G1Affine) (*big.Int, *big.Int) {
	if p.IsInfinity() {
		return new(big.Int), new(big.Int)
	}
	return p.X.BigInt(new(big.Int)), p.Y.BigInt(new(big.Int))
}
