package curves

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	NameSecp256k1 = "secp256k1"
	NameBN254     = "bn254"
	NameP256      = "p256"
	NameTiny23    = "tiny23"
)

var registry = map[string]func() *Params{
	NameSecp256k1: Secp256k1Params,
	NameBN254:     BN254Params,
	NameP256:      P256Params,
	NameTiny23:    Tiny23Params,
}

var aliases = map[string]string{
	"p-256":      NameP256,
	"secp256r1":  NameP256,
	"prime256v1": NameP256,
	"bn256":      NameBN254,
	"alt_bn128":  NameBN254,
}

// Secp256k1Params returns y^2 = x^3 + 7 as published by decred's secp256k1.
func Secp256k1Params() *Params {
	cp := secp256k1.S256().Params()
	return &Params{
		Name:    NameSecp256k1,
		P:       new(big.Int).Set(cp.P),
		A:       new(big.Int),
		B:       new(big.Int).Set(cp.B),
		N:       new(big.Int).Set(cp.N),
		Gx:      new(big.Int).Set(cp.Gx),
		Gy:      new(big.Int).Set(cp.Gy),
		BitSize: cp.BitSize,
	}
}

// BN254Params returns the G1 group of BN254, y^2 = x^3 + 3 over the base
// field, with the generator and scalar field order from gnark-crypto.
func BN254Params() *Params {
	_, _, g1, _ := bn254.Generators()
	return &Params{
		Name:    NameBN254,
		P:       fp.Modulus(),
		A:       new(big.Int),
		B:       big.NewInt(3),
		N:       fr.Modulus(),
		Gx:      g1.X.BigInt(new(big.Int)),
		Gy:      g1.Y.BigInt(new(big.Int)),
		BitSize: fp.Bits,
	}
}

// P256Params returns NIST P-256, whose A coefficient is -3 mod P.
func P256Params() *Params {
	cp := elliptic.P256().Params()
	return &Params{
		Name:    NameP256,
		P:       new(big.Int).Set(cp.P),
		A:       new(big.Int).Sub(cp.P, big.NewInt(3)),
		B:       new(big.Int).Set(cp.B),
		N:       new(big.Int).Set(cp.N),
		Gx:      new(big.Int).Set(cp.Gx),
		Gy:      new(big.Int).Set(cp.Gy),
		BitSize: cp.BitSize,
	}
}

// Tiny23Params returns the textbook curve y^2 = x^3 + x + 1 over F_23. Its
// group is cyclic of order 28 and generated by (3, 10); (4, 0) is the point
// of order 2.
func Tiny23Params() *Params {
	return &Params{
		Name:    NameTiny23,
		P:       big.NewInt(23),
		A:       big.NewInt(1),
		B:       big.NewInt(1),
		N:       big.NewInt(28),
		Gx:      big.NewInt(3),
		Gy:      big.NewInt(10),
		BitSize: 5,
	}
}

// ParamsByName returns fresh parameters for a registered curve. Lookup is
// case-insensitive and accepts common aliases such as "P-256".
func ParamsByName(name string) (*Params, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	ctor, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return ctor(), nil
}

// ByName builds the curve group registered under name.
func ByName(name string) (*Weierstrass, error) {
	params, err := ParamsByName(name)
	if err != nil {
		return nil, err
	}
	return New(params)
}

// Names lists the registered curves in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
