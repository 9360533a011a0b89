package curve

import (
	"math/big"

	"github.com/smallyu/go-secp256k1-math/pkg/field"
)

var (
	// b7 is the constant term of the curve equation y^2 = x^3 + 7.
	b7 = field.NewInt64(7)

	// n is the order of the cyclic group generated by G.
	n = mustHexInt("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

	// halfN is floor(n/2).
	halfN = new(big.Int).Rsh(n, 1)

	generator Point
)

// generatorX is the standard secp256k1 base point x-coordinate; the
// base point itself is recovered from it at init with the even-y rule.
const generatorX = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

func init() {
	gx, err := field.NewHex(generatorX)
	if err != nil {
		panic("curve: invalid generator x constant: " + err.Error())
	}
	g, ok := LiftX(gx)
	if !ok {
		panic("curve: generator x-coordinate does not lift to a point")
	}
	generator = g
}

func mustHexInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curve: invalid hex constant " + s)
	}
	return v
}

// Order returns a copy of n, the order of the group generated by G.
func Order() *big.Int {
	return new(big.Int).Set(n)
}

// HalfOrder returns a copy of floor(n/2). Signature consumers use it
// for low-S normalization; the arithmetic here never does.
func HalfOrder() *big.Int {
	return new(big.Int).Set(halfN)
}

// Generator returns the base point G.
func Generator() Point {
	return generator
}
