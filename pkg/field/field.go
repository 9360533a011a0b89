// Package field implements arithmetic over the secp256k1 base field,
// the prime field of order P = 2^256 - 2^32 - 977.
//
// Elements are immutable values: every operation returns a fresh
// Element and the stored integer is always the canonical
// representative in [0, P). The zero value of Element is the zero
// element.
//
// None of the operations are constant time. Execution time depends on
// the operand values, so this package must not be used where timing
// side channels matter.
package field

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
)

var (
	prime = mustHexInt("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

	// (P+1)/4. Raising to this exponent yields a square root for any
	// quadratic residue because P = 3 mod 4.
	sqrtExponent = new(big.Int).Rsh(new(big.Int).Add(prime, big.NewInt(1)), 2)

	// P-1, the exponent group order, used to normalize negative
	// exponents in Pow.
	primeMinusOne = new(big.Int).Sub(prime, big.NewInt(1))
)

func mustHexInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("field: invalid hex constant " + s)
	}
	return v
}

// Modulus returns a copy of the field modulus P.
func Modulus() *big.Int {
	return new(big.Int).Set(prime)
}

// Element is an element of the secp256k1 base field: the canonical
// residue in [0, P) of some integer modulo P.
type Element struct {
	v big.Int
}

// New returns the element representing v modulo P. Negative values
// and values of any magnitude are accepted; the result is always the
// canonical representative in [0, P). v is not retained.
func New(v *big.Int) Element {
	var e Element
	// big.Int.Mod is Euclidean: the result is in [0, P) even for
	// negative v.
	e.v.Mod(v, prime)
	return e
}

// NewInt64 returns the element representing v modulo P.
func NewInt64(v int64) Element {
	return New(big.NewInt(v))
}

// NewHex parses a big-endian hex string into an element, reducing
// modulo P.
func NewHex(s string) (Element, error) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return Element{}, fmt.Errorf("field: invalid hex string %q", s)
	}
	return New(v), nil
}

// NewBytes interprets b as a big-endian unsigned integer and reduces
// it modulo P. Any length is accepted.
func NewBytes(b []byte) Element {
	return New(new(big.Int).SetBytes(b))
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func One() Element {
	return NewInt64(1)
}

// Add returns e + b mod P.
func (e Element) Add(b Element) Element {
	var r Element
	r.v.Add(&e.v, &b.v)
	if r.v.Cmp(prime) >= 0 {
		r.v.Sub(&r.v, prime)
	}
	return r
}

// Sub returns e - b mod P.
func (e Element) Sub(b Element) Element {
	var r Element
	r.v.Sub(&e.v, &b.v)
	if r.v.Sign() < 0 {
		r.v.Add(&r.v, prime)
	}
	return r
}

// Mul returns e * b mod P.
func (e Element) Mul(b Element) Element {
	var r Element
	r.v.Mul(&e.v, &b.v)
	r.v.Mod(&r.v, prime)
	return r
}

// Square returns e^2 mod P.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Div returns e / b mod P, i.e. e multiplied by the inverse of b.
// It fails when b is zero.
func (e Element) Div(b Element) (Element, error) {
	inv, err := b.Inverse()
	if err != nil {
		return Element{}, errors.New("field: division by zero")
	}
	return e.Mul(inv), nil
}

// Pow returns e raised to exponent, modulo P. The exponent bits are
// scanned from the least significant end (binary square-and-multiply),
// so the cost is proportional to the exponent's bit length. Negative
// exponents are first reduced modulo P-1, which is sound by Fermat's
// little theorem.
func (e Element) Pow(exponent *big.Int) Element {
	exp := exponent
	if exp.Sign() < 0 {
		exp = new(big.Int).Mod(exp, primeMinusOne)
	}

	result := One()
	base := e
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			result = result.Mul(base)
		}
		base = base.Square()
	}
	return result
}

// Inverse returns the multiplicative inverse of e, computed with the
// iterative extended Euclidean algorithm over (e, P). The raw Bezout
// coefficient may come out negative and is shifted back into [0, P).
// It fails when e is zero, which has no inverse.
func (e Element) Inverse() (Element, error) {
	if e.IsZero() {
		return Element{}, errors.New("field: zero has no inverse")
	}

	t := big.NewInt(0)
	newT := big.NewInt(1)
	r := new(big.Int).Set(prime)
	newR := new(big.Int).Set(&e.v)

	for newR.Sign() != 0 {
		q := new(big.Int).Div(r, newR)
		t, newT = newT, new(big.Int).Sub(t, new(big.Int).Mul(q, newT))
		r, newR = newR, new(big.Int).Sub(r, new(big.Int).Mul(q, newR))
	}

	// P is prime and e is nonzero, so the loop terminates with r = 1
	// and t * e = 1 mod P.
	if t.Sign() < 0 {
		t.Add(t, prime)
	}
	return New(t), nil
}

// Sqrt returns a square root of e when one exists. Because P = 3 mod
// 4, any root of a residue equals e^((P+1)/4); squaring the candidate
// tells residues and non-residues apart. The second return value is
// false when e is a quadratic non-residue.
func (e Element) Sqrt() (Element, bool) {
	candidate := e.Pow(sqrtExponent)
	if !candidate.Square().Equal(e) {
		return Element{}, false
	}
	return candidate, true
}

// Negate returns the additive inverse (P - e) mod P.
func (e Element) Negate() Element {
	if e.IsZero() {
		return Element{}
	}
	var r Element
	r.v.Sub(prime, &e.v)
	return r
}

// IsEven reports whether the canonical representative is even.
func (e Element) IsEven() bool {
	return e.v.Bit(0) == 0
}

// IsZero reports whether e is the zero element.
func (e Element) IsZero() bool {
	return e.v.Sign() == 0
}

// Equal reports whether e and b represent the same residue.
func (e Element) Equal(b Element) bool {
	return e.v.Cmp(&b.v) == 0
}

// Bytes returns the canonical encoding: 32 bytes, big-endian,
// left-padded with zeros.
func (e Element) Bytes() []byte {
	out := make([]byte, 32)
	e.v.FillBytes(out)
	return out
}

// Hex returns the canonical encoding as 64 lowercase hex digits.
func (e Element) Hex() string {
	return hex.EncodeToString(e.Bytes())
}

// BigInt returns a copy of the canonical representative.
func (e Element) BigInt() *big.Int {
	return new(big.Int).Set(&e.v)
}

func (e Element) String() string {
	return e.Hex()
}
