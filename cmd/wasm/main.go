//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-secp256k1-math/pkg/curve"
	"github.com/smallyu/go-secp256k1-math/pkg/field"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go secp256k1-math WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoSecp256k1", map[string]interface{}{
		"ScalarBaseMult": js.FuncOf(ScalarBaseMult),
		"AddPoints":      js.FuncOf(AddPoints),
		"LiftX":          js.FuncOf(LiftX),
	})

	<-c
}

// pointJSON is the wire form of a point: coordinate hex strings, or
// infinity set for the identity.
type pointJSON struct {
	X        string `json:"x,omitempty"`
	Y        string `json:"y,omitempty"`
	Infinity bool   `json:"infinity,omitempty"`
}

func encodePoint(p curve.Point) string {
	out := pointJSON{Infinity: p.IsIdentity()}
	if !p.IsIdentity() {
		out.X = p.X().Hex()
		out.Y = p.Y().Hex()
	}
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Sprintf("error: encoding point: %v", err)
	}
	return string(data)
}

func decodePoint(in pointJSON) (curve.Point, error) {
	if in.Infinity {
		return curve.Identity(), nil
	}
	x, err := field.NewHex(in.X)
	if err != nil {
		return curve.Point{}, err
	}
	y, err := field.NewHex(in.Y)
	if err != nil {
		return curve.Point{}, err
	}
	return curve.NewPoint(x, y)
}

// ScalarBaseMult computes k*G.
// Arguments:
// 0: scalar as a hex string
// Returns:
// JSON point or an error string
func ScalarBaseMult(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (hexScalar)"
	}

	k, ok := new(big.Int).SetString(args[0].String(), 16)
	if !ok {
		return "error: invalid hex scalar"
	}

	return encodePoint(curve.Generator().ScalarMult(k))
}

// AddPoints applies the group law to two points.
// Arguments:
// 0: JSON string {"p": point, "q": point}
// Returns:
// JSON point or an error string
func AddPoints(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonPoints)"
	}

	type addInput struct {
		P pointJSON `json:"p"`
		Q pointJSON `json:"q"`
	}

	var input addInput
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	p, err := decodePoint(input.P)
	if err != nil {
		return fmt.Sprintf("error: point p: %v", err)
	}
	q, err := decodePoint(input.Q)
	if err != nil {
		return fmt.Sprintf("error: point q: %v", err)
	}

	sum, err := p.Add(q)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return encodePoint(sum)
}

// LiftX recovers the even-y point for an x-coordinate.
// Arguments:
// 0: x-coordinate as a hex string
// Returns:
// JSON {"found": bool, "point": point} or an error string
func LiftX(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (hexX)"
	}

	x, err := field.NewHex(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	type liftOutput struct {
		Found bool      `json:"found"`
		Point pointJSON `json:"point,omitempty"`
	}

	p, found := curve.LiftX(x)
	out := liftOutput{Found: found}
	if found {
		out.Point = pointJSON{X: p.X().Hex(), Y: p.Y().Hex()}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Sprintf("error: encoding result: %v", err)
	}
	return string(data)
}
