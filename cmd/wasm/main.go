//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"sync"
	"syscall/js"

	"github.com/smallyu/go-weierstrass/pkg/ecc"
)

// Groups are built lazily and reused across calls.
var (
	mu     sync.Mutex
	groups = make(map[string]*ecc.Group)
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go Weierstrass WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECC", map[string]interface{}{
		"Curves":       js.FuncOf(Curves),
		"FastMultiply": js.FuncOf(FastMultiply),
		"FastAdd":      js.FuncOf(FastAdd),
		"Inverse":      js.FuncOf(Inverse),
	})

	<-c
}

// Curves returns the registered curve names as a JSON array.
func Curves(this js.Value, args []js.Value) interface{} {
	b, _ := json.Marshal(ecc.Curves())
	return string(b)
}

// FastMultiply computes k*(x, y).
// Arguments:
// 0: curve name
// 1, 2: point coordinates, or "inf"
// 3: scalar
// Returns:
// JSON point
func FastMultiply(this js.Value, args []js.Value) interface{} {
	if len(args) != 4 {
		return "error: expected 4 arguments (curve, x, y, k)"
	}
	g, err := group(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	p, err := ecc.ParsePoint(args[1].String(), args[2].String())
	if err != nil {
		return fmt.Sprintf("error: invalid point: %v", err)
	}
	if err := g.Validate(p); err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	k, err := ecc.ParseInt(args[3].String())
	if err != nil {
		return fmt.Sprintf("error: invalid scalar: %v", err)
	}
	return marshalPoint(g.FastMultiply(p, k))
}

// FastAdd computes (x1, y1) + (x2, y2).
// Arguments:
// 0: curve name
// 1-4: coordinates of both points, "inf" for infinity
// Returns:
// JSON point
func FastAdd(this js.Value, args []js.Value) interface{} {
	if len(args) != 5 {
		return "error: expected 5 arguments (curve, x1, y1, x2, y2)"
	}
	g, err := group(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	var pts [2]ecc.AffinePoint
	for i := range pts {
		p, err := ecc.ParsePoint(args[1+2*i].String(), args[2+2*i].String())
		if err != nil {
			return fmt.Sprintf("error: invalid point %d: %v", i+1, err)
		}
		if err := g.Validate(p); err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		pts[i] = p
	}
	return marshalPoint(g.FastAdd(pts[0], pts[1]))
}

// Inverse computes a^-1 mod n.
// Arguments:
// 0: a
// 1: n
// Returns:
// decimal string
func Inverse(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (a, n)"
	}
	a, err := ecc.ParseInt(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: invalid a: %v", err)
	}
	n, err := ecc.ParseInt(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: invalid n: %v", err)
	}
	inv, err := ecc.Inverse(a, n)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return inv.String()
}

// Helpers

func group(name string) (*ecc.Group, error) {
	mu.Lock()
	defer mu.Unlock()

	if g, ok := groups[name]; ok {
		return g, nil
	}
	g, err := ecc.New(&ecc.Parameters{Curve: name})
	if err != nil {
		return nil, err
	}
	groups[name] = g
	return g, nil
}

func marshalPoint(p ecc.AffinePoint) string {
	b, err := json.Marshal(ecc.EncodePoint(p))
	if err != nil {
		return fmt.Sprintf("error: marshal point failed: %v", err)
	}
	return string(b)
}
