// SPDX-License-Identifier: MIT

// Package cube - binary-operation engine.
//
// Apply2 orchestrates the alignment resolver and the broadcaster to apply
// an elementwise kernel across two labeled operands:
//
//  1. Walk A's axes in order. Shared names are aligned (gathers applied to
//     whichever side needs reindexing); A-only axes pass through.
//  2. Append B-only axes in B's order (passthrough, unaligned).
//  3. Broadcast both backing arrays to the final axis set.
//  4. Apply the kernel elementwise and wrap the result.
//
// Axis order in the result is therefore A's order first, then B's extra
// axes: the operation is not commutative in axis order, though values per
// label are identical either way. Operands are read-only; alignment errors
// propagate unchanged.
package cube

import (
	"errors"
	"math"

	"github.com/katalvlaran/ncube/axis"
	"github.com/katalvlaran/ncube/nd"
)

// Func2 is an elementwise binary kernel.
type Func2 func(x, y float64) float64

// Apply2 applies f elementwise across a and b. Each operand may be a
// *Cube, a numeric scalar (float64 or int), or a bare *nd.Array. A bare
// operand passes through: the other operand's axis set is used unchanged
// and no alignment happens.
//
// Errors: ErrOperand, alignment errors (ErrAlignLength, ErrAlignValue,
// ErrAlignOrder), ErrBroadcast, ErrShapeMismatch for a bare array of
// incompatible shape.
func Apply2(f Func2, a, b any) (*Cube, error) {
	ca, aCube := a.(*Cube)
	cb, bCube := b.(*Cube)
	switch {
	case aCube && bCube:
		return apply2(f, ca, cb)
	case aCube:
		return applyBare(f, ca, b, false)
	case bCube:
		return applyBare(f, cb, a, true)
	default:
		return nil, ErrOperand
	}
}

// applyBare handles the scalar / bare-array passthrough. flip reports
// that the bare operand is the LEFT argument of f.
func applyBare(f Func2, c *Cube, bare any, flip bool) (*Cube, error) {
	switch v := bare.(type) {
	case float64:
		return bareScalar(f, c, v, flip), nil
	case int:
		return bareScalar(f, c, float64(v), flip), nil
	case *nd.Array:
		x, y := c.data, v
		if flip {
			x, y = y, x
		}
		data, err := nd.Apply2(f, x, y)
		if err != nil {
			return nil, err
		}
		return New(data, c.axes)
	default:
		return nil, ErrOperand
	}
}

func bareScalar(f Func2, c *Cube, s float64, flip bool) *Cube {
	if flip {
		return c.Apply(func(x float64) float64 { return f(s, x) })
	}
	return c.Apply(func(x float64) float64 { return f(x, s) })
}

// apply2 is the aligned path for two Cubes.
func apply2(f Func2, a, b *Cube) (*Cube, error) {
	va, vb := a.data, b.data
	outAxes := a.axes.Axes()

	for i, axA := range a.axes.Axes() {
		axB, j, err := b.axes.Lookup(axA.Name())
		if err != nil {
			if errors.Is(err, axis.ErrNameNotFound) {
				continue // A-only axis: passthrough, no alignment
			}
			return nil, err
		}
		res, gA, gB, err := alignAxes(axA, axB)
		if err != nil {
			return nil, err
		}
		outAxes[i] = res
		if gA != nil {
			if va, err = va.Take(i, gA); err != nil {
				return nil, err
			}
		}
		if gB != nil {
			if vb, err = vb.Take(j, gB); err != nil {
				return nil, err
			}
		}
	}

	// B-only axes join the output after all of A's, in B's order.
	for _, axB := range b.axes.Axes() {
		if !a.axes.Contains(axB.Name()) {
			outAxes = append(outAxes, axB)
		}
	}
	target, err := axis.NewSet(outAxes...)
	if err != nil {
		return nil, err
	}

	if va, err = broadcastTo(va, a.axes, target); err != nil {
		return nil, err
	}
	if vb, err = broadcastTo(vb, b.axes, target); err != nil {
		return nil, err
	}
	data, err := nd.Apply2(f, va, vb)
	if err != nil {
		return nil, err
	}
	return New(data, target)
}

// ---------- arithmetic wrappers ----------

// Add returns a + b elementwise with axes matched by name.
func Add(a, b any) (*Cube, error) {
	return Apply2(func(x, y float64) float64 { return x + y }, a, b)
}

// Sub returns a - b elementwise with axes matched by name.
func Sub(a, b any) (*Cube, error) {
	return Apply2(func(x, y float64) float64 { return x - y }, a, b)
}

// Mul returns a * b elementwise with axes matched by name.
func Mul(a, b any) (*Cube, error) {
	return Apply2(func(x, y float64) float64 { return x * y }, a, b)
}

// Div returns a / b elementwise with axes matched by name.
func Div(a, b any) (*Cube, error) {
	return Apply2(func(x, y float64) float64 { return x / y }, a, b)
}

// FloorDiv returns floor(a / b) elementwise with axes matched by name.
func FloorDiv(a, b any) (*Cube, error) {
	return Apply2(func(x, y float64) float64 { return math.Floor(x / y) }, a, b)
}

// Mod returns the floating-point remainder of a / b elementwise.
func Mod(a, b any) (*Cube, error) {
	return Apply2(math.Mod, a, b)
}

// Pow returns a ** b elementwise with axes matched by name.
func Pow(a, b any) (*Cube, error) {
	return Apply2(math.Pow, a, b)
}

// Minimum returns the elementwise minimum of a and b.
func Minimum(a, b any) (*Cube, error) {
	return Apply2(math.Min, a, b)
}

// Maximum returns the elementwise maximum of a and b.
func Maximum(a, b any) (*Cube, error) {
	return Apply2(math.Max, a, b)
}

// ---------- comparison wrappers (results are 0/1-valued cubes) ----------

func bool01(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}

// Eq returns 1 where a == b, else 0, with axes matched by name.
func Eq(a, b any) (*Cube, error) {
	return Apply2(func(x, y float64) float64 { return bool01(x == y) }, a, b)
}

// Ne returns 1 where a != b, else 0, with axes matched by name.
func Ne(a, b any) (*Cube, error) {
	return Apply2(func(x, y float64) float64 { return bool01(x != y) }, a, b)
}

// Lt returns 1 where a < b, else 0, with axes matched by name.
func Lt(a, b any) (*Cube, error) {
	return Apply2(func(x, y float64) float64 { return bool01(x < y) }, a, b)
}

// Le returns 1 where a <= b, else 0, with axes matched by name.
func Le(a, b any) (*Cube, error) {
	return Apply2(func(x, y float64) float64 { return bool01(x <= y) }, a, b)
}

// Gt returns 1 where a > b, else 0, with axes matched by name.
func Gt(a, b any) (*Cube, error) {
	return Apply2(func(x, y float64) float64 { return bool01(x > y) }, a, b)
}

// Ge returns 1 where a >= b, else 0, with axes matched by name.
func Ge(a, b any) (*Cube, error) {
	return Apply2(func(x, y float64) float64 { return bool01(x >= y) }, a, b)
}
