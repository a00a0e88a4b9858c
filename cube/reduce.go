// SPDX-License-Identifier: MIT

// Package cube - reductions and group-by.
//
// Reduce folds whole axes away: the collapsed dimensions are rotated to
// the back of the layout, so every fiber passed to the fold function is a
// contiguous block. GroupBy collapses duplicate values of an Ordered axis
// instead, reducing each duplicate group to a single position and
// producing a Unique axis.
package cube

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/ncube/axis"
	"github.com/katalvlaran/ncube/nd"
)

// ReduceFunc folds a fiber of values into one. The slice is reused across
// calls and must not be retained.
type ReduceFunc func(values []float64) float64

// Reduce collapses the identified axes, applying f to each fiber spanned
// by them. With no identifiers every axis is collapsed and the result is
// a scalar (rank-0) cube. Identifying the same axis twice is rejected.
//
// Errors: lookup errors, axis.ErrBadPermutation.
// Complexity: O(size).
func (c *Cube) Reduce(f ReduceFunc, ids ...any) (*Cube, error) {
	if len(ids) == 0 {
		set, err := axis.NewSet()
		if err != nil {
			return nil, err
		}
		return New(nd.Scalar(f(c.data.Values())), set)
	}
	kept, err := c.axes.Complement(ids...)
	if err != nil {
		return nil, err
	}
	return c.reduceKeeping(f, kept)
}

// ReduceKeep is the dual of Reduce: the identified axes survive and every
// other axis is collapsed.
func (c *Cube) ReduceKeep(f ReduceFunc, ids ...any) (*Cube, error) {
	collapsed, err := c.axes.Complement(ids...)
	if err != nil {
		return nil, err
	}
	isCollapsed := make([]bool, c.axes.Len())
	for _, i := range collapsed {
		isCollapsed[i] = true
	}
	kept := make([]int, 0, c.axes.Len()-len(collapsed))
	for i := range isCollapsed {
		if !isCollapsed[i] {
			kept = append(kept, i)
		}
	}
	return c.reduceKeeping(f, kept)
}

// reduceKeeping folds away every dimension not listed in kept (ascending
// positions). The collapsed dimensions are moved to the back so each
// fiber is contiguous.
func (c *Cube) reduceKeeping(f ReduceFunc, kept []int) (*Cube, error) {
	r := c.axes.Len()
	isKept := make([]bool, r)
	for _, i := range kept {
		isKept[i] = true
	}
	perm := make([]int, 0, r)
	perm = append(perm, kept...)
	chunk := 1
	shape := c.Shape()
	for i := 0; i < r; i++ {
		if !isKept[i] {
			perm = append(perm, i)
			chunk *= shape[i]
		}
	}
	t, err := c.data.Transpose(perm...)
	if err != nil {
		return nil, err
	}

	axes := make([]*axis.Axis, len(kept))
	outSize := 1
	for k, i := range kept {
		a, aerr := c.axes.At(i)
		if aerr != nil {
			return nil, aerr
		}
		axes[k] = a
		outSize *= a.Len()
	}
	set, err := axis.NewSet(axes...)
	if err != nil {
		return nil, err
	}

	flat := t.Values()
	data := make([]float64, outSize)
	for i := range data {
		data[i] = f(flat[i*chunk : (i+1)*chunk])
	}
	arr, err := nd.FromValues(data, set.Shape()...)
	if err != nil {
		return nil, err
	}
	return New(arr, set)
}

// Sum collapses the identified axes (all when none given) by summation.
func (c *Cube) Sum(ids ...any) (*Cube, error) { return c.Reduce(sumOf, ids...) }

// Mean collapses the identified axes by arithmetic mean.
func (c *Cube) Mean(ids ...any) (*Cube, error) { return c.Reduce(meanOf, ids...) }

// Min collapses the identified axes by minimum.
func (c *Cube) Min(ids ...any) (*Cube, error) { return c.Reduce(minOf, ids...) }

// Max collapses the identified axes by maximum.
func (c *Cube) Max(ids ...any) (*Cube, error) { return c.Reduce(maxOf, ids...) }

// Prod collapses the identified axes by product.
func (c *Cube) Prod(ids ...any) (*Cube, error) { return c.Reduce(prodOf, ids...) }

func sumOf(vs []float64) float64 {
	s := 0.0
	for _, v := range vs {
		s += v
	}
	return s
}

func prodOf(vs []float64) float64 {
	p := 1.0
	for _, v := range vs {
		p *= v
	}
	return p
}

func meanOf(vs []float64) float64 {
	if len(vs) == 0 {
		return math.NaN()
	}
	return sumOf(vs) / float64(len(vs))
}

func minOf(vs []float64) float64 {
	if len(vs) == 0 {
		return math.NaN()
	}
	m := vs[0]
	for _, v := range vs[1:] {
		m = math.Min(m, v)
	}
	return m
}

func maxOf(vs []float64) float64 {
	if len(vs) == 0 {
		return math.NaN()
	}
	m := vs[0]
	for _, v := range vs[1:] {
		m = math.Max(m, v)
	}
	return m
}

// GroupBy collapses duplicate values on the identified Ordered axis: each
// group of equal values is reduced by f to one position, and the axis is
// replaced by a Unique axis of the distinct values in first-seen order.
// A Unique axis is returned unchanged — every group already has size one.
//
// Errors: lookup errors.
// Complexity: O(size).
func (c *Cube) GroupBy(id any, f ReduceFunc) (*Cube, error) {
	return c.groupBy(id, f, false)
}

// GroupBySorted is GroupBy with the distinct values sorted ascending.
// Sorting requires an ordering on the value type; strings, ints and
// floats are supported.
//
// Errors: lookup errors, axis.ErrValueType for unorderable value types.
func (c *Cube) GroupBySorted(id any, f ReduceFunc) (*Cube, error) {
	return c.groupBy(id, f, true)
}

func (c *Cube) groupBy(id any, f ReduceFunc, sorted bool) (*Cube, error) {
	a, d, err := c.axes.Lookup(id)
	if err != nil {
		return nil, err
	}
	if a.Kind() == axis.Unique {
		return c, nil
	}

	// Distinct values in first-seen order, with their member positions.
	vals := a.Values()
	var order []any
	groups := make(map[any][]int, len(vals))
	for i, v := range vals {
		if _, seen := groups[v]; !seen {
			order = append(order, v)
		}
		groups[v] = append(groups[v], i)
	}
	if sorted {
		var sortErr error
		sort.SliceStable(order, func(i, j int) bool {
			less, ok := lessAny(order[i], order[j])
			if !ok {
				sortErr = fmt.Errorf("axis %q, type %T: %w", a.Name(), order[i], axis.ErrValueType)
			}
			return less
		})
		if sortErr != nil {
			return nil, sortErr
		}
	}

	// Rotate the grouped dimension to the back so each position's fiber
	// for a fixed rest-index is addressable in one contiguous row.
	r := c.axes.Len()
	perm := make([]int, 0, r)
	for i := 0; i < r; i++ {
		if i != d {
			perm = append(perm, i)
		}
	}
	perm = append(perm, d)
	t, err := c.data.Transpose(perm...)
	if err != nil {
		return nil, err
	}

	n := a.Len()
	g := len(order)
	restSize := t.Size() / max(n, 1)
	if n == 0 {
		restSize = sizeWithout(c.Shape(), d)
	}
	flat := t.Values()
	data := make([]float64, restSize*g)
	buf := make([]float64, 0, n)
	for oi := 0; oi < restSize; oi++ {
		row := flat[oi*n : (oi+1)*n]
		for gi, v := range order {
			buf = buf[:0]
			for _, p := range groups[v] {
				buf = append(buf, row[p])
			}
			data[oi*g+gi] = f(buf)
		}
	}

	restShape := make([]int, 0, r)
	shape := c.Shape()
	for i := 0; i < r; i++ {
		if i != d {
			restShape = append(restShape, shape[i])
		}
	}
	arr, err := nd.FromValues(data, append(restShape, g)...)
	if err != nil {
		return nil, err
	}
	// Rotate the grouped dimension back into place.
	back := make([]int, r)
	for o := 0; o < r; o++ {
		switch {
		case o < d:
			back[o] = o
		case o == d:
			back[o] = r - 1
		default:
			back[o] = o - 1
		}
	}
	arr, err = arr.Transpose(back...)
	if err != nil {
		return nil, err
	}

	na, err := axis.NewUnique(a.Name(), order...)
	if err != nil {
		return nil, err
	}
	set, err := c.axes.Replace(d, na)
	if err != nil {
		return nil, err
	}
	return New(arr, set)
}

func sizeWithout(shape []int, skip int) int {
	size := 1
	for i, n := range shape {
		if i != skip {
			size *= n
		}
	}
	return size
}

// lessAny orders two values of the same dynamic type. The second result
// reports whether the type is orderable.
func lessAny(a, b any) (bool, bool) {
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		return ok && x < y, ok
	case int:
		y, ok := b.(int)
		return ok && x < y, ok
	case int64:
		y, ok := b.(int64)
		return ok && x < y, ok
	case float64:
		y, ok := b.(float64)
		return ok && x < y, ok
	default:
		return false, false
	}
}
