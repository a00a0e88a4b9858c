// SPDX-License-Identifier: MIT

// Package cube - Cube value type and its per-axis operation surface.
//
// Purpose:
//   - Couple one axis.Set with one *nd.Array under the shape invariant
//     (rank and per-dimension lengths match).
//   - Translate labeled operations (take by axis id, filter by value,
//     rename, swap, transpose, insert) into nd primitives.
//
// All methods are pure; the receiver is never mutated. Axis sets are
// reused by reference whenever an operation leaves them unchanged, which
// preserves the identity fast path of the alignment resolver.
package cube

import (
	"fmt"

	"github.com/katalvlaran/ncube/axis"
	"github.com/katalvlaran/ncube/nd"
)

// Cube is a labeled n-dimensional array: a backing nd.Array whose
// dimensions are described, in order, by an axis.Set.
type Cube struct {
	data *nd.Array
	axes *axis.Set
}

// New couples values with axes after verifying the shape invariant:
// the array rank must equal the number of axes and every dimension length
// must equal the matching axis length.
//
// Errors: ErrShapeMismatch.
// Complexity: O(rank).
func New(values *nd.Array, axes *axis.Set) (*Cube, error) {
	if values.Rank() != axes.Len() {
		return nil, fmt.Errorf("rank %d for %d axes: %w", values.Rank(), axes.Len(), ErrShapeMismatch)
	}
	shape := values.Shape()
	for i, a := range axes.Axes() {
		if shape[i] != a.Len() {
			return nil, fmt.Errorf("dimension %d has length %d, axis %q has %d: %w",
				i, shape[i], a.Name(), a.Len(), ErrShapeMismatch)
		}
	}
	return &Cube{data: values, axes: axes}, nil
}

// FromValues builds a Cube directly from flat row-major data and axes;
// the shape is taken from the axis lengths.
//
// Errors: nd construction errors, ErrShapeMismatch.
func FromValues(data []float64, axes ...*axis.Axis) (*Cube, error) {
	set, err := axis.NewSet(axes...)
	if err != nil {
		return nil, err
	}
	arr, err := nd.FromValues(data, set.Shape()...)
	if err != nil {
		return nil, err
	}
	return New(arr, set)
}

// Values returns a copy of the backing array. Complexity: O(size).
func (c *Cube) Values() *nd.Array { return c.data.Clone() }

// Axes returns the axis set. Sets are immutable, so the receiver's set is
// returned directly. Complexity: O(1).
func (c *Cube) Axes() *axis.Set { return c.axes }

// Rank returns the number of axes. Complexity: O(1).
func (c *Cube) Rank() int { return c.axes.Len() }

// Shape returns the axis lengths in order. Complexity: O(rank).
func (c *Cube) Shape() []int { return c.axes.Shape() }

// Axis resolves an axis identifier (int position, string name, or *Axis
// identity) to the axis. See axis.Set.Lookup for errors.
func (c *Cube) Axis(id any) (*axis.Axis, error) {
	a, _, err := c.axes.Lookup(id)
	return a, err
}

// AxisIndex resolves an axis identifier to its position.
func (c *Cube) AxisIndex(id any) (int, error) {
	return c.axes.Index(id)
}

// HasAxis reports whether the identifier resolves to an axis of the Cube.
func (c *Cube) HasAxis(id any) bool { return c.axes.Contains(id) }

// At returns the element at the given multi-index. See nd.Array.At.
func (c *Cube) At(idx ...int) (float64, error) { return c.data.At(idx...) }

// Apply applies f to every element, keeping the axes unchanged.
// Complexity: O(size).
func (c *Cube) Apply(f func(float64) float64) *Cube {
	return &Cube{data: c.data.Apply1(f), axes: c.axes}
}

// Transpose reorders the axes by the given identifiers (one per axis,
// each exactly once) and permutes the backing dimensions accordingly.
// Transposing by a permutation and then by its inverse restores the
// original axis order and values.
//
// Errors: axis.ErrBadPermutation, lookup errors.
func (c *Cube) Transpose(order ...any) (*Cube, error) {
	set, perm, err := c.axes.Transpose(order...)
	if err != nil {
		return nil, err
	}
	data, err := c.data.Transpose(perm...)
	if err != nil {
		return nil, err
	}
	return New(data, set)
}

// Take gathers the given positions along the identified axis, in the
// given order. Negative positions count from the end. A Take that would
// duplicate values on a Unique axis fails with axis.ErrDuplicateValue.
func (c *Cube) Take(id any, indices []int) (*Cube, error) {
	a, i, err := c.axes.Lookup(id)
	if err != nil {
		return nil, err
	}
	na, err := a.Take(indices)
	if err != nil {
		return nil, err
	}
	data, err := c.data.Take(i, indices)
	if err != nil {
		return nil, err
	}
	set, err := c.axes.Replace(i, na)
	if err != nil {
		return nil, err
	}
	return New(data, set)
}

// Slice keeps the half-open position range [start, stop) of the
// identified axis. Negative bounds count from the end.
func (c *Cube) Slice(id any, start, stop int) (*Cube, error) {
	a, i, err := c.axes.Lookup(id)
	if err != nil {
		return nil, err
	}
	na, err := a.Slice(start, stop)
	if err != nil {
		return nil, err
	}
	n := a.Len()
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	indices := make([]int, 0, stop-start)
	for p := start; p < stop; p++ {
		indices = append(indices, p)
	}
	data, err := c.data.Take(i, indices)
	if err != nil {
		return nil, err
	}
	set, err := c.axes.Replace(i, na)
	if err != nil {
		return nil, err
	}
	return New(data, set)
}

// Compress keeps the positions of the identified axis where mask is true.
//
// Errors: axis.ErrMaskLength, lookup errors.
func (c *Cube) Compress(id any, mask []bool) (*Cube, error) {
	a, i, err := c.axes.Lookup(id)
	if err != nil {
		return nil, err
	}
	na, err := a.Compress(mask)
	if err != nil {
		return nil, err
	}
	data, err := c.data.Compress(i, mask)
	if err != nil {
		return nil, err
	}
	set, err := c.axes.Replace(i, na)
	if err != nil {
		return nil, err
	}
	return New(data, set)
}

// Filter keeps the positions of the identified axis whose value occurs in
// keep, in axis order. Values absent from the axis are ignored.
func (c *Cube) Filter(id any, keep ...any) (*Cube, error) {
	a, _, err := c.axes.Lookup(id)
	if err != nil {
		return nil, err
	}
	return c.Take(id, a.Match(keep...))
}

// ReplaceAxis substitutes the identified axis with na. The axis set is
// re-checked for duplicate names and the new axis length must match the
// backing dimension.
//
// Errors: lookup errors, axis.ErrDuplicateName, ErrShapeMismatch.
func (c *Cube) ReplaceAxis(id any, na *axis.Axis) (*Cube, error) {
	set, err := c.axes.Replace(id, na)
	if err != nil {
		return nil, err
	}
	return New(c.data, set)
}

// RenameAxis renames the identified axis, keeping values and kind.
//
// Errors: lookup errors, axis.ErrEmptyName, axis.ErrDuplicateName.
func (c *Cube) RenameAxis(id any, name string) (*Cube, error) {
	a, i, err := c.axes.Lookup(id)
	if err != nil {
		return nil, err
	}
	na, err := a.Rename(name)
	if err != nil {
		return nil, err
	}
	set, err := c.axes.Replace(i, na)
	if err != nil {
		return nil, err
	}
	return New(c.data, set)
}

// SwapAxes exchanges two axes and their backing dimensions.
func (c *Cube) SwapAxes(id1, id2 any) (*Cube, error) {
	i, err := c.axes.Index(id1)
	if err != nil {
		return nil, err
	}
	j, err := c.axes.Index(id2)
	if err != nil {
		return nil, err
	}
	set, err := c.axes.Swap(i, j)
	if err != nil {
		return nil, err
	}
	perm := make([]int, c.axes.Len())
	for k := range perm {
		perm[k] = k
	}
	perm[i], perm[j] = j, i
	data, err := c.data.Transpose(perm...)
	if err != nil {
		return nil, err
	}
	return New(data, set)
}

// InsertAxis adds a new axis at position pos, replicating the existing
// values along it.
//
// Errors: axis.ErrPositionOutOfRange, axis.ErrDuplicateName.
// Complexity: O(size · len(na)).
func (c *Cube) InsertAxis(na *axis.Axis, pos int) (*Cube, error) {
	set, err := c.axes.Insert(na, pos)
	if err != nil {
		return nil, err
	}
	if pos < 0 {
		pos += c.axes.Len()
	}
	data, err := c.data.ExpandDims(pos)
	if err != nil {
		return nil, err
	}
	data, err = data.Repeat(pos, na.Len())
	if err != nil {
		return nil, err
	}
	return New(data, set)
}

// AlignTo reindexes the Cube's axis of target's name into target's value
// order. The Cube's own axis must be Unique (only Unique axes can be
// reindexed by value); target replaces it in the result.
//
// Errors: lookup errors, axis.ErrNoLookup, ErrAlignValue.
func (c *Cube) AlignTo(target *axis.Axis) (*Cube, error) {
	own, i, err := c.axes.Lookup(target.Name())
	if err != nil {
		return nil, err
	}
	if own == target {
		return c, nil
	}
	indices, err := own.PositionsOf(target.Values())
	if err != nil {
		return nil, alignErr(err, target.Name())
	}
	data, err := c.data.Take(i, indices)
	if err != nil {
		return nil, err
	}
	set, err := c.axes.Replace(i, target)
	if err != nil {
		return nil, err
	}
	return New(data, set)
}

// String implements fmt.Stringer: axes, then flat values.
func (c *Cube) String() string {
	return fmt.Sprintf("axes:\n%s\nvalues:\n%s", c.axes, c.data)
}
