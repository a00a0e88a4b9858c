// SPDX-License-Identifier: MIT

// Package nd - Array storage (row-major) and structural operations.
//
// Purpose:
//   - Provide a cache-friendly contiguous buffer with the explicit
//     row-major offset formula.
//   - Keep every operation pure: results are new contiguous arrays, the
//     receiver is never mutated.
//   - Keep loop orders fixed for determinism.
//
// Complexity quicksheet:
//   - New: O(size) zero-init; At: O(rank); Reshape/ExpandDims: O(size)
//     copy; Transpose/Take/Compress/Repeat: O(size·rank) or O(size).
package nd

import (
	"fmt"
	"strings"
)

// Array is a dense n-dimensional float64 array in row-major layout.
// Rank 0 (empty shape, one element) represents a scalar.
type Array struct {
	shape []int     // dimension lengths, never mutated after construction
	data  []float64 // contiguous row-major storage, len == product(shape)
}

// sizeOf returns the element count implied by shape (1 for rank 0).
func sizeOf(shape []int) int {
	size := 1
	for _, n := range shape {
		size *= n
	}
	return size
}

// stridesOf returns row-major strides for shape.
func stridesOf(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}

// New creates an array of the given shape initialized to zeros.
// Zero-length dimensions are legal (empty array).
//
// Errors: ErrBadShape on a negative dimension.
// Complexity: O(size).
func New(shape ...int) (*Array, error) {
	for _, n := range shape {
		if n < 0 {
			return nil, fmt.Errorf("dimension %d: %w", n, ErrBadShape)
		}
	}
	owned := make([]int, len(shape))
	copy(owned, shape)
	return &Array{shape: owned, data: make([]float64, sizeOf(owned))}, nil
}

// FromValues creates an array of the given shape backed by a copy of data.
//
// Errors: ErrBadShape, ErrShapeMismatch when len(data) != product(shape).
func FromValues(data []float64, shape ...int) (*Array, error) {
	a, err := New(shape...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.data) {
		return nil, fmt.Errorf("%d values for shape %v: %w", len(data), shape, ErrShapeMismatch)
	}
	copy(a.data, data)
	return a, nil
}

// Scalar creates a rank-0 array holding v.
func Scalar(v float64) *Array {
	return &Array{shape: nil, data: []float64{v}}
}

// Rank returns the number of dimensions. Complexity: O(1).
func (a *Array) Rank() int { return len(a.shape) }

// Size returns the total element count. Complexity: O(1).
func (a *Array) Size() int { return len(a.data) }

// Shape returns a copy of the dimension lengths. Complexity: O(rank).
func (a *Array) Shape() []int {
	out := make([]int, len(a.shape))
	copy(out, a.shape)
	return out
}

// DimLen returns the length of dimension dim (negative counts from the
// end).
//
// Errors: ErrOutOfRange.
func (a *Array) DimLen(dim int) (int, error) {
	d, err := a.normDim(dim)
	if err != nil {
		return 0, err
	}
	return a.shape[d], nil
}

// normDim maps a possibly-negative dimension index into [0, rank).
func (a *Array) normDim(dim int) (int, error) {
	r := len(a.shape)
	if dim < 0 {
		dim += r
	}
	if dim < 0 || dim >= r {
		return 0, fmt.Errorf("dimension %d of rank %d: %w", dim, r, ErrOutOfRange)
	}
	return dim, nil
}

// Values returns a copy of the flat row-major data.
// Complexity: O(size).
func (a *Array) Values() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)
	return out
}

// At returns the element at the given multi-index. The index must supply
// one entry per dimension; negative entries count from the end of their
// dimension.
//
// Errors: ErrShapeMismatch on wrong index arity, ErrOutOfRange.
// Complexity: O(rank).
func (a *Array) At(idx ...int) (float64, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("index arity %d for rank %d: %w", len(idx), len(a.shape), ErrShapeMismatch)
	}
	off := 0
	stride := stridesOf(a.shape)
	for d, i := range idx {
		if i < 0 {
			i += a.shape[d]
		}
		if i < 0 || i >= a.shape[d] {
			return 0, fmt.Errorf("index %d on dimension %d of length %d: %w", idx[d], d, a.shape[d], ErrOutOfRange)
		}
		off += i * stride[d]
	}
	return a.data[off], nil
}

// Clone returns a deep copy. Complexity: O(size).
func (a *Array) Clone() *Array {
	data := make([]float64, len(a.data))
	copy(data, a.data)
	return &Array{shape: a.Shape(), data: data}
}

// Reshape returns a new array with the same data under a new shape of
// equal element count.
//
// Errors: ErrBadShape, ErrShapeMismatch.
// Complexity: O(size).
func (a *Array) Reshape(shape ...int) (*Array, error) {
	out, err := New(shape...)
	if err != nil {
		return nil, err
	}
	if len(out.data) != len(a.data) {
		return nil, fmt.Errorf("reshape %v to %v: %w", a.shape, shape, ErrShapeMismatch)
	}
	copy(out.data, a.data)
	return out, nil
}

// ExpandDims returns a new array with a unit-length dimension inserted at
// position dim. dim may range over [0, rank]; negative positions count
// from the end of the widened shape.
//
// Errors: ErrOutOfRange.
// Complexity: O(size) for the data copy; layout is unchanged.
func (a *Array) ExpandDims(dim int) (*Array, error) {
	r := len(a.shape)
	if dim < 0 {
		dim += r + 1
	}
	if dim < 0 || dim > r {
		return nil, fmt.Errorf("expand position %d of rank %d: %w", dim, r, ErrOutOfRange)
	}
	shape := make([]int, 0, r+1)
	shape = append(shape, a.shape[:dim]...)
	shape = append(shape, 1)
	shape = append(shape, a.shape[dim:]...)
	data := make([]float64, len(a.data))
	copy(data, a.data)
	return &Array{shape: shape, data: data}, nil
}

// Transpose returns a new contiguous array with dimensions permuted: the
// k-th dimension of the result is dimension perm[k] of the receiver.
//
// Errors: ErrBadPermutation.
// Complexity: O(size·rank).
func (a *Array) Transpose(perm ...int) (*Array, error) {
	r := len(a.shape)
	if len(perm) != r {
		return nil, fmt.Errorf("permutation of %d entries for rank %d: %w", len(perm), r, ErrBadPermutation)
	}
	seen := make([]bool, r)
	shape := make([]int, r)
	for k, d := range perm {
		if d < 0 || d >= r || seen[d] {
			return nil, fmt.Errorf("permutation %v: %w", perm, ErrBadPermutation)
		}
		seen[d] = true
		shape[k] = a.shape[d]
	}

	out := &Array{shape: shape, data: make([]float64, len(a.data))}
	if len(out.data) == 0 {
		return out, nil
	}
	// Walk the output in row-major order; map each multi-index back to the
	// source offset through the permuted strides.
	src := stridesOf(a.shape)
	idx := make([]int, r)
	off := 0
	for flat := range out.data {
		out.data[flat] = a.data[off]
		// Odometer increment over the output shape, maintaining src offset.
		for d := r - 1; d >= 0; d-- {
			idx[d]++
			off += src[perm[d]]
			if idx[d] < shape[d] {
				break
			}
			off -= idx[d] * src[perm[d]]
			idx[d] = 0
		}
	}
	return out, nil
}

// Take gathers the given positions along dimension dim, producing a new
// array whose dim-th dimension has length len(indices). Positions may be
// negative (counted from the end of the dimension) and may repeat.
//
// Errors: ErrOutOfRange.
// Complexity: O(result size).
func (a *Array) Take(dim int, indices []int) (*Array, error) {
	d, err := a.normDim(dim)
	if err != nil {
		return nil, err
	}
	n := a.shape[d]
	norm := make([]int, len(indices))
	for k, i := range indices {
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return nil, fmt.Errorf("take %d on dimension %d of length %d: %w", indices[k], d, n, ErrOutOfRange)
		}
		norm[k] = i
	}

	// View the buffer as [outer, n, inner] and copy whole inner blocks.
	outer, inner := 1, 1
	for i := 0; i < d; i++ {
		outer *= a.shape[i]
	}
	for i := d + 1; i < len(a.shape); i++ {
		inner *= a.shape[i]
	}

	shape := a.Shape()
	shape[d] = len(norm)
	out := &Array{shape: shape, data: make([]float64, outer*len(norm)*inner)}
	for o := 0; o < outer; o++ {
		srcBase := o * n * inner
		dstBase := o * len(norm) * inner
		for k, i := range norm {
			copy(out.data[dstBase+k*inner:dstBase+(k+1)*inner], a.data[srcBase+i*inner:srcBase+(i+1)*inner])
		}
	}
	return out, nil
}

// Compress keeps the positions of dimension dim where mask is true.
//
// Errors: ErrOutOfRange, ErrBadMask.
func (a *Array) Compress(dim int, mask []bool) (*Array, error) {
	d, err := a.normDim(dim)
	if err != nil {
		return nil, err
	}
	if len(mask) != a.shape[d] {
		return nil, fmt.Errorf("mask %d on dimension %d of length %d: %w", len(mask), d, a.shape[d], ErrBadMask)
	}
	indices := make([]int, 0, len(mask))
	for i, keep := range mask {
		if keep {
			indices = append(indices, i)
		}
	}
	return a.Take(d, indices)
}

// Repeat repeats every position of dimension dim count times in place
// ([a b] repeated twice becomes [a a b b]), growing that dimension to
// count times its length. The usual caller repeats a unit dimension to
// materialize a broadcast.
//
// Errors: ErrOutOfRange, ErrBadShape on negative count.
// Complexity: O(result size).
func (a *Array) Repeat(dim, count int) (*Array, error) {
	d, err := a.normDim(dim)
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("repeat count %d: %w", count, ErrBadShape)
	}

	outer, inner := 1, 1
	for i := 0; i < d; i++ {
		outer *= a.shape[i]
	}
	for i := d + 1; i < len(a.shape); i++ {
		inner *= a.shape[i]
	}
	n := a.shape[d]

	shape := a.Shape()
	shape[d] = n * count
	out := &Array{shape: shape, data: make([]float64, outer*n*count*inner)}
	for o := 0; o < outer; o++ {
		srcBase := o * n * inner
		dstBase := o * n * count * inner
		for i := 0; i < n; i++ {
			block := a.data[srcBase+i*inner : srcBase+(i+1)*inner]
			for c := 0; c < count; c++ {
				copy(out.data[dstBase+(i*count+c)*inner:], block)
			}
		}
	}
	return out, nil
}

// String implements fmt.Stringer for debugging: shape plus flat data.
func (a *Array) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Array%v%v", a.shape, a.data)
	return sb.String()
}
