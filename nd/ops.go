// SPDX-License-Identifier: MIT

// Package nd - elementwise kernels and concatenation.
//
// Purpose:
//   - Apply1/Apply2 implement the elementwise surface the labeled layer
//     maps its arithmetic, comparison and reduction plumbing onto.
//   - Apply2 broadcasts unit-length dimensions: operand shapes must have
//     equal rank and agree per dimension except where one side is 1, in
//     which case that side is replicated (stride-0 read, no copy).
//   - Concat0 joins arrays along dimension 0, broadcasting trailing unit
//     dimensions of each operand to the common trailing shape first.
//
// Determinism & Performance:
//   - Fixed row-major loop order everywhere; a single odometer walk per
//     kernel, no allocation beyond the output array.
package nd

import "fmt"

// Apply1 applies f to every element, returning a new array of the same
// shape. Complexity: O(size).
func (a *Array) Apply1(f func(float64) float64) *Array {
	out := &Array{shape: a.Shape(), data: make([]float64, len(a.data))}
	for i, v := range a.data {
		out.data[i] = f(v)
	}
	return out
}

// Apply2 applies f elementwise to x and y, broadcasting unit-length
// dimensions. The operands must have equal rank; every dimension pair
// must be equal or contain a 1.
//
// Errors: ErrShapeMismatch.
// Complexity: O(result size · rank).
func Apply2(f func(x, y float64) float64, x, y *Array) (*Array, error) {
	if len(x.shape) != len(y.shape) {
		return nil, fmt.Errorf("rank %d vs %d: %w", len(x.shape), len(y.shape), ErrShapeMismatch)
	}
	r := len(x.shape)
	shape := make([]int, r)
	for d := 0; d < r; d++ {
		nx, ny := x.shape[d], y.shape[d]
		switch {
		case nx == ny:
			shape[d] = nx
		case nx == 1:
			shape[d] = ny
		case ny == 1:
			shape[d] = nx
		default:
			return nil, fmt.Errorf("dimension %d: %d vs %d: %w", d, nx, ny, ErrShapeMismatch)
		}
	}

	out := &Array{shape: shape, data: make([]float64, sizeOf(shape))}
	if len(out.data) == 0 {
		return out, nil
	}
	if r == 0 {
		out.data[0] = f(x.data[0], y.data[0])
		return out, nil
	}

	// Effective strides: zero where the operand dimension is replicated.
	ex := effectiveStrides(x.shape, shape)
	ey := effectiveStrides(y.shape, shape)
	idx := make([]int, r)
	offX, offY := 0, 0
	for flat := range out.data {
		out.data[flat] = f(x.data[offX], y.data[offY])
		for d := r - 1; d >= 0; d-- {
			idx[d]++
			offX += ex[d]
			offY += ey[d]
			if idx[d] < shape[d] {
				break
			}
			offX -= idx[d] * ex[d]
			offY -= idx[d] * ey[d]
			idx[d] = 0
		}
	}
	return out, nil
}

// effectiveStrides returns the row-major strides of shape, zeroed on every
// dimension that is broadcast (length 1 against a longer target).
func effectiveStrides(shape, target []int) []int {
	s := stridesOf(shape)
	for d := range shape {
		if shape[d] == 1 && target[d] != 1 {
			s[d] = 0
		}
	}
	return s
}

// broadcast materializes a to the target shape, which must have equal rank
// and agree per dimension except where a has length 1.
func (a *Array) broadcast(target []int) (*Array, error) {
	same := len(target) == len(a.shape)
	for d := 0; same && d < len(target); d++ {
		same = a.shape[d] == target[d]
	}
	if same {
		return a, nil
	}
	for d := range target {
		if a.shape[d] != target[d] && a.shape[d] != 1 {
			return nil, fmt.Errorf("dimension %d: %d vs %d: %w", d, a.shape[d], target[d], ErrShapeMismatch)
		}
	}

	shape := make([]int, len(target))
	copy(shape, target)
	out := &Array{shape: shape, data: make([]float64, sizeOf(shape))}
	if len(out.data) == 0 {
		return out, nil
	}
	es := effectiveStrides(a.shape, shape)
	idx := make([]int, len(shape))
	off := 0
	for flat := range out.data {
		out.data[flat] = a.data[off]
		for d := len(shape) - 1; d >= 0; d-- {
			idx[d]++
			off += es[d]
			if idx[d] < shape[d] {
				break
			}
			off -= idx[d] * es[d]
			idx[d] = 0
		}
	}
	return out, nil
}

// Concat0 concatenates the arrays along dimension 0. All arrays must share
// one rank of at least 1; trailing dimensions must agree pairwise or be 1
// (unit dimensions are broadcast to the widest trailing shape before the
// join).
//
// Errors: ErrShapeMismatch.
// Complexity: O(result size).
func Concat0(arrays ...*Array) (*Array, error) {
	if len(arrays) == 0 {
		return nil, fmt.Errorf("no arrays to concatenate: %w", ErrShapeMismatch)
	}
	r := len(arrays[0].shape)
	if r < 1 {
		return nil, fmt.Errorf("rank 0 has no dimension 0: %w", ErrShapeMismatch)
	}

	// Compute the widest trailing shape and the total leading length.
	target := make([]int, r)
	for _, a := range arrays {
		if len(a.shape) != r {
			return nil, fmt.Errorf("rank %d vs %d: %w", len(a.shape), r, ErrShapeMismatch)
		}
		target[0] += a.shape[0]
		for d := 1; d < r; d++ {
			if a.shape[d] > target[d] {
				target[d] = a.shape[d]
			}
		}
	}
	for _, a := range arrays {
		for d := 1; d < r; d++ {
			if a.shape[d] != target[d] && a.shape[d] != 1 {
				return nil, fmt.Errorf("dimension %d: %d vs %d: %w", d, a.shape[d], target[d], ErrShapeMismatch)
			}
		}
	}

	out := &Array{shape: target, data: make([]float64, sizeOf(target))}
	pos := 0
	for _, a := range arrays {
		// Broadcast trailing unit dimensions, keep the own leading length.
		want := make([]int, r)
		copy(want, target)
		want[0] = a.shape[0]
		b, err := a.broadcast(want)
		if err != nil {
			return nil, err
		}
		// Dimension 0 is outermost: the broadcast block lands contiguously.
		copy(out.data[pos:], b.data)
		pos += len(b.data)
	}
	return out, nil
}
