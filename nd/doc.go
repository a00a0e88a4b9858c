// Package nd implements the dense n-dimensional numeric array consumed by
// the labeled-array layer (cube).
//
// Array is a contiguous row-major float64 buffer plus a shape. It is the
// plain, unlabeled collaborator: it knows nothing about axis names or
// kinds, only dimension positions. The cube package translates labeled
// operations into exactly the primitive surface exposed here:
//
//   - construction (New, FromValues, Scalar) and shape queries,
//   - Reshape, Transpose (dimension permute),
//   - Take (gather along one dimension), Compress (boolean filter),
//   - ExpandDims (insert a unit dimension), Repeat,
//   - Apply1/Apply2 elementwise kernels, where Apply2 broadcasts
//     unit-length dimensions numpy-style,
//   - Concat0 (concatenate along dimension 0, broadcasting trailing
//     unit dimensions).
//
// All operations are pure: inputs are never mutated and every result is a
// freshly allocated contiguous array. Loops run in fixed row-major order;
// there is no randomness and no hidden state.
//
// Errors:
//
//	ErrBadShape       - negative dimension length at construction.
//	ErrOutOfRange     - dimension or element index outside valid bounds.
//	ErrShapeMismatch  - incompatible shapes (element count, rank, or a
//	                    non-broadcastable dimension pair).
//	ErrBadPermutation - Transpose order is not a full permutation.
//	ErrBadMask        - boolean mask length does not match the dimension.
package nd
