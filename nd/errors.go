// SPDX-License-Identifier: MIT
// Package nd: sentinel error set. All operations return these sentinels
// (optionally wrapped with fmt.Errorf("ctx: %w", ...)); tests match them
// via errors.Is. No operation panics on user-triggered conditions.

package nd

import "errors"

var (
	// ErrBadShape indicates a negative dimension length passed to a
	// constructor or Reshape.
	ErrBadShape = errors.New("nd: invalid shape")

	// ErrOutOfRange indicates a dimension index or element index outside
	// valid bounds.
	ErrOutOfRange = errors.New("nd: index out of range")

	// ErrShapeMismatch indicates incompatible shapes: element count vs data
	// length, differing ranks, or a dimension pair that is neither equal nor
	// broadcastable (one side of length 1).
	ErrShapeMismatch = errors.New("nd: shape mismatch")

	// ErrBadPermutation indicates a Transpose order of wrong cardinality or
	// with duplicate entries.
	ErrBadPermutation = errors.New("nd: invalid dimension permutation")

	// ErrBadMask indicates a boolean mask whose length does not match the
	// compressed dimension.
	ErrBadMask = errors.New("nd: mask length does not match dimension")
)
