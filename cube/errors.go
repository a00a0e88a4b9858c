// SPDX-License-Identifier: MIT
// Package cube: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the cube
// package. Alignment and combining engines return these sentinels wrapped
// with fmt.Errorf("ctx: %w", ...); tests match them via errors.Is. Errors
// from the axis and nd collaborators (axis.ErrDuplicateValue,
// axis.ErrNameNotFound, ...) propagate unchanged where they already name
// the failure precisely.

package cube

import "errors"

var (
	// ErrShapeMismatch indicates the backing array's rank or a dimension
	// length does not match the axis set at Cube construction.
	ErrShapeMismatch = errors.New("cube: array shape does not match axes")

	// ErrAlignLength indicates two Unique axes of the same name but different
	// lengths; Unique-to-Unique alignment requires equal lengths.
	ErrAlignLength = errors.New("cube: cannot align unique axes of different lengths")

	// ErrAlignValue indicates a value required by alignment is absent from
	// the axis that must be reindexed.
	ErrAlignValue = errors.New("cube: cannot align axes with different values")

	// ErrAlignOrder indicates two Ordered axes whose value sequences differ.
	// Ordered axes cannot be reindexed (duplicates make positions ambiguous),
	// so they must already agree positionally.
	ErrAlignOrder = errors.New("cube: ordered axes differ in values or order")

	// ErrBroadcast indicates a rank mismatch after unit-dimension insertion.
	// Defensive: unreachable with a well-formed target axis set.
	ErrBroadcast = errors.New("cube: broadcast rank mismatch")

	// ErrUnmatchedAxis indicates a combined cube lacks an axis of the union
	// while broadcasting is disabled.
	ErrUnmatchedAxis = errors.New("cube: axis missing and broadcasting disabled")

	// ErrAxisCollision indicates the new Stack axis name is already present
	// on an input cube.
	ErrAxisCollision = errors.New("cube: stack axis name already present")

	// ErrStackLength indicates the new Stack axis length differs from the
	// number of stacked cubes.
	ErrStackLength = errors.New("cube: stack axis length does not match cube count")

	// ErrEmptyInput indicates Concatenate or Stack received no cubes.
	ErrEmptyInput = errors.New("cube: no cubes to combine")

	// ErrOperand indicates a binary-operation operand that is neither a
	// *Cube, a numeric scalar, nor an *nd.Array.
	ErrOperand = errors.New("cube: unsupported operand type")
)
