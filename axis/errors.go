// SPDX-License-Identifier: MIT
// Package axis: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the axis
// package. All operations return these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ...)) and tests match them via errors.Is. No
// operation panics on user-triggered conditions.

package axis

import "errors"

var (
	// ErrEmptyName indicates an axis was constructed with an empty name.
	ErrEmptyName = errors.New("axis: name must be non-empty")

	// ErrValueType indicates an axis value is nil, has a non-comparable
	// dynamic type, or differs in type from the first value of the axis.
	// The element type of an axis is fixed by its first value.
	ErrValueType = errors.New("axis: invalid or mixed value type")

	// ErrDuplicateValue indicates a duplicate value was supplied to a Unique
	// axis, either at construction or by an operation (Take, concatenation)
	// that would introduce one. Operations fail rather than silently
	// downgrading the axis to Ordered.
	ErrDuplicateValue = errors.New("axis: duplicate value on unique axis")

	// ErrValueNotFound indicates a value lookup on a Unique axis missed.
	ErrValueNotFound = errors.New("axis: value not found")

	// ErrNoLookup indicates a value→position lookup was requested on an
	// Ordered axis, which guarantees positional operations only.
	ErrNoLookup = errors.New("axis: ordered axis does not support value lookup")

	// ErrDuplicateName indicates two axes of the same name were passed to a
	// Set constructor or introduced by Replace/Insert.
	ErrDuplicateName = errors.New("axis: duplicate axis name in set")

	// ErrNameNotFound indicates a Set contains no axis of the given name.
	ErrNameNotFound = errors.New("axis: axis name not found")

	// ErrPositionOutOfRange indicates an integer axis position outside the
	// valid range [-n, n) for a Set of n axes.
	ErrPositionOutOfRange = errors.New("axis: axis position out of range")

	// ErrAxisNotFound indicates an *Axis identity is not present in a Set.
	// Identity is pointer equality, not value equality.
	ErrAxisNotFound = errors.New("axis: axis identity not found in set")

	// ErrInvalidAxisID indicates an axis identifier of an unsupported type.
	// Valid identifiers are int (position), string (name), and *Axis
	// (identity).
	ErrInvalidAxisID = errors.New("axis: identifier must be int, string or *Axis")

	// ErrMaskLength indicates a boolean mask whose length differs from the
	// axis length.
	ErrMaskLength = errors.New("axis: mask length does not match axis length")

	// ErrBadPermutation indicates a Transpose order of wrong cardinality or
	// containing duplicate entries, or a Complement id list with duplicates.
	ErrBadPermutation = errors.New("axis: invalid axis permutation")
)
