// Package axis provides the labeled-axis primitives underlying ncube:
//
//   - Axis — a named, immutable, ordered sequence of values, either
//     Unique (pairwise-distinct values with O(1) value→position lookup)
//     or Ordered (duplicates allowed, positional operations only).
//   - Set  — an ordered, name-unique tuple of axes describing the shape
//     of a labeled array.
//
// Both types are value objects: every transformation (Rename, Take,
// Compress, Replace, Transpose, ...) returns a new object and never
// mutates the receiver. A Unique axis builds its lookup table exactly
// once inside the constructor, so any fully constructed Axis or Set can
// be shared and read from multiple goroutines without locking.
//
// Axes are identified three ways throughout ncube: by integer position
// (negative counts from the end), by name, or by *Axis identity
// (pointer). Identity matters beyond value equality — combining engines
// use pointer equality as a "same axis, nothing to align" fast path.
//
// Errors:
//
//	ErrEmptyName          - axis name is the empty string.
//	ErrValueType          - value is nil, non-comparable, or mixes types.
//	ErrDuplicateValue     - duplicate value on a Unique axis.
//	ErrValueNotFound      - value absent from a Unique axis lookup.
//	ErrNoLookup           - value lookup requested on an Ordered axis.
//	ErrDuplicateName      - duplicate axis name in a Set.
//	ErrNameNotFound       - no axis of the given name in a Set.
//	ErrPositionOutOfRange - axis position outside [-n, n).
//	ErrAxisNotFound       - axis identity not present in a Set.
//	ErrInvalidAxisID      - identifier is not int, string or *Axis.
//	ErrMaskLength         - boolean mask length does not match axis length.
//	ErrBadPermutation     - transpose order is not a full, duplicate-free
//	                        permutation.
package axis
