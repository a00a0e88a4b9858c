// SPDX-License-Identifier: MIT

// Package axis - Axis value type (named, immutable, ordered values).
//
// Purpose:
//   - Wrap an ordered value sequence with a name and a Kind tag.
//   - Guarantee immutability: every transformation returns a new *Axis.
//   - Build the Unique value→position table once, inside the constructor,
//     so a published axis is safe for lock-free concurrent reads.
//
// Determinism & Performance:
//   - PositionOf/Contains are O(1) map hits on Unique axes.
//   - Take/Compress/Slice are O(k) copies; no hidden allocations beyond
//     the result axis.
package axis

import (
	"fmt"
	"reflect"
)

// Kind tags the two axis flavors. The distinction is a tagged enum, not a
// type hierarchy: all combining logic switches on the tag.
type Kind uint8

const (
	// Unique marks an axis with pairwise-distinct values and a value→position
	// lookup table. Only Unique axes can be reindexed by value during
	// alignment.
	Unique Kind = iota

	// Ordered marks an axis that permits duplicate values and supports only
	// positional operations.
	Ordered
)

// String implements fmt.Stringer for Kind.
func (k Kind) String() string {
	if k == Unique {
		return "Unique"
	}
	return "Ordered"
}

// Axis is a named, immutable, ordered sequence of values.
//
// The element type is fixed per axis by the dynamic type of the first
// value; all values must share it and must be comparable (map-key legal).
// Axis identity (pointer equality) is significant: combining engines skip
// alignment entirely when both operands hold the same *Axis.
type Axis struct {
	name   string
	values []any       // fixed at construction, never mutated
	kind   Kind        // Unique or Ordered
	lookup map[any]int // value→position; non-nil iff kind == Unique
}

// NewUnique builds a Unique axis from name and values.
// Values must be pairwise distinct, share one comparable dynamic type,
// and the name must be non-empty.
//
// Errors: ErrEmptyName, ErrValueType, ErrDuplicateValue.
// Complexity: O(n) time and space (lookup table included).
func NewUnique(name string, values ...any) (*Axis, error) {
	return newAxis(name, Unique, values)
}

// NewOrdered builds an Ordered axis from name and values. Duplicates are
// allowed; no lookup table is built.
//
// Errors: ErrEmptyName, ErrValueType.
// Complexity: O(n) time and space.
func NewOrdered(name string, values ...any) (*Axis, error) {
	return newAxis(name, Ordered, values)
}

// NewRange builds a Unique axis of consecutive ints [start, stop).
// A stop not greater than start yields an empty axis.
func NewRange(name string, start, stop int) (*Axis, error) {
	if stop < start {
		stop = start
	}
	values := make([]any, 0, stop-start)
	for v := start; v < stop; v++ {
		values = append(values, v)
	}
	return newAxis(name, Unique, values)
}

// newAxis is the single construction path shared by both kinds.
// Stage 1 (Validate): name, element type homogeneity, comparability.
// Stage 2 (Prepare): copy values into an owned slice.
// Stage 3 (Finalize): build the Unique lookup table, reject duplicates.
func newAxis(name string, kind Kind, values []any) (*Axis, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	owned := make([]any, len(values))
	var elem reflect.Type
	for i, v := range values {
		if v == nil {
			return nil, fmt.Errorf("axis %q, position %d: %w", name, i, ErrValueType)
		}
		t := reflect.TypeOf(v)
		if elem == nil {
			// First value fixes the element type for the whole axis.
			if !t.Comparable() {
				return nil, fmt.Errorf("axis %q, type %s: %w", name, t, ErrValueType)
			}
			elem = t
		} else if t != elem {
			return nil, fmt.Errorf("axis %q, position %d: %s vs %s: %w", name, i, t, elem, ErrValueType)
		}
		owned[i] = v
	}

	a := &Axis{name: name, values: owned, kind: kind}
	if kind == Unique {
		a.lookup = make(map[any]int, len(owned))
		for i, v := range owned {
			if _, dup := a.lookup[v]; dup {
				return nil, fmt.Errorf("axis %q, value %v: %w", name, v, ErrDuplicateValue)
			}
			a.lookup[v] = i
		}
	}
	return a, nil
}

// Name returns the axis name. Complexity: O(1).
func (a *Axis) Name() string { return a.name }

// Kind returns the axis kind tag. Complexity: O(1).
func (a *Axis) Kind() Kind { return a.kind }

// Len returns the number of values. Complexity: O(1).
func (a *Axis) Len() int { return len(a.values) }

// Values returns a copy of the value sequence. The copy keeps the axis
// immutable even if the caller mutates the returned slice.
// Complexity: O(n).
func (a *Axis) Values() []any {
	out := make([]any, len(a.values))
	copy(out, a.values)
	return out
}

// At returns the value at position i. Negative positions count from the
// end (At(-1) is the last value).
//
// Errors: ErrPositionOutOfRange.
func (a *Axis) At(i int) (any, error) {
	j, err := a.position(i)
	if err != nil {
		return nil, err
	}
	return a.values[j], nil
}

// position normalizes a possibly-negative position into [0, n).
func (a *Axis) position(i int) (int, error) {
	n := len(a.values)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("axis %q, position %d of %d: %w", a.name, i, n, ErrPositionOutOfRange)
	}
	return i, nil
}

// PositionOf returns the position of value v on a Unique axis.
//
// Errors: ErrNoLookup on an Ordered axis, ErrValueNotFound when v is
// absent. Complexity: O(1).
func (a *Axis) PositionOf(v any) (int, error) {
	if a.kind != Unique {
		return 0, fmt.Errorf("axis %q: %w", a.name, ErrNoLookup)
	}
	i, ok := a.lookup[v]
	if !ok {
		return 0, fmt.Errorf("axis %q, value %v: %w", a.name, v, ErrValueNotFound)
	}
	return i, nil
}

// PositionsOf maps every value to its position on a Unique axis, in input
// order. This is the gather-building primitive of the alignment resolver.
//
// Errors: ErrNoLookup, ErrValueNotFound. Complexity: O(len(values)).
func (a *Axis) PositionsOf(values []any) ([]int, error) {
	if a.kind != Unique {
		return nil, fmt.Errorf("axis %q: %w", a.name, ErrNoLookup)
	}
	out := make([]int, len(values))
	for i, v := range values {
		j, ok := a.lookup[v]
		if !ok {
			return nil, fmt.Errorf("axis %q, value %v: %w", a.name, v, ErrValueNotFound)
		}
		out[i] = j
	}
	return out, nil
}

// Contains reports whether v occurs on the axis. O(1) on Unique axes,
// O(n) scan on Ordered axes.
func (a *Axis) Contains(v any) bool {
	if a.kind == Unique {
		_, ok := a.lookup[v]
		return ok
	}
	for _, w := range a.values {
		if w == v {
			return true
		}
	}
	return false
}

// Match returns the positions whose value is contained in keep, in axis
// order. Missing values are simply not matched; Match never fails, which
// makes it usable on both kinds.
// Complexity: O(n + len(keep)).
func (a *Axis) Match(keep ...any) []int {
	want := make(map[any]struct{}, len(keep))
	for _, v := range keep {
		want[v] = struct{}{}
	}
	var out []int
	for i, v := range a.values {
		if _, ok := want[v]; ok {
			out = append(out, i)
		}
	}
	return out
}

// Rename returns a new axis of the same kind and values under a new name.
//
// Errors: ErrEmptyName.
func (a *Axis) Rename(name string) (*Axis, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	// Values are already validated; share the backing slice and lookup —
	// both are read-only for the lifetime of either axis.
	return &Axis{name: name, values: a.values, kind: a.kind, lookup: a.lookup}, nil
}

// Take returns a new axis of the same kind holding the values at the given
// positions, in the given order. Negative positions count from the end.
// A Take that repeats a position on a Unique axis fails rather than
// downgrading the kind.
//
// Errors: ErrPositionOutOfRange, ErrDuplicateValue.
// Complexity: O(len(indices)).
func (a *Axis) Take(indices []int) (*Axis, error) {
	values := make([]any, len(indices))
	for k, i := range indices {
		j, err := a.position(i)
		if err != nil {
			return nil, err
		}
		values[k] = a.values[j]
	}
	return newAxis(a.name, a.kind, values)
}

// Slice returns the sub-axis [start, stop). Negative bounds count from the
// end; the result keeps the axis kind (a slice never introduces
// duplicates).
//
// Errors: ErrPositionOutOfRange.
func (a *Axis) Slice(start, stop int) (*Axis, error) {
	n := len(a.values)
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 || stop > n || start > stop {
		return nil, fmt.Errorf("axis %q, slice [%d:%d) of %d: %w", a.name, start, stop, n, ErrPositionOutOfRange)
	}
	return newAxis(a.name, a.kind, a.values[start:stop])
}

// Compress returns a new axis keeping the positions where mask is true.
// The mask must cover the whole axis.
//
// Errors: ErrMaskLength.
// Complexity: O(n).
func (a *Axis) Compress(mask []bool) (*Axis, error) {
	if len(mask) != len(a.values) {
		return nil, fmt.Errorf("axis %q, mask %d vs %d: %w", a.name, len(mask), len(a.values), ErrMaskLength)
	}
	var values []any
	for i, keep := range mask {
		if keep {
			values = append(values, a.values[i])
		}
	}
	return newAxis(a.name, a.kind, values)
}

// SameValues reports element-wise equality of the value sequences of a and
// b in current order. This is the Ordered×Ordered alignment predicate.
// Complexity: O(n).
func (a *Axis) SameValues(b *Axis) bool {
	if len(a.values) != len(b.values) {
		return false
	}
	for i, v := range a.values {
		if b.values[i] != v {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer for debugging.
func (a *Axis) String() string {
	return fmt.Sprintf("%s(%q, %v)", a.kind, a.name, a.values)
}
