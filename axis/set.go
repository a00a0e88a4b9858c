// SPDX-License-Identifier: MIT

// Package axis - Set: an ordered, name-unique tuple of axes.
//
// Purpose:
//   - Describe the shape of a labeled array as an ordered axis tuple.
//   - Resolve axis identifiers (position, name, identity) to positions.
//   - Provide pure structural transformations (Replace, Insert, Remove,
//     Swap, Transpose, Complement); every one returns a new Set and the
//     receiver is unaffected.
//
// A Set shares its *Axis elements by reference: transformations that leave
// an axis untouched reuse the same pointer, which is exactly what keeps
// the identity fast path of the alignment resolver effective.
package axis

import (
	"fmt"
	"strings"
)

// Set is an ordered collection of axes with pairwise-distinct names.
type Set struct {
	axes   []*Axis
	byName map[string]int // name→position, built once at construction
}

// NewSet builds a Set from the given axes. An empty Set (zero axes,
// describing a scalar array) is legal.
//
// Errors: ErrDuplicateName.
// Complexity: O(n).
func NewSet(axes ...*Axis) (*Set, error) {
	owned := make([]*Axis, len(axes))
	byName := make(map[string]int, len(axes))
	for i, a := range axes {
		if _, dup := byName[a.name]; dup {
			return nil, fmt.Errorf("axis %q: %w", a.name, ErrDuplicateName)
		}
		byName[a.name] = i
		owned[i] = a
	}
	return &Set{axes: owned, byName: byName}, nil
}

// Len returns the number of axes. Complexity: O(1).
func (s *Set) Len() int { return len(s.axes) }

// Shape returns the axis lengths in order. Complexity: O(n).
func (s *Set) Shape() []int {
	out := make([]int, len(s.axes))
	for i, a := range s.axes {
		out[i] = a.Len()
	}
	return out
}

// Axes returns a copy of the axis tuple. The *Axis elements are shared —
// axes themselves are immutable. Complexity: O(n).
func (s *Set) Axes() []*Axis {
	out := make([]*Axis, len(s.axes))
	copy(out, s.axes)
	return out
}

// Names returns the axis names in order. Complexity: O(n).
func (s *Set) Names() []string {
	out := make([]string, len(s.axes))
	for i, a := range s.axes {
		out[i] = a.name
	}
	return out
}

// At returns the axis at the given position. Negative positions count from
// the end (At(-1) is the last axis).
//
// Errors: ErrPositionOutOfRange.
func (s *Set) At(pos int) (*Axis, error) {
	i, err := s.normalize(pos)
	if err != nil {
		return nil, err
	}
	return s.axes[i], nil
}

// ByName returns the axis with the given name.
//
// Errors: ErrNameNotFound. Complexity: O(1).
func (s *Set) ByName(name string) (*Axis, error) {
	i, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("axis %q: %w", name, ErrNameNotFound)
	}
	return s.axes[i], nil
}

// Lookup resolves an axis identifier to (axis, position). The identifier
// may be an int position (negative counts from the end), a string name, or
// an *Axis identity (pointer equality).
//
// Errors: ErrPositionOutOfRange, ErrNameNotFound, ErrAxisNotFound,
// ErrInvalidAxisID.
func (s *Set) Lookup(id any) (*Axis, int, error) {
	switch v := id.(type) {
	case int:
		i, err := s.normalize(v)
		if err != nil {
			return nil, 0, err
		}
		return s.axes[i], i, nil
	case string:
		i, ok := s.byName[v]
		if !ok {
			return nil, 0, fmt.Errorf("axis %q: %w", v, ErrNameNotFound)
		}
		return s.axes[i], i, nil
	case *Axis:
		for i, a := range s.axes {
			if a == v {
				return a, i, nil
			}
		}
		return nil, 0, fmt.Errorf("axis %q: %w", v.name, ErrAxisNotFound)
	default:
		return nil, 0, fmt.Errorf("%T: %w", id, ErrInvalidAxisID)
	}
}

// Index resolves an axis identifier to its position. See Lookup for the
// accepted identifier types and errors.
func (s *Set) Index(id any) (int, error) {
	_, i, err := s.Lookup(id)
	return i, err
}

// Contains reports whether the identifier resolves to an axis of the Set.
// Unresolvable identifiers (including unsupported types) report false.
func (s *Set) Contains(id any) bool {
	_, _, err := s.Lookup(id)
	return err == nil
}

// normalize maps a possibly-negative position into [0, n).
func (s *Set) normalize(pos int) (int, error) {
	n := len(s.axes)
	if pos < 0 {
		pos += n
	}
	if pos < 0 || pos >= n {
		return 0, fmt.Errorf("position %d of %d: %w", pos, n, ErrPositionOutOfRange)
	}
	return pos, nil
}

// Replace returns a new Set with the identified axis replaced by na.
// The resulting name tuple is re-checked for duplicates; axis lengths are
// deliberately NOT compared — the array layer owns that invariant.
//
// Errors: lookup errors, ErrDuplicateName.
func (s *Set) Replace(id any, na *Axis) (*Set, error) {
	_, i, err := s.Lookup(id)
	if err != nil {
		return nil, err
	}
	axes := s.Axes()
	axes[i] = na
	return NewSet(axes...)
}

// Insert returns a new Set with axis na inserted at position pos.
// pos may range over [0, n]; negative positions count from the end.
//
// Errors: ErrPositionOutOfRange, ErrDuplicateName.
func (s *Set) Insert(na *Axis, pos int) (*Set, error) {
	n := len(s.axes)
	if pos < 0 {
		pos += n
	}
	if pos < 0 || pos > n {
		return nil, fmt.Errorf("insert position %d of %d: %w", pos, n, ErrPositionOutOfRange)
	}
	axes := make([]*Axis, 0, n+1)
	axes = append(axes, s.axes[:pos]...)
	axes = append(axes, na)
	axes = append(axes, s.axes[pos:]...)
	return NewSet(axes...)
}

// Remove returns a new Set without the identified axis.
//
// Errors: lookup errors.
func (s *Set) Remove(id any) (*Set, error) {
	_, i, err := s.Lookup(id)
	if err != nil {
		return nil, err
	}
	axes := make([]*Axis, 0, len(s.axes)-1)
	axes = append(axes, s.axes[:i]...)
	axes = append(axes, s.axes[i+1:]...)
	return NewSet(axes...)
}

// Swap returns a new Set with the two identified axes exchanged.
//
// Errors: lookup errors.
func (s *Set) Swap(id1, id2 any) (*Set, error) {
	_, i, err := s.Lookup(id1)
	if err != nil {
		return nil, err
	}
	_, j, err := s.Lookup(id2)
	if err != nil {
		return nil, err
	}
	axes := s.Axes()
	axes[i], axes[j] = axes[j], axes[i]
	return NewSet(axes...)
}

// Transpose reorders the axes by the given identifiers and returns the new
// Set together with the applied permutation (new position → old position),
// which callers feed to the backing array's dimension permute.
//
// The order must identify every axis exactly once.
//
// Errors: ErrBadPermutation (wrong cardinality or duplicate entries),
// lookup errors for unknown identifiers.
// Complexity: O(n).
func (s *Set) Transpose(order ...any) (*Set, []int, error) {
	n := len(s.axes)
	if len(order) != n {
		return nil, nil, fmt.Errorf("order has %d entries for %d axes: %w", len(order), n, ErrBadPermutation)
	}
	perm := make([]int, n)
	seen := make([]bool, n)
	axes := make([]*Axis, n)
	for k, id := range order {
		a, i, err := s.Lookup(id)
		if err != nil {
			return nil, nil, err
		}
		if seen[i] {
			return nil, nil, fmt.Errorf("axis %q listed twice: %w", a.name, ErrBadPermutation)
		}
		seen[i] = true
		perm[k] = i
		axes[k] = a
	}
	ns, err := NewSet(axes...)
	if err != nil {
		return nil, nil, err
	}
	return ns, perm, nil
}

// Complement resolves the given identifiers and returns the positions NOT
// covered by them, in ascending order. Identifying the same axis twice is
// rejected.
//
// Errors: ErrBadPermutation (duplicate identifiers), lookup errors.
func (s *Set) Complement(ids ...any) ([]int, error) {
	covered := make([]bool, len(s.axes))
	for _, id := range ids {
		a, i, err := s.Lookup(id)
		if err != nil {
			return nil, err
		}
		if covered[i] {
			return nil, fmt.Errorf("axis %q listed twice: %w", a.name, ErrBadPermutation)
		}
		covered[i] = true
	}
	out := make([]int, 0, len(s.axes)-len(ids))
	for i, c := range covered {
		if !c {
			out = append(out, i)
		}
	}
	return out, nil
}

// String implements fmt.Stringer: one axis per line, in order.
func (s *Set) String() string {
	lines := make([]string, len(s.axes))
	for i, a := range s.axes {
		lines[i] = a.String()
	}
	return strings.Join(lines, "\n")
}
