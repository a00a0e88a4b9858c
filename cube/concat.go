// SPDX-License-Identifier: MIT

// Package cube - concatenation engine.
//
// Concatenate joins N cubes along an existing axis name; Stack joins them
// along a wholly new axis. Both share one pipeline:
//
//  1. build the leading axis (combined values for Concatenate, the caller's
//     axis for Stack);
//  2. union the remaining axis names across all cubes in first-seen order,
//     widening Unique to Ordered when the same name recurs with mixed
//     kinds (the union must represent whichever cube had the less
//     restrictive axis);
//  3. align every cube's matching axes to the union, applying gathers;
//  4. broadcast every cube to [lead | union] — missing axes become unit
//     dimensions, legal only while broadcasting is enabled — and
//     concatenate the backing arrays along dimension 0.
package cube

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ncube/axis"
	"github.com/katalvlaran/ncube/nd"
)

// DEFAULTS - single source of truth for combine-option zero values.
const (
	// DefaultBroadcast permits cubes that lack a union axis to be replicated
	// along it. When disabled, a missing axis is an error.
	DefaultBroadcast = true

	// DefaultAsUnique builds the combined Concatenate axis as Unique, so
	// duplicate values across the inputs fail fast. AsOrdered() flips this.
	DefaultAsUnique = true
)

// Option configures Concatenate and Stack.
type Option func(*options)

type options struct {
	broadcast bool
	asUnique  bool
}

func gatherOptions(opts []Option) options {
	o := options{broadcast: DefaultBroadcast, asUnique: DefaultAsUnique}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBroadcast controls whether cubes missing a union axis are replicated
// along it (default true). With broadcasting disabled, every cube must
// carry every union axis or the operation fails with ErrUnmatchedAxis.
func WithBroadcast(enabled bool) Option {
	return func(o *options) { o.broadcast = enabled }
}

// AsOrdered builds the combined Concatenate axis as Ordered, permitting
// duplicate values across the inputs. Stack ignores this option — the new
// axis is passed in by the caller and carries its own kind.
func AsOrdered() Option {
	return func(o *options) { o.asUnique = false }
}

// Concatenate joins the cubes along the existing axis named axisName.
// Every cube must carry that axis; its value sequences are concatenated in
// input order into the new leading axis (Unique by default — duplicates
// across inputs fail with axis.ErrDuplicateValue). All other axes are
// unioned, aligned and broadcast; the result's leading dimension holds the
// cubes' data blocks in input order.
//
// Errors: ErrEmptyInput, axis.ErrNameNotFound (a cube lacks axisName),
// axis.ErrDuplicateValue, alignment errors, ErrUnmatchedAxis.
func Concatenate(cubes []*Cube, axisName string, opts ...Option) (*Cube, error) {
	if len(cubes) == 0 {
		return nil, ErrEmptyInput
	}
	o := gatherOptions(opts)

	// Combine the named axis values in input order.
	var combined []any
	for k, c := range cubes {
		a, err := c.axes.ByName(axisName)
		if err != nil {
			return nil, fmt.Errorf("cube %d: %w", k, err)
		}
		combined = append(combined, a.Values()...)
	}
	var lead *axis.Axis
	var err error
	if o.asUnique {
		lead, err = axis.NewUnique(axisName, combined...)
	} else {
		lead, err = axis.NewOrdered(axisName, combined...)
	}
	if err != nil {
		return nil, err
	}

	// The lead axis is handled separately; drop it from the union.
	union := unionAxes(cubes)
	rest := union[:0]
	for _, a := range union {
		if a.Name() != axisName {
			rest = append(rest, a)
		}
	}
	return combineAlong(cubes, lead, rest, o.broadcast)
}

// Stack joins the cubes along the wholly new axis na. The axis name must
// not occur on any input and its length must equal the number of cubes;
// cube k becomes the slice at position k of the new leading axis.
//
// Errors: ErrEmptyInput, ErrAxisCollision, ErrStackLength, alignment
// errors, ErrUnmatchedAxis.
func Stack(cubes []*Cube, na *axis.Axis, opts ...Option) (*Cube, error) {
	if len(cubes) == 0 {
		return nil, ErrEmptyInput
	}
	o := gatherOptions(opts)
	for k, c := range cubes {
		if c.axes.Contains(na.Name()) {
			return nil, fmt.Errorf("cube %d, axis %q: %w", k, na.Name(), ErrAxisCollision)
		}
	}
	if na.Len() != len(cubes) {
		return nil, fmt.Errorf("axis %q has %d values for %d cubes: %w", na.Name(), na.Len(), len(cubes), ErrStackLength)
	}
	return combineAlong(cubes, na, unionAxes(cubes), o.broadcast)
}

// unionAxes collects one axis per distinct name across all cubes, in
// first-seen order. When a name recurs with mixed kinds the Ordered axis
// replaces the Unique one: widening, so the union can represent the less
// restrictive side.
func unionAxes(cubes []*Cube) []*axis.Axis {
	var list []*axis.Axis
	pos := make(map[string]int)
	for _, c := range cubes {
		for _, a := range c.axes.Axes() {
			i, seen := pos[a.Name()]
			if !seen {
				pos[a.Name()] = len(list)
				list = append(list, a)
				continue
			}
			if list[i].Kind() == axis.Unique && a.Kind() == axis.Ordered {
				list[i] = a
			}
		}
	}
	return list
}

// combineAlong aligns every cube to the union axes, broadcasts everything
// to [lead | union], and concatenates along the leading dimension.
func combineAlong(cubes []*Cube, lead *axis.Axis, union []*axis.Axis, broadcast bool) (*Cube, error) {
	arrays := make([]*nd.Array, len(cubes))
	for k, c := range cubes {
		arrays[k] = c.data
	}

	for _, base := range union {
		for k, c := range cubes {
			a, i, err := c.axes.Lookup(base.Name())
			if err != nil {
				if !errors.Is(err, axis.ErrNameNotFound) {
					return nil, err
				}
				if !broadcast {
					return nil, fmt.Errorf("cube %d, axis %q: %w", k, base.Name(), ErrUnmatchedAxis)
				}
				continue // replicated later by the broadcaster
			}
			if a == base {
				continue // identity: this cube donated the union axis
			}
			if a.Kind() == axis.Unique {
				// Widening guarantees base is Unique only when every cube's
				// axis of this name is Unique; equal lengths are then required.
				if base.Kind() == axis.Unique && base.Len() != a.Len() {
					return nil, fmt.Errorf("axis %q: %d vs %d: %w", base.Name(), base.Len(), a.Len(), ErrAlignLength)
				}
				gather, err := a.PositionsOf(base.Values())
				if err != nil {
					return nil, alignErr(err, base.Name())
				}
				if arrays[k], err = arrays[k].Take(i, gather); err != nil {
					return nil, err
				}
			} else if !a.SameValues(base) {
				return nil, fmt.Errorf("axis %q: %w", base.Name(), ErrAlignOrder)
			}
		}
	}

	full := make([]*axis.Axis, 0, len(union)+1)
	full = append(full, lead)
	full = append(full, union...)
	target, err := axis.NewSet(full...)
	if err != nil {
		return nil, err
	}
	for k, c := range cubes {
		if arrays[k], err = broadcastTo(arrays[k], c.axes, target); err != nil {
			return nil, err
		}
	}
	data, err := nd.Concat0(arrays...)
	if err != nil {
		return nil, err
	}
	return New(data, target)
}
