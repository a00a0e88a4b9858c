// SPDX-License-Identifier: MIT

// Package cube - alignment resolver and broadcaster.
//
// Purpose:
//   - alignAxes reconciles two same-named axes into one canonical axis
//     plus gather indices for whichever side must be reindexed.
//   - broadcastTo expands a backing array to a target axis set: unit
//     dimensions are appended for names the source lacks, then the
//     dimensions are permuted into target order.
//
// The resolver's branch order is a strict priority:
//  1. identity (same *Axis pointer)    → no work at all;
//  2. Unique × Unique                  → reindex the right side into the
//     left side's value order (equal lengths required);
//  3. Unique × Ordered (either way)    → the Ordered axis is retained —
//     it may carry duplicates or an order a Unique axis cannot
//     represent — and the Unique side is reindexed via its lookup;
//  4. Ordered × Ordered                → no reindexing is possible
//     (duplicate values make positions ambiguous); the value sequences
//     must already agree element-wise.
//
// Only Unique axes can be reindexed safely, because only they guarantee a
// value→position lookup. The same "Ordered wins" precedence is applied by
// the union-building of Concatenate/Stack, so the whole package follows
// one widening rule.
package cube

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ncube/axis"
	"github.com/katalvlaran/ncube/nd"
)

// alignErr classifies an axis lookup failure into the alignment taxonomy,
// keeping the axis name in the message.
func alignErr(err error, name string) error {
	if errors.Is(err, axis.ErrValueNotFound) || errors.Is(err, axis.ErrNoLookup) {
		return fmt.Errorf("axis %q: %w", name, ErrAlignValue)
	}
	return err
}

// alignAxes reconciles axes a and b, which share a name. It returns the
// canonical result axis and up to two gather-index slices: gatherA
// reindexes a's backing dimension, gatherB reindexes b's. A nil gather
// means that side is already in canonical order. Gather indices address
// the side being reindexed: applying gatherB to b's dimension reorders it
// into the result axis's value order.
//
// Errors: ErrAlignLength, ErrAlignValue, ErrAlignOrder.
// Complexity: O(n) for the lookup pass; O(1) on the identity fast path.
func alignAxes(a, b *axis.Axis) (res *axis.Axis, gatherA, gatherB []int, err error) {
	// Identity fast path: the same axis object needs no reconciliation.
	// This is the majority case when axes are reused across cubes.
	if a == b {
		return a, nil, nil, nil
	}

	aU := a.Kind() == axis.Unique
	bU := b.Kind() == axis.Unique
	switch {
	case aU && bU:
		if a.Len() != b.Len() {
			return nil, nil, nil, fmt.Errorf("axis %q: %d vs %d: %w", a.Name(), a.Len(), b.Len(), ErrAlignLength)
		}
		// Reorder b into a's value order: for each value of a, its position
		// in b. Equal lengths plus a full hit mean the value sets coincide.
		gatherB, err = b.PositionsOf(a.Values())
		if err != nil {
			return nil, nil, nil, alignErr(err, a.Name())
		}
		return a, nil, gatherB, nil

	case aU: // b is Ordered and wins; reindex the Unique side.
		gatherA, err = a.PositionsOf(b.Values())
		if err != nil {
			return nil, nil, nil, alignErr(err, a.Name())
		}
		return b, gatherA, nil, nil

	case bU: // a is Ordered and wins; reindex the Unique side.
		gatherB, err = b.PositionsOf(a.Values())
		if err != nil {
			return nil, nil, nil, alignErr(err, a.Name())
		}
		return a, nil, gatherB, nil

	default: // both Ordered: they must already agree positionally.
		if !a.SameValues(b) {
			return nil, nil, nil, fmt.Errorf("axis %q: %w", a.Name(), ErrAlignOrder)
		}
		return a, nil, nil, nil
	}
}

// broadcastTo expands arr, whose dimensions are described by source, to
// the target set. For each target axis in order the source is searched by
// name; misses append a unit dimension at the (growing) end. The recorded
// dimension indices then permute the array into target order.
//
// Errors: ErrBroadcast on a post-insertion rank mismatch (defensive —
// unreachable when target is a well-formed superset of source).
// Complexity: O(size · rank).
func broadcastTo(arr *nd.Array, source *axis.Set, target *axis.Set) (*nd.Array, error) {
	perm := make([]int, 0, target.Len())
	cur := arr
	extra := arr.Rank() // next position for an appended unit dimension
	for _, t := range target.Axes() {
		i, err := source.Index(t.Name())
		switch {
		case err == nil:
			perm = append(perm, i)
		case errors.Is(err, axis.ErrNameNotFound):
			cur, err = cur.ExpandDims(cur.Rank())
			if err != nil {
				return nil, err
			}
			perm = append(perm, extra)
			extra++
		default:
			return nil, err
		}
	}
	if cur.Rank() != target.Len() {
		return nil, fmt.Errorf("rank %d for %d axes: %w", cur.Rank(), target.Len(), ErrBroadcast)
	}
	return cur.Transpose(perm...)
}
