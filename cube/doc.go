// Package cube implements the labeled n-dimensional array and the engines
// that combine labeled arrays by axis name.
//
// A Cube owns exactly one axis.Set and one *nd.Array; the array's rank and
// dimension lengths always match the set. Cubes are immutable: every
// operation returns a new Cube and leaves its operands untouched.
//
// The package's real content is the combining machinery:
//
//   - the alignment resolver reconciles two same-named axes into one
//     canonical axis plus gather indices for the side(s) that must be
//     reindexed. Identity (same *Axis pointer) short-circuits everything;
//     Unique axes are reindexed by value lookup; Ordered axes must agree
//     positionally; when kinds mix, the Ordered axis wins because it can
//     represent orderings and duplicates a Unique axis cannot.
//   - the broadcaster expands an array to a target axis set by appending
//     unit dimensions for missing names and permuting into target order.
//   - Apply2 (and the arithmetic/comparison wrappers on top of it) walks
//     both operands' axes, aligns the shared names, appends the
//     passthrough axes, broadcasts both sides and applies an elementwise
//     kernel. Result axis order is the left operand's order first, then
//     the right operand's extra axes — so A+B and B+A may order axes
//     differently while holding identical values per label.
//   - Concatenate joins cubes along an existing axis name (the combined
//     axis is Unique by default, Ordered via AsOrdered). Stack joins
//     cubes along a wholly new axis. Both build a widened union of the
//     remaining axes (Ordered wins over Unique on name collisions), align
//     every cube to it, and broadcast missing axes as unit dimensions.
//
// Reductions (Reduce, Sum, Mean, Min, Max, Prod), group-by on Ordered
// axes, filtering, and the axis-replacement surface round out the type.
//
// Everything is synchronous and pure; a failed operation never publishes
// a partially built Cube.
package cube
