// Package ncube is your in-memory toolkit for labeled n-dimensional
// arrays — numeric data whose dimensions carry names and value labels,
// matched and aligned automatically whenever two arrays meet.
//
// 🚀 What is ncube?
//
//	A small, deterministic library that brings together:
//		• Axes: named value sequences, Unique (fast value lookup) or
//		  Ordered (duplicates allowed, positional only)
//		• Axis sets: ordered, name-unique shape descriptions
//		• Cubes: a dense numeric array coupled to an axis set
//		• Alignment: same-named axes are reconciled by value, not position
//		• Broadcasting: missing axes are replicated automatically
//		• Combining: elementwise arithmetic, concatenation and stacking
//		  across arrays with different (but compatible) axis sets
//		• Reductions and group-by over named axes
//
// ✨ Why choose ncube?
//
//   - Label-safe arithmetic – rows match by value ("feb" meets "feb"),
//     never by accidental position
//   - Rock-solid guarantees – immutable value types, sentinel errors,
//     no partial results
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed loop orders, no map-iteration surprises
//
// Under the hood, everything is organized under three subpackages:
//
//	axis/ — Axis and Set: named labels, lookup, structural transforms
//	nd/   — the dense row-major float64 array and its primitive kernels
//	cube/ — Cube plus the alignment, broadcasting and combining engines
//
// Quick ASCII example:
//
//	         q1  q2  q3  q4                 q1  q2  q3  q4
//	 2024 [  10  11  12  13 ]   +   2025 [  1   2   3   4 ]
//	 2025 [  20  21  22  23 ]       2024 [  5   6   7   8 ]
//
//	adds by year label, not by row position: 2024 meets 2024.
//
// Dive into the runnable programs under examples/ and the package docs of
// axis, nd and cube for the full surface.
//
//	go get github.com/katalvlaran/ncube
package ncube
