package axis_test

import (
	"fmt"

	"github.com/katalvlaran/ncube/axis"
)

// ExampleAxis demonstrates unique-axis lookup and positional transforms.
func ExampleAxis() {
	mo, _ := axis.NewUnique("month", "jan", "feb", "mar", "apr")

	pos, _ := mo.PositionOf("mar")
	fmt.Println("mar at", pos)

	q1, _ := mo.Slice(0, 3)
	fmt.Println(q1)

	// Output:
	// mar at 2
	// Unique("month", [jan feb mar])
}

// ExampleSet demonstrates name-based resolution and transposition.
func ExampleSet() {
	yr, _ := axis.NewRange("year", 2024, 2026)
	qr, _ := axis.NewUnique("quarter", "q1", "q2", "q3", "q4")
	s, _ := axis.NewSet(yr, qr)

	i, _ := s.Index("quarter")
	fmt.Println("quarter at", i)

	ts, _, _ := s.Transpose("quarter", "year")
	fmt.Println(ts.Names())

	// Output:
	// quarter at 1
	// [quarter year]
}
