package cube_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ncube/axis"
	"github.com/katalvlaran/ncube/cube"
)

// quarterCube builds the 2x2 fixture:
//
//	       q1 q2
//	 2024   1  2
//	 2025   3  4
func quarterCube(t *testing.T) *cube.Cube {
	t.Helper()
	year, err := axis.NewUnique("year", 2024, 2025)
	require.NoError(t, err)
	quarter, err := axis.NewUnique("quarter", "q1", "q2")
	require.NoError(t, err)
	c, err := cube.FromValues([]float64{1, 2, 3, 4}, year, quarter)
	require.NoError(t, err)
	return c
}

// TestSum_OneAxis collapses a single axis, keeping the other.
func TestSum_OneAxis(t *testing.T) {
	c := quarterCube(t)

	byYear, err := c.Sum("quarter")
	require.NoError(t, err)
	assert.Equal(t, []string{"year"}, byYear.Axes().Names())
	assert.Equal(t, []float64{3, 7}, byYear.Values().Values(), "rows summed")

	byQuarter, err := c.Sum("year")
	require.NoError(t, err)
	assert.Equal(t, []string{"quarter"}, byQuarter.Axes().Names())
	assert.Equal(t, []float64{4, 6}, byQuarter.Values().Values(), "columns summed")
}

// TestSum_AllAxes collapses everything to a scalar cube.
func TestSum_AllAxes(t *testing.T) {
	c := quarterCube(t)

	total, err := c.Sum()
	require.NoError(t, err)
	assert.Zero(t, total.Rank())
	v, err := total.At()
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)
}

// TestReduceKeep is the dual: name what survives instead of what goes.
func TestReduceKeep(t *testing.T) {
	c := quarterCube(t)

	kept, err := c.ReduceKeep(func(vs []float64) float64 {
		s := 0.0
		for _, v := range vs {
			s += v
		}
		return s
	}, "quarter")
	require.NoError(t, err)
	assert.Equal(t, []string{"quarter"}, kept.Axes().Names())
	assert.Equal(t, []float64{4, 6}, kept.Values().Values())
}

// TestReduce_Statistics spot-checks the named folds.
func TestReduce_Statistics(t *testing.T) {
	c := quarterCube(t)

	mean, err := c.Mean("quarter")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 3.5}, mean.Values().Values())

	lo, err := c.Min()
	require.NoError(t, err)
	v, err := lo.At()
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	hi, err := c.Max("year")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, hi.Values().Values())

	prod, err := c.Prod()
	require.NoError(t, err)
	v, err = prod.At()
	require.NoError(t, err)
	assert.Equal(t, 24.0, v)
}

// TestReduce_Errors covers identifier validation.
func TestReduce_Errors(t *testing.T) {
	c := quarterCube(t)

	_, err := c.Sum("decade")
	assert.ErrorIs(t, err, axis.ErrNameNotFound)
	_, err = c.Sum("year", "year")
	assert.ErrorIs(t, err, axis.ErrBadPermutation, "the same axis twice")
}

// TestMean_EmptyFiber yields NaN rather than panicking.
func TestMean_EmptyFiber(t *testing.T) {
	month, err := axis.NewUnique("month")
	require.NoError(t, err)
	c, err := cube.FromValues(nil, month)
	require.NoError(t, err)

	m, err := c.Mean()
	require.NoError(t, err)
	v, err := m.At()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

// TestGroupBy_FirstSeen collapses duplicate Ordered labels in first-seen
// order and produces a Unique axis.
func TestGroupBy_FirstSeen(t *testing.T) {
	tag, err := axis.NewOrdered("tag", "a", "b", "a")
	require.NoError(t, err)
	c, err := cube.FromValues([]float64{1, 2, 3}, tag)
	require.NoError(t, err)

	g, err := c.GroupBy("tag", func(vs []float64) float64 {
		s := 0.0
		for _, v := range vs {
			s += v
		}
		return s
	})
	require.NoError(t, err)
	a, err := g.Axis("tag")
	require.NoError(t, err)
	assert.Equal(t, axis.Unique, a.Kind())
	assert.Equal(t, []any{"a", "b"}, a.Values())
	assert.Equal(t, []float64{4, 2}, g.Values().Values(), "a: 1+3, b: 2")
}

// TestGroupBy_UniquePassthrough returns the Cube unchanged: every group on
// a Unique axis has exactly one member.
func TestGroupBy_UniquePassthrough(t *testing.T) {
	c := quarterCube(t)
	g, err := c.GroupBy("quarter", func(vs []float64) float64 { return vs[0] })
	require.NoError(t, err)
	assert.Same(t, c, g)
}

// TestGroupBySorted orders the distinct values ascending.
func TestGroupBySorted(t *testing.T) {
	tag, err := axis.NewOrdered("tag", "b", "a", "b")
	require.NoError(t, err)
	c, err := cube.FromValues([]float64{1, 2, 3}, tag)
	require.NoError(t, err)

	g, err := c.GroupBySorted("tag", func(vs []float64) float64 {
		s := 0.0
		for _, v := range vs {
			s += v
		}
		return s
	})
	require.NoError(t, err)
	a, err := g.Axis("tag")
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, a.Values())
	assert.Equal(t, []float64{2, 4}, g.Values().Values(), "a: 2, b: 1+3")
}

// TestGroupBy_InnerAxis verifies grouping on a non-trailing axis of a
// rank-2 cube: the grouped dimension returns to its original position.
func TestGroupBy_InnerAxis(t *testing.T) {
	day, err := axis.NewOrdered("day", "mon", "mon", "tue")
	require.NoError(t, err)
	shift, err := axis.NewUnique("shift", "am", "pm")
	require.NoError(t, err)
	// day x shift:
	//        am pm
	//  mon    1  2
	//  mon    3  4
	//  tue    5  6
	c, err := cube.FromValues([]float64{1, 2, 3, 4, 5, 6}, day, shift)
	require.NoError(t, err)

	g, err := c.GroupBy("day", func(vs []float64) float64 {
		s := 0.0
		for _, v := range vs {
			s += v
		}
		return s
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"day", "shift"}, g.Axes().Names())
	assert.Equal(t, []int{2, 2}, g.Shape())
	assert.Equal(t, []float64{4, 6, 5, 6}, g.Values().Values(), "mon folded per shift")
}

// TestGroupBySorted_Unorderable rejects value types without an ordering.
func TestGroupBySorted_Unorderable(t *testing.T) {
	tag, err := axis.NewOrdered("tag", true, false, true)
	require.NoError(t, err)
	c, err := cube.FromValues([]float64{1, 2, 3}, tag)
	require.NoError(t, err)

	_, err = c.GroupBySorted("tag", func(vs []float64) float64 { return vs[0] })
	assert.ErrorIs(t, err, axis.ErrValueType)
}
