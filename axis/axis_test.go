package axis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ncube/axis"
)

// TestNewUnique_Basic verifies construction, accessors and kind tagging.
func TestNewUnique_Basic(t *testing.T) {
	a, err := axis.NewUnique("month", "jan", "feb", "mar")
	require.NoError(t, err, "valid unique axis must construct")

	assert.Equal(t, "month", a.Name(), "name accessor")
	assert.Equal(t, axis.Unique, a.Kind(), "kind tag")
	assert.Equal(t, 3, a.Len(), "length")
	assert.Equal(t, []any{"jan", "feb", "mar"}, a.Values(), "values in construction order")
}

// TestNewUnique_EmptyName ensures an empty name errors ErrEmptyName.
func TestNewUnique_EmptyName(t *testing.T) {
	_, err := axis.NewUnique("", 1, 2)
	assert.ErrorIs(t, err, axis.ErrEmptyName, "empty name must be rejected")
}

// TestNewUnique_DuplicateValue ensures duplicate values error ErrDuplicateValue.
func TestNewUnique_DuplicateValue(t *testing.T) {
	_, err := axis.NewUnique("month", "jan", "feb", "jan")
	assert.ErrorIs(t, err, axis.ErrDuplicateValue, "duplicate value on unique axis must error")
}

// TestNewAxis_MixedTypes ensures the element type is fixed by the first value.
func TestNewAxis_MixedTypes(t *testing.T) {
	_, err := axis.NewUnique("x", 1, "two")
	assert.ErrorIs(t, err, axis.ErrValueType, "mixed value types must error")

	_, err = axis.NewOrdered("x", 1.0, 2)
	assert.ErrorIs(t, err, axis.ErrValueType, "float64 then int must error")
}

// TestNewAxis_NilValue ensures nil values are rejected.
func TestNewAxis_NilValue(t *testing.T) {
	_, err := axis.NewOrdered("x", 1, nil)
	assert.ErrorIs(t, err, axis.ErrValueType, "nil value must error")
}

// TestNewOrdered_AllowsDuplicates verifies the Ordered kind permits repeats
// and refuses value lookup.
func TestNewOrdered_AllowsDuplicates(t *testing.T) {
	a, err := axis.NewOrdered("city", "rome", "oslo", "rome")
	require.NoError(t, err, "ordered axis may repeat values")
	assert.Equal(t, axis.Ordered, a.Kind(), "kind tag")

	_, err = a.PositionOf("rome")
	assert.ErrorIs(t, err, axis.ErrNoLookup, "ordered axes must not offer value lookup")
	assert.True(t, a.Contains("oslo"), "Contains scans ordered values")
	assert.False(t, a.Contains("kyiv"), "absent value")
}

// TestNewRange verifies the consecutive-int convenience constructor.
func TestNewRange(t *testing.T) {
	a, err := axis.NewRange("year", 2020, 2023)
	require.NoError(t, err)
	assert.Equal(t, []any{2020, 2021, 2022}, a.Values(), "half-open int range")

	empty, err := axis.NewRange("year", 5, 5)
	require.NoError(t, err)
	assert.Zero(t, empty.Len(), "empty range is a legal empty axis")
}

// TestAxis_PositionOf verifies O(1) unique lookup and its error cases.
func TestAxis_PositionOf(t *testing.T) {
	a, err := axis.NewUnique("month", "jan", "feb", "mar")
	require.NoError(t, err)

	i, err := a.PositionOf("feb")
	require.NoError(t, err)
	assert.Equal(t, 1, i, "position of feb")

	_, err = a.PositionOf("dec")
	assert.ErrorIs(t, err, axis.ErrValueNotFound, "missing value must error")
}

// TestAxis_PositionsOf verifies the gather-building bulk lookup.
func TestAxis_PositionsOf(t *testing.T) {
	a, err := axis.NewUnique("v", 10, 20, 30)
	require.NoError(t, err)

	got, err := a.PositionsOf([]any{30, 10, 20})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, got, "bulk positions in input order")

	_, err = a.PositionsOf([]any{10, 40})
	assert.ErrorIs(t, err, axis.ErrValueNotFound, "any missing value must fail the whole lookup")
}

// TestAxis_At verifies positional access with negative positions.
func TestAxis_At(t *testing.T) {
	a, err := axis.NewUnique("month", "jan", "feb", "mar")
	require.NoError(t, err)

	v, err := a.At(-1)
	require.NoError(t, err)
	assert.Equal(t, "mar", v, "negative position counts from the end")

	_, err = a.At(3)
	assert.ErrorIs(t, err, axis.ErrPositionOutOfRange, "position past the end must error")
	_, err = a.At(-4)
	assert.ErrorIs(t, err, axis.ErrPositionOutOfRange, "position before the start must error")
}

// TestAxis_Rename verifies renaming keeps kind and values and is non-destructive.
func TestAxis_Rename(t *testing.T) {
	a, err := axis.NewUnique("month", "jan", "feb")
	require.NoError(t, err)

	b, err := a.Rename("M")
	require.NoError(t, err)
	assert.Equal(t, "M", b.Name(), "new name")
	assert.Equal(t, a.Values(), b.Values(), "values unchanged")
	assert.Equal(t, "month", a.Name(), "receiver unaffected")

	_, err = a.Rename("")
	assert.ErrorIs(t, err, axis.ErrEmptyName, "empty new name must error")
}

// TestAxis_Take verifies reordering, negative positions, and the
// no-silent-downgrade rule for Unique axes.
func TestAxis_Take(t *testing.T) {
	a, err := axis.NewUnique("month", "jan", "feb", "mar")
	require.NoError(t, err)

	b, err := a.Take([]int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, []any{"mar", "jan"}, b.Values(), "gather in given order")
	assert.Equal(t, axis.Unique, b.Kind(), "kind preserved")

	c, err := a.Take([]int{-1})
	require.NoError(t, err)
	assert.Equal(t, []any{"mar"}, c.Values(), "negative position")

	_, err = a.Take([]int{0, 0})
	assert.ErrorIs(t, err, axis.ErrDuplicateValue, "repeating a position on a unique axis must fail, not downgrade")

	_, err = a.Take([]int{5})
	assert.ErrorIs(t, err, axis.ErrPositionOutOfRange, "out-of-range position")

	// Ordered axes may repeat positions freely.
	o, err := axis.NewOrdered("city", "rome", "oslo")
	require.NoError(t, err)
	oo, err := o.Take([]int{0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []any{"rome", "rome", "oslo"}, oo.Values(), "ordered take may duplicate")
}

// TestAxis_Slice verifies half-open slicing with negative bounds.
func TestAxis_Slice(t *testing.T) {
	a, err := axis.NewUnique("month", "jan", "feb", "mar", "apr")
	require.NoError(t, err)

	b, err := a.Slice(1, -1)
	require.NoError(t, err)
	assert.Equal(t, []any{"feb", "mar"}, b.Values(), "negative stop counts from the end")

	_, err = a.Slice(3, 1)
	assert.ErrorIs(t, err, axis.ErrPositionOutOfRange, "start past stop must error")
}

// TestAxis_Compress verifies boolean filtering and mask validation.
func TestAxis_Compress(t *testing.T) {
	a, err := axis.NewUnique("v", 10, 20, 30)
	require.NoError(t, err)

	b, err := a.Compress([]bool{true, false, true})
	require.NoError(t, err)
	assert.Equal(t, []any{10, 30}, b.Values(), "kept positions")

	_, err = a.Compress([]bool{true})
	assert.ErrorIs(t, err, axis.ErrMaskLength, "short mask must error")
}

// TestAxis_Match verifies value selection in axis order on both kinds.
func TestAxis_Match(t *testing.T) {
	u, err := axis.NewUnique("month", "jan", "feb", "mar")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, u.Match("mar", "jan", "dec"), "axis order, absent values ignored")

	o, err := axis.NewOrdered("city", "rome", "oslo", "rome")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, o.Match("rome"), "all duplicate positions matched")
}

// TestAxis_SameValues verifies the ordered alignment predicate.
func TestAxis_SameValues(t *testing.T) {
	a, err := axis.NewOrdered("c", "x", "y", "x")
	require.NoError(t, err)
	b, err := axis.NewOrdered("c", "x", "y", "x")
	require.NoError(t, err)
	c, err := axis.NewOrdered("c", "y", "x", "x")
	require.NoError(t, err)

	assert.True(t, a.SameValues(b), "equal sequences")
	assert.False(t, a.SameValues(c), "same multiset, different order")
}
