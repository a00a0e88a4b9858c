package nd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ncube/nd"
)

// TestNew_Validation covers shape validation and zero-length dimensions.
func TestNew_Validation(t *testing.T) {
	_, err := nd.New(2, -1)
	assert.ErrorIs(t, err, nd.ErrBadShape, "negative dimension must error")

	a, err := nd.New(2, 0, 3)
	require.NoError(t, err, "zero-length dimensions are legal")
	assert.Zero(t, a.Size(), "empty array")

	s := nd.Scalar(7)
	assert.Zero(t, s.Rank(), "scalar is rank 0")
	v, err := s.At()
	require.NoError(t, err)
	assert.Equal(t, 7.0, v, "scalar value")
}

// TestFromValues_LengthCheck ensures data length must match the shape.
func TestFromValues_LengthCheck(t *testing.T) {
	_, err := nd.FromValues([]float64{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, nd.ErrShapeMismatch, "3 values cannot fill a 2x2 array")
}

// TestArray_At verifies row-major addressing and bounds checks.
func TestArray_At(t *testing.T) {
	a, err := nd.FromValues([]float64{0, 1, 2, 3, 4, 5}, 2, 3)
	require.NoError(t, err)

	v, err := a.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v, "last element, row-major")

	v, err = a.At(-1, -3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v, "negative indices count from the end")

	_, err = a.At(1)
	assert.ErrorIs(t, err, nd.ErrShapeMismatch, "wrong index arity")
	_, err = a.At(2, 0)
	assert.ErrorIs(t, err, nd.ErrOutOfRange, "row past the end")
}

// TestArray_Reshape verifies element-count preservation.
func TestArray_Reshape(t *testing.T) {
	a, err := nd.FromValues([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	b, err := a.Reshape(3, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, b.Shape())
	assert.Equal(t, a.Values(), b.Values(), "data order unchanged")

	_, err = a.Reshape(4, 2)
	assert.ErrorIs(t, err, nd.ErrShapeMismatch, "element count must be preserved")
}

// TestArray_ExpandDims verifies unit-dimension insertion at every position.
func TestArray_ExpandDims(t *testing.T) {
	a, err := nd.FromValues([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	front, err := a.ExpandDims(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, front.Shape())

	back, err := a.ExpandDims(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1}, back.Shape())
	assert.Equal(t, a.Values(), back.Values(), "layout unchanged")

	_, err = a.ExpandDims(4)
	assert.ErrorIs(t, err, nd.ErrOutOfRange, "insert position past the widened rank")
}

// TestArray_Transpose verifies dimension permutation and its validation.
func TestArray_Transpose(t *testing.T) {
	// [[1 2 3]
	//  [4 5 6]]
	a, err := nd.FromValues([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	b, err := a.Transpose(1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, b.Shape())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, b.Values(), "columns become rows")

	// Transposing back restores the original exactly.
	c, err := b.Transpose(1, 0)
	require.NoError(t, err)
	assert.Equal(t, a.Shape(), c.Shape())
	assert.Equal(t, a.Values(), c.Values(), "round trip")

	_, err = a.Transpose(0)
	assert.ErrorIs(t, err, nd.ErrBadPermutation, "wrong cardinality")
	_, err = a.Transpose(0, 0)
	assert.ErrorIs(t, err, nd.ErrBadPermutation, "duplicate entry")
}

// TestArray_Transpose3D exercises a rank-3 permutation.
func TestArray_Transpose3D(t *testing.T) {
	a, err := nd.FromValues([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 2, 2, 2)
	require.NoError(t, err)

	b, err := a.Transpose(2, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2}, b.Shape())
	// b[i,j,k] = a[j,k,i]
	got, err := b.At(1, 0, 1)
	require.NoError(t, err)
	want, err := a.At(0, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got, "b[1,0,1] must equal a[0,1,1]")
}

// TestArray_Take verifies gathering along each dimension.
func TestArray_Take(t *testing.T) {
	// [[1 2 3]
	//  [4 5 6]]
	a, err := nd.FromValues([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	rows, err := a.Take(0, []int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6, 1, 2, 3}, rows.Values(), "row swap")

	cols, err := a.Take(1, []int{2, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, cols.Shape())
	assert.Equal(t, []float64{3, 3, 1, 6, 6, 4}, cols.Values(), "repeat and reorder columns")

	neg, err := a.Take(-1, []int{-1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, neg.Values(), "negative dimension and position")

	_, err = a.Take(0, []int{2})
	assert.ErrorIs(t, err, nd.ErrOutOfRange, "position past the dimension")
	_, err = a.Take(2, []int{0})
	assert.ErrorIs(t, err, nd.ErrOutOfRange, "dimension past the rank")
}

// TestArray_Compress verifies boolean filtering along a dimension.
func TestArray_Compress(t *testing.T) {
	a, err := nd.FromValues([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	b, err := a.Compress(1, []bool{true, false, true})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, b.Shape())
	assert.Equal(t, []float64{1, 3, 4, 6}, b.Values(), "kept columns")

	_, err = a.Compress(1, []bool{true})
	assert.ErrorIs(t, err, nd.ErrBadMask, "mask length must match the dimension")
}

// TestArray_Repeat verifies in-place repetition along a dimension.
func TestArray_Repeat(t *testing.T) {
	a, err := nd.FromValues([]float64{1, 2}, 2)
	require.NoError(t, err)

	b, err := a.Repeat(0, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 2, 2, 2}, b.Values(), "each element repeated in place")

	// The broadcast-materializing case: repeat a unit dimension.
	u, err := a.ExpandDims(0)
	require.NoError(t, err)
	c, err := u.Repeat(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, c.Shape())
	assert.Equal(t, []float64{1, 2, 1, 2}, c.Values(), "unit dimension replicated")

	_, err = a.Repeat(0, -1)
	assert.ErrorIs(t, err, nd.ErrBadShape, "negative count")
}
