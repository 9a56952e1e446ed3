package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubenet/matrix"
)

var (
	xAxis = matrix.Vec3{1, 0, 0}
	yAxis = matrix.Vec3{0, 1, 0}
	zAxis = matrix.Vec3{0, 0, 1}
)

// TestQuarterTurn_Axes verifies from→to, to→-from and the fixed axis.
func TestQuarterTurn_Axes(t *testing.T) {
	r, err := matrix.NewQuarterTurn(xAxis, zAxis)
	require.NoError(t, err)

	cases := []struct {
		name string
		in   matrix.Vec3
		want matrix.Vec3
	}{
		{"FromToTo", xAxis, zAxis},
		{"ToToMinusFrom", zAxis, matrix.Vec3{-1, 0, 0}},
		{"NormalFixed", yAxis, yAxis},
		{"Mixed", matrix.Vec3{1, 1, -1}, matrix.Vec3{1, 1, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Apply(r, tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestQuarterTurn_Invalid rejects parallel and non-unit axes.
func TestQuarterTurn_Invalid(t *testing.T) {
	_, err := matrix.NewQuarterTurn(xAxis, xAxis)
	require.ErrorIs(t, err, matrix.ErrZeroAxis)
	_, err = matrix.NewQuarterTurn(matrix.Vec3{2, 0, 0}, zAxis)
	require.ErrorIs(t, err, matrix.ErrZeroAxis)
}

// TestQuarterTurn_FourIsIdentity composes four quarter turns.
func TestQuarterTurn_FourIsIdentity(t *testing.T) {
	r, _ := matrix.NewQuarterTurn(yAxis, zAxis)
	got, err := matrix.Compose(r, r, r, r)
	require.NoError(t, err)
	I, _ := matrix.NewIdentity(4)
	assert.True(t, I.Equal(got.(*matrix.Dense)))
}

// TestHinge creases a face lying right of the unit square up onto x = 1.
func TestHinge(t *testing.T) {
	h, err := matrix.NewHinge(matrix.Vec3{1, 0, -1}, xAxis, zAxis)
	require.NoError(t, err)

	// points on the hinge line stay put
	p, err := matrix.Apply(h, matrix.Vec3{1, 5, -1})
	require.NoError(t, err)
	assert.Equal(t, matrix.Vec3{1, 5, -1}, p)

	// the far edge of the unfolded neighbour lands on top
	p, err = matrix.Apply(h, matrix.Vec3{3, 1, -1})
	require.NoError(t, err)
	assert.Equal(t, matrix.Vec3{1, 1, 1}, p)
}

// TestTranslation moves a point.
func TestTranslation(t *testing.T) {
	p, err := matrix.Apply(matrix.NewTranslation(matrix.Vec3{2, 0, -1}), matrix.Vec3{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, matrix.Vec3{3, 1, 0}, p)
}
