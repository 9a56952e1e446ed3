package fold_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubenet/facenet"
	"github.com/katalvlaran/cubenet/fold"
	"github.com/katalvlaran/cubenet/grid"
	"github.com/katalvlaran/cubenet/internal/fixtures"
)

func net(t *testing.T, board string) *facenet.Net {
	t.Helper()
	g, err := grid.ParseGrid(board)
	require.NoError(t, err)
	n, err := facenet.Extract(g)
	require.NoError(t, err)
	return n
}

// TestFold_AllNets folds every cube net onto the eight cube vertices.
func TestFold_AllNets(t *testing.T) {
	names := make([]string, 0, len(fixtures.Layouts))
	for name := range fixtures.Layouts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			n := net(t, fixtures.Board(fixtures.Layouts[name], 2))
			res, err := fold.Fold(n)
			require.NoError(t, err)

			require.Len(t, res.Order, facenet.FaceCount)
			assert.Equal(t, n.Root(), res.Order[0])

			degree := map[grid.Point3]int{}
			for c, p := range res.Corners {
				for _, v := range []int{p.X, p.Y, p.Z} {
					require.True(t, v == 1 || v == -1, "corner %v folded to %v", n.Corners[c].Pos, p)
				}
				degree[p] += n.Corners[c].Degree()
				assert.Equal(t, p, res.Key(facenet.CornerID(c)))
			}
			assert.Len(t, degree, 8)
			for p, d := range degree {
				assert.Equal(t, 3, d, "cube vertex %v", p)
			}
		})
	}
}

// TestFold_Sample checks concrete positions on the sample net.
func TestFold_Sample(t *testing.T) {
	n := net(t, fixtures.SampleBoard)
	res, err := fold.Fold(n)
	require.NoError(t, err)

	at := func(x, y int) grid.Point3 {
		c, ok := n.CornerAt(grid.Point{X: x, Y: y})
		require.True(t, ok)
		return res.Corners[c]
	}
	// root face (0,1) lies flat at z = -1
	assert.Equal(t, grid.Point3{X: -1, Y: -1, Z: -1}, at(0, 1))
	assert.Equal(t, grid.Point3{X: -1, Y: 1, Z: -1}, at(0, 2))
	assert.Equal(t, grid.Point3{X: 1, Y: 1, Z: -1}, at(1, 2))
	assert.Equal(t, grid.Point3{X: 1, Y: -1, Z: -1}, at(1, 1))
	// face (1,1) stands up on the +x side
	assert.Equal(t, grid.Point3{X: 1, Y: -1, Z: 1}, at(2, 1))
	assert.Equal(t, grid.Point3{X: 1, Y: 1, Z: 1}, at(2, 2))
}

// TestFold_Errors covers nil input and layouts that are no cube net.
func TestFold_Errors(t *testing.T) {
	_, err := fold.Fold(nil)
	require.ErrorIs(t, err, fold.ErrNilNet)

	_, err = fold.Fold(net(t, fixtures.Board(fixtures.Malformed["strip"], 1)))
	require.ErrorIs(t, err, fold.ErrOverlappingFaces)

	_, err = fold.Fold(net(t, fixtures.Board(fixtures.Malformed["overlap"], 1)))
	require.ErrorIs(t, err, fold.ErrOverlappingFaces)

	_, err = fold.Fold(net(t, fixtures.Board(fixtures.Malformed["block"], 1)))
	require.Error(t, err)
	assert.True(t,
		errors.Is(err, fold.ErrInconsistentCorner) || errors.Is(err, fold.ErrOverlappingFaces),
		"unexpected error %v", err)
}
