package grid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubenet/grid"
	"github.com/katalvlaran/cubenet/internal/fixtures"
)

// TestDirection_Turns checks the rotation table and facing numbers.
func TestDirection_Turns(t *testing.T) {
	cases := []struct {
		d             grid.Direction
		cw, ccw, back grid.Direction
		number        int
	}{
		{grid.Right, grid.Down, grid.Up, grid.Left, 0},
		{grid.Down, grid.Left, grid.Right, grid.Up, 1},
		{grid.Left, grid.Up, grid.Down, grid.Right, 2},
		{grid.Up, grid.Right, grid.Left, grid.Down, 3},
	}
	for _, tc := range cases {
		t.Run(tc.d.String(), func(t *testing.T) {
			assert.Equal(t, tc.cw, tc.d.TurnCW())
			assert.Equal(t, tc.ccw, tc.d.TurnCCW())
			assert.Equal(t, tc.back, tc.d.Opposite())
			assert.Equal(t, tc.number, tc.d.Number())
			assert.Equal(t, tc.d, tc.d.TurnCW().TurnCCW())
			assert.Equal(t, grid.Point{}, tc.d.Delta().Add(tc.d.Opposite().Delta()))
		})
	}
}

// TestDirection_Text verifies the JSON-facing names.
func TestDirection_Text(t *testing.T) {
	for _, d := range grid.Directions {
		b, err := d.MarshalText()
		require.NoError(t, err)
		var back grid.Direction
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, d, back)
	}
	var d grid.Direction
	require.ErrorIs(t, d.UnmarshalText([]byte("north")), grid.ErrSyntax)
}

// TestGCD covers the side-length helper.
func TestGCD(t *testing.T) {
	assert.Equal(t, 4, grid.GCD(16, 12))
	assert.Equal(t, 50, grid.GCD(150, 200))
	assert.Equal(t, 7, grid.GCD(-7, 0))
	assert.Equal(t, 0, grid.GCD(0, 0))
	assert.Equal(t, -1, grid.Sign(-9))
	assert.Equal(t, 9, grid.Abs(-9))
}

// TestParse_Sample parses the canonical puzzle.
func TestParse_Sample(t *testing.T) {
	p, err := grid.Parse(strings.NewReader(fixtures.Sample))
	require.NoError(t, err)

	assert.Equal(t, 16, p.Grid.Width)
	assert.Equal(t, 12, p.Grid.Height)
	assert.Equal(t, grid.Void, p.Grid.At(grid.Point{X: 0, Y: 0}))
	assert.Equal(t, grid.Free, p.Grid.At(grid.Point{X: 8, Y: 0}))
	assert.Equal(t, grid.Stone, p.Grid.At(grid.Point{X: 11, Y: 0}))
	// short rows are padded with Void
	assert.Equal(t, grid.Void, p.Grid.At(grid.Point{X: 14, Y: 0}))
	assert.Equal(t, grid.Void, p.Grid.At(grid.Point{X: -1, Y: 3}))

	start, err := p.Grid.Start()
	require.NoError(t, err)
	assert.Equal(t, grid.Point{X: 8, Y: 0}, start)

	require.Len(t, p.Moves, 13)
	assert.Equal(t, grid.Move{Kind: grid.Forward, Steps: 10}, p.Moves[0])
	assert.Equal(t, grid.Move{Kind: grid.TurnRight}, p.Moves[1])
	assert.Equal(t, grid.Move{Kind: grid.TurnLeft}, p.Moves[3])
	assert.Equal(t, grid.Move{Kind: grid.Forward, Steps: 5}, p.Moves[12])
}

// TestParse_Errors verifies malformed inputs are rejected.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"NoBlankLine", "...\n10R", grid.ErrSyntax},
		{"BadBoardChar", "..x\n\n10R", grid.ErrSyntax},
		{"BadMoveChar", "...\n\n10X", grid.ErrSyntax},
		{"EmptyMoves", "...\n\n   ", grid.ErrSyntax},
		{"EmptyBoard", "\n\n10R", grid.ErrEmptyBoard},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestGrid_NoStart checks the start lookup on a blocked first row.
func TestGrid_NoStart(t *testing.T) {
	g, err := grid.ParseGrid("  ##\n....")
	require.NoError(t, err)
	_, err = g.Start()
	require.ErrorIs(t, err, grid.ErrNoStart)
}

// TestGrid_String round-trips the board glyphs.
func TestGrid_String(t *testing.T) {
	g, err := grid.ParseGrid(" .#\n...")
	require.NoError(t, err)
	assert.Equal(t, " .#\n...\n", g.String())
}

// TestParseMoves_TrailingTurn keeps a final turn without a number.
func TestParseMoves_TrailingTurn(t *testing.T) {
	ms, err := grid.ParseMoves("3L\n")
	require.NoError(t, err)
	assert.Equal(t, []grid.Move{{Kind: grid.Forward, Steps: 3}, {Kind: grid.TurnLeft}}, ms)
	assert.Equal(t, "3", ms[0].String())
}
