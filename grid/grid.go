package grid

import "strings"

// Grid is an immutable rectangular board. Width is the longest input row;
// shorter rows are padded with Void.
type Grid struct {
	Width, Height int
	cells         [][]Field
}

// NewGrid deep-copies rows into a padded rectangular Grid.
// Returns ErrEmptyBoard if rows is empty or every row is empty.
// Complexity: O(W×H).
func NewGrid(rows [][]Field) (*Grid, error) {
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	if len(rows) == 0 || w == 0 {
		return nil, ErrEmptyBoard
	}
	cells := make([][]Field, len(rows))
	for y, r := range rows {
		cells[y] = make([]Field, w) // zero value is Void
		copy(cells[y], r)
	}

	return &Grid{Width: w, Height: len(rows), cells: cells}, nil
}

// InBounds reports whether p lies within the board rectangle.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the field at p; positions outside the board are Void.
func (g *Grid) At(p Point) Field {
	if !g.InBounds(p) {
		return Void
	}
	return g.cells[p.Y][p.X]
}

// IsVoid reports whether p is outside the net.
func (g *Grid) IsVoid(p Point) bool { return g.At(p) == Void }

// CanWalk reports whether p is a Free cell.
func (g *Grid) CanWalk(p Point) bool { return g.At(p) == Free }

// Start returns the leftmost Free cell of the first row.
func (g *Grid) Start() (Point, error) {
	for x := 0; x < g.Width; x++ {
		if g.cells[0][x] == Free {
			return Point{X: x}, nil
		}
	}
	return Point{}, ErrNoStart
}

// String renders the board using the input glyphs.
func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.cells {
		for _, f := range row {
			sb.WriteString(f.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
