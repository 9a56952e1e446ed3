package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/cubenet/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		offsets:       offsets,
	}, nil
}

// From2D is NewGridGraph with default options and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is in bounds and at or above LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the neighbor offsets for gg.Conn.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.offsets
}

// VertexID formats the vertex identifier of cell (x,y) used by ToCoreGraph.
func VertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ToCoreGraph converts the land cells into an unweighted, undirected *core.Graph.
// Each land cell (x,y) becomes a vertex "x,y" with metadata {x,y,value};
// neighboring land cells under gg.Conn are joined by an edge.
// Complexity: O(W×H×d) time, Memory: O(W×H).
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			id := VertexID(x, y)
			if err := g.AddVertex(id); err != nil {
				return nil, err
			}
			_ = g.SetMeta(id, MetaX, x)
			_ = g.SetMeta(id, MetaY, y)
			_ = g.SetMeta(id, MetaValue, gg.CellValues[y][x])
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			uID := VertexID(x, y)
			for _, d := range gg.offsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.IsLand(nx, ny) {
					continue
				}
				vID := VertexID(nx, ny)
				if g.HasEdge(uID, vID) {
					continue
				}
				if _, err := g.AddEdge(uID, vID, 0); err != nil {
					return nil, fmt.Errorf("gridgraph: edge %s-%s: %w", uID, vID, err)
				}
			}
		}
	}

	return g, nil
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
