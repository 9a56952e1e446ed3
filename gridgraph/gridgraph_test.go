package gridgraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/cubenet/gridgraph"
)

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"NilRows", nil, gridgraph.ErrEmptyGrid},
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds and IsLand on a 3×2 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 1, 0},
		{1, 0, 1},
	}, gridgraph.Conn4)
	if err != nil {
		t.Fatalf("From2D error: %v", err)
	}

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
	if !gg.IsLand(1, 0) || gg.IsLand(0, 0) || gg.IsLand(5, 5) {
		t.Errorf("IsLand misclassified cells")
	}
}

// TestNewGridGraph_DeepCopy ensures later mutation of the input has no effect.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	in := [][]int{{1, 1}}
	gg, _ := gridgraph.From2D(in, gridgraph.Conn4)
	in[0][0] = 0
	if gg.CellValues[0][0] != 1 {
		t.Fatalf("CellValues aliased the input slice")
	}
}

// TestToCoreGraph_Cross converts a cross-shaped net occupancy grid.
//
//	0 1 0 0
//	1 1 1 1
//	0 1 0 0
func TestToCoreGraph_Cross(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 1, 0, 0},
		{1, 1, 1, 1},
		{0, 1, 0, 0},
	}, gridgraph.Conn4)
	if err != nil {
		t.Fatal(err)
	}
	g, err := gg.ToCoreGraph()
	if err != nil {
		t.Fatal(err)
	}
	if g.VertexCount() != 6 {
		t.Errorf("VertexCount = %d; want 6", g.VertexCount())
	}
	if g.EdgeCount() != 5 {
		t.Errorf("EdgeCount = %d; want 5", g.EdgeCount())
	}
	if g.Weighted() {
		t.Errorf("graph should be unweighted")
	}
	if !g.HasEdge("1,1", "1,0") || g.HasEdge("0,1", "1,0") {
		t.Errorf("unexpected adjacency")
	}
	x, ok := g.Meta("3,1", gridgraph.MetaX)
	if !ok || x.(int) != 3 {
		t.Errorf("meta x of 3,1 = %v; want 3", x)
	}
	if g.HasVertex("0,0") {
		t.Errorf("water cell 0,0 must not become a vertex")
	}
}

// TestToCoreGraph_Conn8 adds diagonal edges once.
func TestToCoreGraph_Conn8(t *testing.T) {
	gg, _ := gridgraph.From2D([][]int{
		{1, 0},
		{0, 1},
	}, gridgraph.Conn8)
	g, err := gg.ToCoreGraph()
	if err != nil {
		t.Fatal(err)
	}
	if g.EdgeCount() != 1 || !g.HasEdge("0,0", "1,1") {
		t.Errorf("want single diagonal edge, got %d edges", g.EdgeCount())
	}
}

// TestNeighborOffsets lists orthogonal steps first, diagonals only with Conn8.
func TestNeighborOffsets(t *testing.T) {
	four, err := gridgraph.From2D([][]int{{1}}, gridgraph.Conn4)
	if err != nil {
		t.Fatalf("From2D error: %v", err)
	}
	want4 := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if got := four.NeighborOffsets(); !reflect.DeepEqual(got, want4) {
		t.Errorf("Conn4 offsets=%v; want %v", got, want4)
	}

	eight, err := gridgraph.From2D([][]int{{1}}, gridgraph.Conn8)
	if err != nil {
		t.Fatalf("From2D error: %v", err)
	}
	got := eight.NeighborOffsets()
	if len(got) != 8 {
		t.Fatalf("Conn8 offsets=%d; want 8", len(got))
	}
	for _, o := range got {
		if o == [2]int{0, 0} || o[0] < -1 || o[0] > 1 || o[1] < -1 || o[1] > 1 {
			t.Errorf("Conn8 offset %v out of range", o)
		}
	}
}
