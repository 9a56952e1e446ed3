package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 islands of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	gg, err := From2D([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}, Conn4)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := gg.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	if want := []int{2, 4}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_Diagonal8 uses Conn8 to join corner-touching cells.
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	gg, err := From2D(grid, Conn8)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}
	comps := gg.ConnectedComponents()
	if len(comps) != 1 || len(comps[0]) != 9 {
		t.Fatalf("got %d components; want 1 of size 9", len(comps))
	}

	gg4, _ := From2D(grid, Conn4)
	if n := len(gg4.ConnectedComponents()); n != 9 {
		t.Errorf("Conn4: got %d components; want 9", n)
	}
}

// TestConnectedComponents_Threshold honours LandThreshold.
func TestConnectedComponents_Threshold(t *testing.T) {
	opts := DefaultGridOptions()
	opts.LandThreshold = 2
	gg, _ := NewGridGraph([][]int{{2, 1, 2}}, opts)
	if n := len(gg.ConnectedComponents()); n != 2 {
		t.Errorf("got %d components; want 2", n)
	}
}

// TestConnectedComponents_EmptyAndAllWater tests edge cases:
//   - completely water grid → zero components
//   - single-cell land grid → one component of size 1
func TestConnectedComponents_EmptyAndAllWater(t *testing.T) {
	gg1, _ := From2D([][]int{{0, 0}, {0, 0}}, Conn4)
	if comps := gg1.ConnectedComponents(); len(comps) != 0 {
		t.Errorf("all-water: got %d components; want 0", len(comps))
	}

	gg2, _ := From2D([][]int{{0, 1}}, Conn4)
	comps := gg2.ConnectedComponents()
	if len(comps) != 1 || len(comps[0]) != 1 {
		t.Fatalf("single land: got %v; want one component of size 1", comps)
	}
	if x, y := gg2.Coordinate(comps[0][0]); x != 1 || y != 0 {
		t.Errorf("Coordinate = (%d,%d); want (1,0)", x, y)
	}
}
