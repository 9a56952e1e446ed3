package facenet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/cubenet/core"
	"github.com/katalvlaran/cubenet/grid"
	"github.com/katalvlaran/cubenet/gridgraph"
)

// Extract scans g for the six faces of a cube net.
// Returns ErrEmptyGrid, ErrFaceCount, ErrDisconnected or, with WithStrict,
// ErrRaggedFaces.
// Complexity: O(W×H).
func Extract(g *grid.Grid, opts ...Option) (*Net, error) {
	if g == nil {
		return nil, ErrEmptyGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	side := grid.GCD(g.Width, g.Height)
	n := &Net{
		Side:     side,
		Cols:     g.Width / side,
		Rows:     g.Height / side,
		faceAt:   make(map[grid.Point]FaceID, FaceCount),
		cornerAt: make(map[grid.Point]CornerID, 4*FaceCount),
	}

	occ := make([][]int, n.Rows)
	for fy := 0; fy < n.Rows; fy++ {
		occ[fy] = make([]int, n.Cols)
		for fx := 0; fx < n.Cols; fx++ {
			filled := countFilled(g, fx, fy, side)
			if filled == 0 {
				continue
			}
			if o.Strict && filled != side*side {
				return nil, fmt.Errorf("%w: block %d,%d has %d of %d cells",
					ErrRaggedFaces, fx, fy, filled, side*side)
			}
			occ[fy][fx] = 1
			n.addFace(grid.Point{X: fx, Y: fy})
		}
	}
	if len(n.Faces) != FaceCount {
		return nil, fmt.Errorf("%w: found %d with side %d", ErrFaceCount, len(n.Faces), side)
	}

	var err error
	if n.occupancy, err = gridgraph.From2D(occ, gridgraph.Conn4); err != nil {
		return nil, fmt.Errorf("facenet: occupancy grid: %w", err)
	}
	if comps := n.occupancy.ConnectedComponents(); len(comps) != 1 {
		return nil, fmt.Errorf("%w: %d groups", ErrDisconnected, len(comps))
	}
	n.linkTwins()

	return n, nil
}

// countFilled returns how many cells of block (fx,fy) are not Void.
func countFilled(g *grid.Grid, fx, fy, side int) int {
	filled := 0
	for y := fy * side; y < (fy+1)*side; y++ {
		for x := fx * side; x < (fx+1)*side; x++ {
			if !g.IsVoid(grid.Point{X: x, Y: y}) {
				filled++
			}
		}
	}
	return filled
}

// addFace appends the face at pos with its corners and edges.
func (n *Net) addFace(pos grid.Point) {
	f := Face{ID: FaceID(len(n.Faces)), Pos: pos}
	for k, off := range cornerOffsets {
		f.Corners[k] = n.corner(pos.Add(off), f.ID)
	}
	for k, h := range edgeHeadings {
		e := Edge{
			ID:      EdgeID(len(n.Edges)),
			Face:    f.ID,
			From:    f.Corners[k],
			To:      f.Corners[(k+1)%4],
			Heading: h,
			Twin:    NoEdge,
		}
		f.Edges[k] = e.ID
		n.Edges = append(n.Edges, e)
	}
	n.faceAt[pos] = f.ID
	n.Faces = append(n.Faces, f)
}

// corner returns the id of the corner at p, creating it on first use, and
// records that face touches it.
func (n *Net) corner(p grid.Point, face FaceID) CornerID {
	id, ok := n.cornerAt[p]
	if !ok {
		id = CornerID(len(n.Corners))
		n.Corners = append(n.Corners, Corner{ID: id, Pos: p})
		n.cornerAt[p] = id
	}
	n.Corners[id].Faces = append(n.Corners[id].Faces, face)
	return id
}

// linkTwins pairs every seam edge with the reversed edge of its neighbor.
func (n *Net) linkTwins() {
	for i := range n.Edges {
		e := &n.Edges[i]
		nb, ok := n.faceAt[n.Faces[e.Face].Pos.Add(e.Outward().Delta())]
		if !ok {
			continue
		}
		for _, cand := range n.Faces[nb].Edges {
			if n.Edges[cand].Heading == e.Heading.Opposite() {
				e.Twin = cand
				break
			}
		}
	}
}

// FaceAt returns the face at block coordinate p.
func (n *Net) FaceAt(p grid.Point) (FaceID, bool) {
	id, ok := n.faceAt[p]
	return id, ok
}

// CornerAt returns the corner at lattice point p.
func (n *Net) CornerAt(p grid.Point) (CornerID, bool) {
	id, ok := n.cornerAt[p]
	return id, ok
}

// FaceOfCell returns the face containing board cell p.
func (n *Net) FaceOfCell(p grid.Point) (FaceID, bool) {
	if p.X < 0 || p.Y < 0 {
		return 0, false
	}
	return n.FaceAt(grid.Point{X: p.X / n.Side, Y: p.Y / n.Side})
}

// BoundaryEdges returns the ids of all boundary edges in ascending order.
func (n *Net) BoundaryEdges() []EdgeID {
	var out []EdgeID
	for _, e := range n.Edges {
		if e.Boundary() {
			out = append(out, e.ID)
		}
	}
	return out
}

// SeamCount returns the number of shared edges between faces.
func (n *Net) SeamCount() int {
	return (len(n.Edges) - len(n.BoundaryEdges())) / 2
}

// CornerCell returns the in-face board cell adjacent to corner c of face f.
// The corner's cell position is clamped into the face's cell range, which
// is how a segment of boundary cells gets its endpoints.
func (n *Net) CornerCell(f FaceID, c CornerID) grid.Point {
	face, corner := n.Faces[f].Pos, n.Corners[c].Pos
	clamp := func(v, lo int) int {
		switch {
		case v < lo:
			return lo
		case v > lo+n.Side-1:
			return lo + n.Side - 1
		}
		return v
	}
	return grid.Point{
		X: clamp(corner.X*n.Side, face.X*n.Side),
		Y: clamp(corner.Y*n.Side, face.Y*n.Side),
	}
}

// Graph returns the face-adjacency graph: one vertex per face, ID
// Face.Pos.String(), one edge per seam.
func (n *Net) Graph() (*core.Graph, error) {
	return n.occupancy.ToCoreGraph()
}

// FaceByVertex maps a Graph vertex ID back to its face.
func (n *Net) FaceByVertex(id string) (FaceID, bool) {
	var p grid.Point
	if _, err := fmt.Sscanf(id, "%d,%d", &p.X, &p.Y); err != nil {
		return 0, false
	}
	return n.FaceAt(p)
}

// Root returns the face with the lexicographically smallest coordinate.
func (n *Net) Root() FaceID {
	ids := make([]FaceID, len(n.Faces))
	for i := range n.Faces {
		ids[i] = FaceID(i)
	}
	sort.Slice(ids, func(i, j int) bool { return n.Faces[ids[i]].Pos.Less(n.Faces[ids[j]].Pos) })
	return ids[0]
}

// Layout renders the face map, 'X' for a face and '.' for none.
func (n *Net) Layout() []string {
	out := make([]string, n.Rows)
	for y := 0; y < n.Rows; y++ {
		var sb strings.Builder
		for x := 0; x < n.Cols; x++ {
			if _, ok := n.faceAt[grid.Point{X: x, Y: y}]; ok {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		out[y] = sb.String()
	}
	return out
}
