package fold

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/cubenet/bfs"
	"github.com/katalvlaran/cubenet/facenet"
	"github.com/katalvlaran/cubenet/grid"
	"github.com/katalvlaran/cubenet/matrix"
)

// Sentinel errors for folding.
var (
	// ErrNilNet is returned for a nil net.
	ErrNilNet = errors.New("fold: net is nil")

	// ErrInconsistentCorner is returned when one net corner folds onto two
	// different cube vertices.
	ErrInconsistentCorner = errors.New("fold: corner folds onto two cube vertices")

	// ErrOverlappingFaces is returned when two faces fold onto one cube side.
	ErrOverlappingFaces = errors.New("fold: two faces fold onto the same cube side")
)

// homogeneous is the size of the transforms.
const homogeneous = 4

// zAxis is the outward normal of the root face's neighbors after folding.
var zAxis = matrix.Vec3{0, 0, 1}

// Result holds the folded positions of a net.
type Result struct {
	// Corners[c] is the cube vertex of net corner c.
	Corners []grid.Point3

	// Transforms[f] maps the frame of face f onto the cube.
	Transforms []matrix.Matrix

	// Order lists the faces in the order they were folded.
	Order []facenet.FaceID
}

// Key returns the cube vertex of corner c. It is the matching key used to
// pair boundary edges.
func (r *Result) Key(c facenet.CornerID) grid.Point3 {
	return r.Corners[c]
}

// folder carries the state of one Fold run.
type folder struct {
	net     *facenet.Net
	res     *Result
	placed  []bool
	centers map[grid.Point3]facenet.FaceID
}

// Fold computes the cube position of every corner of n.
// Returns ErrNilNet, ErrInconsistentCorner or ErrOverlappingFaces.
// Complexity: O(F) transforms of constant size.
func Fold(n *facenet.Net) (*Result, error) {
	if n == nil {
		return nil, ErrNilNet
	}
	g, err := n.Graph()
	if err != nil {
		return nil, fmt.Errorf("fold: face graph: %w", err)
	}

	fo := &folder{
		net: n,
		res: &Result{
			Corners:    make([]grid.Point3, len(n.Corners)),
			Transforms: make([]matrix.Matrix, len(n.Faces)),
			Order:      make([]facenet.FaceID, 0, len(n.Faces)),
		},
		placed:  make([]bool, len(n.Corners)),
		centers: make(map[grid.Point3]facenet.FaceID, len(n.Faces)),
	}
	root := n.Root()
	if fo.res.Transforms[root], err = matrix.NewIdentity(homogeneous); err != nil {
		return nil, err
	}

	_, err = bfs.BFS(g, n.Faces[root].Pos.String(),
		bfs.WithOnTreeEdge(fo.hinge),
		bfs.WithOnVisit(func(id string, _ int) error { return fo.place(id) }),
	)
	if err != nil {
		return nil, err
	}

	return fo.res, nil
}

// face resolves a graph vertex ID.
func (fo *folder) face(id string) (facenet.FaceID, error) {
	f, ok := fo.net.FaceByVertex(id)
	if !ok {
		return 0, fmt.Errorf("fold: unknown face vertex %q", id)
	}
	return f, nil
}

// hinge derives the transform of child from its parent.
func (fo *folder) hinge(parentID, childID string) error {
	parent, err := fo.face(parentID)
	if err != nil {
		return err
	}
	child, err := fo.face(childID)
	if err != nil {
		return err
	}

	step := fo.net.Faces[child].Pos.Sub(fo.net.Faces[parent].Pos)
	d := matrix.Vec3{float64(step.X), float64(step.Y), 0}
	crease, err := matrix.NewHinge(matrix.Vec3{d[0], d[1], -1}, d, zAxis)
	if err != nil {
		return fmt.Errorf("fold: hinge %s→%s: %w", parentID, childID, err)
	}
	slide := matrix.NewTranslation(matrix.Vec3{2 * d[0], 2 * d[1], 0})

	fo.res.Transforms[child], err = matrix.Compose(fo.res.Transforms[parent], crease, slide)
	return err
}

// place maps the corners and center of a visited face onto the cube.
func (fo *folder) place(id string) error {
	f, err := fo.face(id)
	if err != nil {
		return err
	}
	fo.res.Order = append(fo.res.Order, f)
	face := fo.net.Faces[f]
	t := fo.res.Transforms[f]

	center, err := apply(t, matrix.Vec3{0, 0, -1})
	if err != nil {
		return err
	}
	if other, dup := fo.centers[center]; dup {
		return fmt.Errorf("%w: faces %v and %v at %v",
			ErrOverlappingFaces, fo.net.Faces[other].Pos, face.Pos, center)
	}
	fo.centers[center] = f

	for _, c := range face.Corners {
		off := fo.net.Corners[c].Pos.Sub(face.Pos)
		pos, err := apply(t, matrix.Vec3{float64(2*off.X - 1), float64(2*off.Y - 1), -1})
		if err != nil {
			return err
		}
		if fo.placed[c] && fo.res.Corners[c] != pos {
			return fmt.Errorf("%w: corner %v at %v and %v",
				ErrInconsistentCorner, fo.net.Corners[c].Pos, fo.res.Corners[c], pos)
		}
		fo.res.Corners[c] = pos
		fo.placed[c] = true
	}

	return nil
}

// apply transforms p and rounds the result onto the integer lattice.
func apply(t matrix.Matrix, p matrix.Vec3) (grid.Point3, error) {
	q, err := matrix.Apply(t, p)
	if err != nil {
		return grid.Point3{}, fmt.Errorf("fold: %w", err)
	}
	return grid.Point3{
		X: int(math.Round(q[0])),
		Y: int(math.Round(q[1])),
		Z: int(math.Round(q[2])),
	}, nil
}
