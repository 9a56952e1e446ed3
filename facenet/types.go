package facenet

import (
	"errors"

	"github.com/katalvlaran/cubenet/grid"
	"github.com/katalvlaran/cubenet/gridgraph"
)

// Sentinel errors for net extraction.
var (
	// ErrEmptyGrid is returned for a nil board.
	ErrEmptyGrid = errors.New("facenet: grid is nil")

	// ErrFaceCount is returned when the board does not hold exactly six faces.
	ErrFaceCount = errors.New("facenet: a cube net has exactly 6 faces")

	// ErrDisconnected is returned when the faces are not edge-connected.
	ErrDisconnected = errors.New("facenet: faces are not edge-connected")

	// ErrRaggedFaces is returned in strict mode for a face block that mixes
	// Void and non-Void cells.
	ErrRaggedFaces = errors.New("facenet: face block is partially empty")
)

// FaceCount is the number of faces of a cube.
const FaceCount = 6

// FaceID, CornerID and EdgeID index the arena slices of a Net.
type (
	FaceID   int
	CornerID int
	EdgeID   int
)

// NoEdge marks a missing twin.
const NoEdge EdgeID = -1

// Face is one side×side block of the net.
type Face struct {
	ID  FaceID
	Pos grid.Point // block coordinate in face units

	// Corners in order (x,y), (x,y+1), (x+1,y+1), (x+1,y).
	Corners [4]CornerID

	// Edges[k] runs from Corners[k] to Corners[(k+1)%4].
	Edges [4]EdgeID
}

// Corner is a lattice point of the net shared by one to four faces.
type Corner struct {
	ID    CornerID
	Pos   grid.Point
	Faces []FaceID
}

// Degree returns the number of faces touching c.
func (c Corner) Degree() int { return len(c.Faces) }

// Edge is one oriented side of a face.
type Edge struct {
	ID       EdgeID
	Face     FaceID
	From, To CornerID
	Heading  grid.Direction

	// Twin is the reversed edge of the neighboring face across a seam, or
	// NoEdge when the edge lies on the net boundary.
	Twin EdgeID
}

// Boundary reports whether e lies on the outline of the net.
func (e Edge) Boundary() bool { return e.Twin == NoEdge }

// Outward returns the direction leaving the face across e.
func (e Edge) Outward() grid.Direction { return e.Heading.TurnCW() }

// Inward returns the direction entering the face across e.
func (e Edge) Inward() grid.Direction { return e.Heading.TurnCCW() }

// edgeHeadings lists the heading of Face.Edges[k].
var edgeHeadings = [4]grid.Direction{grid.Down, grid.Right, grid.Up, grid.Left}

// cornerOffsets lists the lattice offset of Face.Corners[k].
var cornerOffsets = [4]grid.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}

// Option configures Extract.
type Option func(*Options)

// Options holds the extraction settings.
type Options struct {
	// Strict rejects face blocks that are only partly drawn.
	Strict bool
}

// DefaultOptions returns lenient extraction: any non-Void cell makes a face.
func DefaultOptions() Options {
	return Options{}
}

// WithStrict enables ErrRaggedFaces checks.
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

// Net is the extracted arena of a cube net.
type Net struct {
	Side int // face side length in cells

	// Cols and Rows are the board size in face units.
	Cols, Rows int

	Faces   []Face
	Corners []Corner
	Edges   []Edge

	faceAt    map[grid.Point]FaceID
	cornerAt  map[grid.Point]CornerID
	occupancy *gridgraph.GridGraph
}
