package grid

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for grid parsing and queries.
var (
	// ErrSyntax indicates malformed puzzle text.
	ErrSyntax = errors.New("grid: syntax error")

	// ErrEmptyBoard indicates the puzzle text has no board rows.
	ErrEmptyBoard = errors.New("grid: board has no rows")

	// ErrNoStart indicates the first row has no Free cell.
	ErrNoStart = errors.New("grid: no free cell in the first row")
)

// Field is the content of one board cell.
type Field uint8

const (
	// Void is outside the net.
	Void Field = iota
	// Free is walkable.
	Free
	// Stone blocks movement.
	Stone
)

// String returns the board glyph of f.
func (f Field) String() string {
	switch f {
	case Free:
		return "."
	case Stone:
		return "#"
	default:
		return " "
	}
}

// Direction is a compass heading on the board. Its numeric value is the
// facing number used by the password: Right=0, Down=1, Left=2, Up=3.
type Direction uint8

const (
	Right Direction = iota
	Down
	Left
	Up
)

// Directions lists every heading in facing-number order.
var Directions = [4]Direction{Right, Down, Left, Up}

var directionNames = [4]string{"right", "down", "left", "up"}

// Number returns the facing number of d.
func (d Direction) Number() int { return int(d) & 3 }

// TurnCW rotates d a quarter turn clockwise (Right → Down).
func (d Direction) TurnCW() Direction { return (d + 1) & 3 }

// TurnCCW rotates d a quarter turn counter-clockwise (Down → Right).
func (d Direction) TurnCCW() Direction { return (d + 3) & 3 }

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction { return (d + 2) & 3 }

// Delta returns the unit step for d; y grows downwards.
func (d Direction) Delta() Point {
	switch d & 3 {
	case Right:
		return Point{X: 1}
	case Down:
		return Point{Y: 1}
	case Left:
		return Point{X: -1}
	default:
		return Point{Y: -1}
	}
}

// String returns the trace glyph of d.
func (d Direction) String() string {
	return [4]string{">", "v", "<", "^"}[d&3]
}

// MarshalText encodes d as its lower-case name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(directionNames[d&3]), nil
}

// UnmarshalText decodes a lower-case direction name.
func (d *Direction) UnmarshalText(b []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(b)))
	for i, n := range directionNames {
		if n == name {
			*d = Direction(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown direction %q", ErrSyntax, name)
}

// Pt2 is a point on an integer lattice.
type Pt2[T constraints.Signed] struct {
	X T `json:"x"`
	Y T `json:"y"`
}

// Pt3 is a point in integer 3-space.
type Pt3[T constraints.Signed] struct {
	X T `json:"x"`
	Y T `json:"y"`
	Z T `json:"z"`
}

// Point is a board cell or a net lattice point.
type Point = Pt2[int]

// Point3 is a position on the folded cube's corner lattice.
type Point3 = Pt3[int]

// Add returns p+q.
func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X - q.X, p.Y - q.Y} }

// Scale returns p*k.
func (p Pt2[T]) Scale(k T) Pt2[T] { return Pt2[T]{p.X * k, p.Y * k} }

// Less orders points by X, then Y.
func (p Pt2[T]) Less(q Pt2[T]) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// String formats p as "x,y".
func (p Pt2[T]) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// String formats p as "(x,y,z)".
func (p Pt3[T]) String() string { return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z) }

// Sign returns -1, 0 or 1 matching the sign of v.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// Abs returns |v|.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// GCD returns the greatest common divisor of a and b (GCD(0,0) == 0).
func GCD[T constraints.Signed](a, b T) T {
	a, b = Abs(a), Abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// MoveKind tells a Move apart.
type MoveKind uint8

const (
	// Forward walks Steps cells.
	Forward MoveKind = iota
	// TurnLeft rotates counter-clockwise in place.
	TurnLeft
	// TurnRight rotates clockwise in place.
	TurnRight
)

// Move is one instruction of the path description.
type Move struct {
	Kind  MoveKind
	Steps int
}

// String renders m in puzzle notation.
func (m Move) String() string {
	switch m.Kind {
	case TurnLeft:
		return "L"
	case TurnRight:
		return "R"
	default:
		return fmt.Sprintf("%d", m.Steps)
	}
}

// Puzzle is a parsed board plus its move list.
type Puzzle struct {
	Grid  *Grid
	Moves []Move
}
