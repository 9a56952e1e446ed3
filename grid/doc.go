// Package grid holds the flat, two-dimensional side of a cube-net puzzle:
// the board of Free/Stone/Void cells, compass directions with their facing
// numbers, generic lattice points, the move list, and a text parser.
//
// What:
//
//   - Field: a single board cell (Void, Free, Stone).
//   - Grid: an immutable rectangular board; short rows are padded with Void.
//   - Direction: Right, Down, Left, Up with facing numbers 0..3.
//   - Pt2 / Pt3: generic integer points (Point, Point3 aliases).
//   - Move / Puzzle: the parsed instruction list and its board.
//
// Input format:
//
//	        ...#
//	        .#..
//	...#.......#
//
//	10R5L5R10L4R5L5
//
// Rows use '.', '#' and ' '; a blank line separates the board from the moves.
//
// Errors:
//
//   - ErrSyntax: an unexpected character on the board or in the moves.
//   - ErrEmptyBoard: no board rows were found.
//   - ErrNoStart: row 0 has no Free cell to start from.
package grid
