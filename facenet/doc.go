// Package facenet extracts the faces, corners and edges of a cube net drawn
// on a board.
//
// The side length of a face is gcd(width, height) of the board. Every
// side×side block holding at least one non-Void cell is a face; a valid net
// has exactly six faces joined edge to edge.
//
// Faces, corners and edges live in flat slices (an arena) and refer to each
// other by small integer ids. A corner is a lattice point in face units, so
// the face at (x,y) owns the corners (x,y), (x,y+1), (x+1,y+1), (x+1,y).
// Its four edges run between consecutive corners in that order, which is
// counter-clockwise on screen, and carry their heading: Down, Right, Up, Left.
// The outward normal of an edge is its heading turned clockwise.
//
// A Net is read-only after Extract returns.
package facenet
