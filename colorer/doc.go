// Package colorer labels the corners of a cube net with cube vertices
// without computing any 3D geometry.
//
// Every corner gets a color; two corners share a color exactly when they
// meet at one vertex of the folded cube. The degree of a color is the sum of
// the face degrees of its corners, and a cube vertex is complete when that
// sum reaches three.
//
// The run starts from the boundary cycle of the net (fourteen edges for a
// cube net, walked counter-clockwise on screen) and proceeds in phases:
//
//   - initial: every corner touching three faces is a whole cube vertex and
//     gets a fresh color; all other corners stay gray.
//   - diagonal: at a seeded corner the incoming and outgoing boundary edges
//     fold onto one cube edge, so the two corners across it are one vertex.
//   - distant: the same zip at a vertex that was completed by earlier zips.
//   - leftover: when a single color is unused and the gray corners add up to
//     one vertex, they take it.
//
// A zip glues two boundary edges and removes them from the cycle. The run is
// resolved once two edges remain and every color has degree three; it fails
// with ErrStuck when no phase makes progress within the step bound.
//
// A Result's colors are stable for a given net: cycles start at the lowest
// boundary edge id and pivots are taken in cycle order.
package colorer
