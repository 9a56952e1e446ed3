// Package portal turns glued boundary edges of a cube net into portals the
// walker can step through.
//
// A Portal maps a step that leaves the net across one boundary segment onto
// the cell and heading where the step re-enters the net on the partner
// segment. Segments are runs of in-face cells, inclusive at both ends, so a
// face of side one still has a one-cell segment.
//
// Match pairs the boundary edges of a net under any corner key: the cube
// vertex from the fold package or the vertex color from the colorer package.
// Both keys must produce the same fourteen portals.
package portal
