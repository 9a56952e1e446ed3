// Package fold places every corner of a cube net on the cube [-1,1]³ by
// propagating rigid motions across the face-adjacency graph.
//
// The root face (the lexicographically smallest face coordinate) keeps the
// identity transform and lies in the plane z = -1. Each face is described in
// its own frame, where its corners sit at (±1, ±1, -1). Crossing a seam in
// direction d composes the parent transform with a hinge: slide the child
// flat by 2·d, then crease it 90° about the shared edge so that d turns
// into +z. A breadth-first walk from the root visits the faces in a fixed
// order because neighbor IDs are sorted.
//
// Folding a net through two different face paths must land a shared corner
// on one cube vertex. A layout whose faces fold onto each other (the
// six-in-a-row strip, for instance) is reported as ErrOverlappingFaces.
package fold
