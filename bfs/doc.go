// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, with hooks that let callers
// carry state along tree edges.
//
// What
//
//   - Explore vertices in non-decreasing distance from a start vertex.
//   - BFSResult: Order (visit sequence), Depth (hops from start), Parent
//     (predecessor in the BFS tree).
//   - Hooks: OnEnqueue, OnVisit (may abort), OnTreeEdge (called once per
//     discovered tree edge parent→child, before the child is enqueued; may
//     abort).
//   - WithFilterNeighbor prunes individual neighbors; WithMaxDepth limits
//     depth (0 = no limit, negative = ErrOptionViolation).
//
// Why
//
//	The cube folder composes one transform per face along the BFS tree of
//	the face-adjacency graph: OnTreeEdge is where the child's transform is
//	derived from its parent's.
//
// Determinism
//
//	core.NeighborIDs is sorted, and neighbors are enqueued in that order, so
//	the visit sequence and the tree are fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
