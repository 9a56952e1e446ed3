// Package core provides a thread-safe, in-memory Graph with a minimal,
// deterministic API surface. It backs the face-adjacency graph of a cube
// net: one vertex per face, one undirected edge per shared net edge.
//
// Behaviors:
//
//   - Directed vs. undirected edges (WithDirected).
//   - Weighted vs. unweighted edges (WithWeighted).
//   - Self-loops (WithLoops).
//   - Per-vertex metadata (string keys, arbitrary values).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj).
//
// Determinism:
//
//	Vertices(), Edges() and NeighborIDs() return sorted results, so every
//	traversal built on top of them visits in a stable order.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - a second edge between the same endpoints.
package core
