// Package gridgraph treats a 2D occupancy grid as a graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - ConnectedComponents finds contiguous regions of land cells.
//   - ToCoreGraph turns the land cells into an unweighted *core.Graph whose
//     vertex IDs are "x,y".
//
// The net extractor builds one GridGraph per board: each cell of the grid is
// one face slot, 1 when a face occupies it and 0 otherwise.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - ToCoreGraph:         O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
