// Package solver ties the pipeline together: it extracts the net of a
// board, derives its portals with the chosen method and walks the moves.
//
// Methods:
//
//   - MethodAffine folds the net with 4×4 rigid motions (package fold).
//   - MethodColor labels corners by adjacency alone (package colorer).
//   - MethodFlat skips the cube entirely and wraps around the board.
//
// WithCrossCheck derives the portals with both cube methods and fails with
// ErrMethodsDisagree unless the two sets are equal. A failing stage never
// yields a partial portal set.
package solver
