// Package cubenet folds a flat puzzle board into a cube and walks it.
//
// 🚀 What is cubenet?
//
//	A board is six square faces laid out as one of the eleven cube nets.
//	cubenet finds the faces, works out which boundary edges meet once the
//	net is folded and turns every such pair into a portal. A walker then
//	follows a move list across the board, stepping through portals at the
//	edges, and reports the final password.
//
// Two independent ways to pair the edges are provided:
//
//   - fold/    rigid 4×4 motions place every face on the cube surface
//   - colorer/ corners are labelled by adjacency alone, no geometry
//
// Both feed portal.Match, and solver.WithCrossCheck asserts they agree.
//
// Packages:
//
//	grid/      board cells, points, headings and the puzzle parser
//	matrix/    dense matrices and the affine transforms used by fold
//	core/      small undirected graph with sorted, deterministic views
//	bfs/       breadth-first traversal with tree-edge hooks
//	gridgraph/ occupancy grids as graphs, connected components
//	facenet/   faces, corners and edges of a net
//	fold/      affine folding
//	colorer/   corner coloring
//	portal/    portal type, teleport and edge matching
//	walker/    move execution and password
//	solver/    the whole pipeline behind one call
//	server/    HTTP and websocket API
//
// Commands:
//
//	cmd/cubenet  solve a puzzle file from the command line
//	cmd/cubenetd serve the API (PORT, LOG_LEVEL)
//
// Quick example:
//
//	sol, err := solver.Solve(puzzle, solver.WithMethod(solver.MethodColor))
//	if err != nil {
//		return err
//	}
//	fmt.Println(sol.Walk.Password)
package cubenet
