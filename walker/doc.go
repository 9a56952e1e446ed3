// Package walker executes a move list on a board and computes the password
// of the final position.
//
// The walk starts on the leftmost Free cell of the first row facing Right.
// A forward step first tries every portal; when one applies the walker
// moves only if the portal exit is Free. Without a matching portal the step
// wraps around the board, skipping Void cells. Stone always blocks.
// Walking without portals gives the flat wraparound of the board.
package walker
