// Package server exposes the solver over HTTP.
//
// Routes:
//
//	POST /portals?method=affine&cross_check=true   board (or puzzle) in, Derivation JSON out
//	POST /password?method=color                    puzzle in, Solution JSON out
//	GET  /walk                                     websocket streaming walker steps
//
// The websocket client sends one WalkRequest; the server answers with a
// Frame per step and a final Frame carrying the Solution or the error.
package server
