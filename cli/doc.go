// Package cli wires the room-graph solvers to the command line.
//
// Usage:
//
//	roomgraph --mode|-m <MST|FASTTSP|OPTTSP> [--verbose|-v] < rooms.txt
//	roomgraph --help|-h
//
// Execute parses the arguments with cobra, reads the rooms from standard
// input, runs the selected algorithm and prints its result. Every failure is
// reported on standard error with exit status 1 and nothing on standard
// output; --help prints the usage text and exits with status 0.
package cli
