// Package roomgraph computes graph-optimisation results over 2-D rooms:
// a zone-restricted minimum spanning tree, a fast cheapest-insertion tour,
// or an exact optimal tour found by branch-and-bound.
//
// Layout:
//
//	rooms/           room model, zone classifier, distance oracle, input reader
//	mst/             Prim's algorithm (dense O(n²)) with the zone feasibility check
//	tsp/             tour ring, cheapest insertion, distance matrix, branch-and-bound
//	cli/             cobra command: flags, dispatch, output formatting
//	cmd/roomgraph/   the executable
//
// Quick start:
//
//	printf '4\n0 0\n0 1\n1 0\n1 1\n' | roomgraph --mode OPTTSP
//	4.00
//	0 1 3 2
package roomgraph
