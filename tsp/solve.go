package tsp

import "github.com/katalvlaran/roomgraph/rooms"

// Fast returns the cheapest-insertion tour of rs.
//
// Complexity: O(n²) time, O(n) space.
func Fast(rs []rooms.Room) Result {
	ring := CheapestInsertion(Points(rs))

	return Result{Tour: ring.Path(), Cost: ring.Total()}
}

// Optimal returns a shortest tour of rs: the cheapest-insertion tour seeds a
// branch-and-bound search over a precomputed distance matrix.
func Optimal(rs []rooms.Room) (Result, error) {
	ring := CheapestInsertion(Points(rs))

	return BranchAndBound(NewDistanceMatrix(rs), ring)
}
