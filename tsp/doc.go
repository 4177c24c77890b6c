// Package tsp provides Travelling Salesman solvers over rooms.
//
// Two entry points share one seed:
//
//   - Fast: cheapest insertion into a circular doubly-linked Ring.
//     O(n²) time, O(n) memory; weights are computed on the fly.
//   - Optimal: exact branch-and-bound seeded with the Fast tour.
//     Exponential in the worst case; O(n²) memory for the DistanceMatrix.
//
// Every tour starts at room 0. Ties in any "minimum" selection resolve to the
// lowest index met in a left-to-right scan, so repeated runs on the same input
// give identical tours.
//
// The lower bound used for pruning is
//
//	runningTotal + MST(unfixed) + min d(path[0], unfixed) + min d(path[L-1], unfixed)
//
// Any completion must span the unfixed rooms and attach both ends of the fixed
// prefix to them, so no completion can be cheaper.
package tsp
