package tsp

import (
	"errors"

	"github.com/katalvlaran/roomgraph/rooms"
)

// ErrDimensionMismatch is returned when a tour, ring or matrix does not match
// the number of rooms it is used with, or a permutation is malformed.
var ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

// ErrBrokenRing is returned by Ring.Validate when Prev/Next links do not form
// a single cycle through every room.
var ErrBrokenRing = errors.New("tsp: ring is not a single cycle")

// Result holds the outcome of a TSP solver.
type Result struct {
	// Tour is the visitation order, len(Tour) == n, Tour[0] == 0.
	// The closing edge back to Tour[0] is implied.
	Tour []int

	// Cost is the length of the closed cycle.
	Cost float64
}

// Weights yields the edge weight between two room indices.
// Points and *DistanceMatrix implement it.
type Weights interface {
	Len() int
	Weight(u, v int) float64
}

// Points computes Euclidean weights on demand; use it when n² storage is
// not affordable.
type Points []rooms.Room

// Len returns the number of rooms.
func (p Points) Len() int { return len(p) }

// Weight returns the Euclidean distance between rooms u and v.
func (p Points) Weight(u, v int) float64 { return rooms.Euclidean.Distance(p[u], p[v]) }
