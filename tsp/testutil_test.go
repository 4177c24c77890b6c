// Package tsp_test holds the helpers shared by the solver tests: room
// constructors, seeded random instances and a brute-force optimum.
package tsp_test

import (
	"math"

	"github.com/brianvoe/gofakeit"

	"github.com/katalvlaran/roomgraph/rooms"
	"github.com/katalvlaran/roomgraph/tsp"
)

// epsTiny is the tolerance for comparing tour lengths computed along
// different summation orders.
const epsTiny = 1e-9

// pts builds rooms from flat x, y pairs.
func pts(xy ...int) []rooms.Room {
	rs := make([]rooms.Room, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		rs = append(rs, rooms.Room{X: xy[i], Y: xy[i+1]})
	}

	return rs
}

// randomRooms draws n rooms in [-lim, lim]² from the gofakeit stream.
// Callers seed gofakeit first so instances are reproducible.
func randomRooms(n, lim int) []rooms.Room {
	rs := make([]rooms.Room, n)
	for i := range rs {
		rs[i] = rooms.Room{X: gofakeit.Number(-lim, lim), Y: gofakeit.Number(-lim, lim)}
	}

	return rs
}

// bruteForce enumerates every tour starting at 0 and returns the shortest length.
func bruteForce(rs []rooms.Room) float64 {
	n := len(rs)
	if n < 2 {
		return 0
	}
	w := tsp.NewDistanceMatrix(rs)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := math.Inf(1)

	var rec func(k int)
	rec = func(k int) {
		if k == n {
			c, _ := tsp.TourCost(w, perm)
			if c < best {
				best = c
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(1)

	return best
}

// nextTargets counts how often each room is the Next of some node.
func nextTargets(r *tsp.Ring) []int {
	cnt := make([]int, r.Len())
	for _, nd := range r.Nodes {
		cnt[nd.Next]++
	}

	return cnt
}
