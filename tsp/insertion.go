// Package tsp: cheapest insertion (the Fast tour and the Optimal seed).
//
// CheapestInsertion grows a ring one room at a time, always splicing the
// next room into the ring edge that lengthens the tour the least.
//
// Rationale (succinct):
//  1. The ring lives in an index-addressed arena ([]Node), so a splice is
//     four field writes and no allocation.
//  2. Candidates are compared by the absolute length they would produce,
//     not by the delta. The base is the seed chain 0 → a → b without the
//     closing edge b → 0; that edge is accounted for only when the ring is
//     finished.
//  3. Ties resolve to the first ring member in index order (strict <).
//
// Complexity:
//   - O(n²) time: n insertions, each scanning the ring once.
//   - O(n) memory: the arena only.
//
// Contracts:
//   - w is symmetric with a zero diagonal and finite weights.
//   - The returned ring satisfies Ring.Validate and Total() is the tour length.

package tsp

import "math"

// CheapestInsertion builds a tour over all w.Len() rooms.
//
// Steps:
//  1. Seed a triangle 0 → a → b → 0 where a is the room nearest to 0 and b
//     the room nearest to a (excluding 0 and a).
//  2. Take the lowest-index room k not yet in the ring. For every ring edge
//     (i, Next(i)) compute the chain length after splicing k into it; keep
//     the smallest (first i in index order on ties) and splice k there.
//  3. Repeat until every room is in the ring, then recompute room 0's
//     closing edge.
//
// Rings of fewer than three rooms are built directly: {} for 0, the self-loop
// {0} of length 0 for 1, and 0 ↔ 1 (length 2·d(0,1)) for 2.
//
// Complexity: O(n²) time, O(n) space.
func CheapestInsertion(w Weights) *Ring {
	var (
		n = w.Len()
		r = &Ring{Nodes: make([]Node, n)}
	)
	switch n {
	case 0:
		return r
	case 1:
		r.Nodes[0] = Node{Visited: true}
		return r
	case 2:
		d := w.Weight(0, 1)
		r.Nodes[0] = Node{Prev: 1, Next: 1, Distance: d, Visited: true}
		r.Nodes[1] = Node{Prev: 0, Next: 0, Distance: d, Visited: true}
		return r
	}

	total := seedTriangle(w, r)

	var (
		nodes = r.Nodes
		inf   = math.Inf(1)
		k     int
		i, j  int
		at    int
		best  float64
		cand  float64
	)
	// Rooms join in increasing index order: k only moves forward.
	for k = 1; k < n; k++ {
		if nodes[k].Visited {
			continue
		}
		best, at = inf, 0
		for i = 0; i < n; i++ {
			if !nodes[i].Visited {
				continue
			}
			j = nodes[i].Next
			cand = total - w.Weight(i, j) + w.Weight(i, k) + w.Weight(k, j)
			if cand < best {
				best, at = cand, i
			}
		}

		j = nodes[at].Next
		nodes[at].Next = k
		nodes[k] = Node{Prev: at, Next: j, Distance: w.Weight(at, k), Visited: true}
		nodes[j].Prev = k
		nodes[j].Distance = w.Weight(j, k)
		total = best
	}

	nodes[0].Distance = w.Weight(0, nodes[0].Prev)

	return r
}

// seedTriangle links 0 → a → b → 0 and returns the length of the chain
// 0 → a → b. The closing edge b → 0 is stored on node 0 but left out of the
// returned base.
func seedTriangle(w Weights, r *Ring) float64 {
	var (
		n     = w.Len()
		inf   = math.Inf(1)
		a, b  int
		da    = inf
		db    = inf
		d     float64
		i     int
		nodes = r.Nodes
	)
	for i = 1; i < n; i++ {
		if d = w.Weight(0, i); d < da {
			da, a = d, i
		}
	}
	for i = 1; i < n; i++ {
		if i == a {
			continue
		}
		if d = w.Weight(a, i); d < db {
			db, b = d, i
		}
	}

	nodes[0] = Node{Prev: b, Next: a, Distance: w.Weight(b, 0), Visited: true}
	nodes[a] = Node{Prev: 0, Next: b, Distance: da, Visited: true}
	nodes[b] = Node{Prev: a, Next: 0, Distance: db, Visited: true}

	return da + db
}
