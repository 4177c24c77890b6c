package tsp

import "github.com/yourbasic/bit"

// Node is the per-room state of a tour under construction.
type Node struct {
	// Prev and Next are the tour neighbours of the room.
	Prev, Next int

	// Distance is the weight of the edge Prev→room. Each cycle edge is owned
	// by exactly one node, so the fields of a ring sum to its length.
	Distance float64

	// Visited reports whether the room has been spliced into the ring.
	Visited bool
}

// Ring is a circular doubly-linked tour stored as an index-addressed arena.
// Room 0 is always part of the ring and is the start of Path.
type Ring struct {
	Nodes []Node
}

// Len returns the number of rooms in the ring.
func (r *Ring) Len() int { return len(r.Nodes) }

// Total returns the tour length: the sum of every node's Distance.
func (r *Ring) Total() float64 {
	var sum float64
	for i := range r.Nodes {
		sum += r.Nodes[i].Distance
	}

	return sum
}

// Path walks Next pointers from room 0 and returns the visitation order.
//
// Complexity: O(n).
func (r *Ring) Path() []int {
	n := len(r.Nodes)
	if n == 0 {
		return []int{}
	}
	path := make([]int, n)
	at := 0
	for i := 0; i < n; i++ {
		path[i] = at
		at = r.Nodes[at].Next
	}

	return path
}

// Validate checks the ring invariants: every node is visited, Prev and Next
// are mutual inverses, and following Next from room 0 visits every room
// exactly once before returning to 0.
//
// Complexity: O(n).
func (r *Ring) Validate() error {
	var (
		n    = len(r.Nodes)
		seen bit.Set
		at   int
	)
	if n == 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		nd := r.Nodes[i]
		if !nd.Visited || nd.Next < 0 || nd.Next >= n || nd.Prev < 0 || nd.Prev >= n {
			return ErrBrokenRing
		}
		if r.Nodes[nd.Next].Prev != i || r.Nodes[nd.Prev].Next != i {
			return ErrBrokenRing
		}
	}
	for i := 0; i < n; i++ {
		if seen.Contains(at) {
			return ErrBrokenRing // sub-cycle shorter than n
		}
		seen.Add(at)
		at = r.Nodes[at].Next
	}
	if at != 0 {
		return ErrBrokenRing
	}

	return nil
}
