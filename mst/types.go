package mst

import "errors"

// ErrCannotConstruct indicates that the zone partition leaves Lab and Outer
// rooms with no Decontamination room to connect them.
var ErrCannotConstruct = errors.New("mst: cannot construct MST")

// ErrDisconnected indicates that Prim ran out of finite edges before the tree
// covered every room.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// Record is the per-room state of Prim's algorithm.
type Record struct {
	// Dist is the weight of the cheapest known edge into the tree (+Inf until relaxed).
	Dist float64

	// Parent is the tree neighbour that realises Dist, or -1 for the root.
	Parent int

	// InTree reports whether the room has joined the tree.
	InTree bool
}

// Edge is a tree edge with A < B.
type Edge struct {
	A, B   int
	Weight float64
}

// Tree is the result of Build: one Record per room, indexed like the input.
type Tree struct {
	Records []Record
}

// Total returns the weight of the tree (the sum of every record's Dist).
func (t *Tree) Total() float64 {
	var sum float64
	for i := range t.Records {
		sum += t.Records[i].Dist
	}

	return sum
}

// Edges lists the tree edges in child order 1..n-1, smaller index first.
func (t *Tree) Edges() []Edge {
	if len(t.Records) < 2 {
		return nil
	}
	out := make([]Edge, 0, len(t.Records)-1)
	for i := 1; i < len(t.Records); i++ {
		p := t.Records[i].Parent
		e := Edge{A: p, B: i, Weight: t.Records[i].Dist}
		if e.A > e.B {
			e.A, e.B = e.B, e.A
		}
		out = append(out, e)
	}

	return out
}
