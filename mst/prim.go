package mst

import (
	"math"

	"github.com/katalvlaran/roomgraph/rooms"
)

// Build computes the minimum spanning tree of rs rooted at room 0 using the
// zone-restricted metric. rs must already carry zones (see rooms.Assign).
//
// Errors:
//   - ErrCannotConstruct if the zone census is not connectable (checked first).
//   - ErrDisconnected if some room cannot be reached by a finite edge.
//
// An empty input yields an empty tree.
//
// Complexity: O(n²) time, O(n) space.
func Build(rs []rooms.Room) (*Tree, error) {
	if !rooms.Survey(rs).Connectable() {
		return nil, ErrCannotConstruct
	}

	var (
		n    = len(rs)
		recs = make([]Record, n)
		inf  = math.Inf(1)
	)
	for v := range recs {
		recs[v] = Record{Dist: inf, Parent: -1}
	}
	if n == 0 {
		return &Tree{Records: recs}, nil
	}
	recs[0].Dist = 0

	var (
		it, u, v int
		minW, w  float64
	)
	for it = 0; it < n; it++ {
		// Cheapest out-of-tree room; strict < keeps the lowest index on ties.
		u, minW = -1, inf
		for v = 0; v < n; v++ {
			if !recs[v].InTree && recs[v].Dist < minW {
				minW, u = recs[v].Dist, v
			}
		}
		if u < 0 {
			return nil, ErrDisconnected
		}
		recs[u].InTree = true

		for v = 0; v < n; v++ {
			if recs[v].InTree {
				continue
			}
			w = rooms.ZoneRestricted.Distance(rs[u], rs[v])
			if w < recs[v].Dist {
				recs[v].Dist = w
				recs[v].Parent = u
			}
		}
	}

	return &Tree{Records: recs}, nil
}
