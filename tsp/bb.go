// Package tsp: branch-and-bound exact search.
//
// BranchAndBound permutes path[L:] in place (swap, recurse, swap back) while
// path[:L] is fixed. Before extending a prefix it asks promising(L) for a
// lower bound on every completion and prunes when the bound exceeds the best
// complete tour found so far.
//
// Rationale (succinct):
//  1. The seed ring provides the first incumbent; its length is the initial
//     upper bound and only strictly shorter tours replace it.
//  2. Bound (admissible):
//     - running: cost of the fixed edges path[0]→…→path[L-1];
//     - MST over path[L:] (dense Prim, rooted at path[L]);
//     - front arm: cheapest edge from path[0] into path[L:];
//     - back arm: cheapest edge from path[L-1] into path[L:].
//     Prune when the bound is strictly greater than the upper bound.
//  3. running is updated incrementally: the edge weight is added before the
//     recursive call and subtracted after it.
//  4. Branches are tried in path order, so the search is deterministic.
//
// Complexity:
//   - Worst case exponential in n; O(m²) per bound where m = n-L.
//   - Memory: O(n²) for the distance matrix, O(n) for path, best and the
//     Prim scratch.
//
// Contracts:
//   - w.Len() == seed.Len() and seed passes Ring.Validate.
//   - path[0] == 0 throughout the search.

package tsp

import (
	"math"

	"github.com/katalvlaran/roomgraph/mst"
)

// bbEngine holds the whole search state of one run.
type bbEngine struct {
	n int
	w *DistanceMatrix

	path    []int   // current permutation, path[0] == 0
	best    []int   // best complete order so far
	running float64 // cost of the fixed prefix edges
	upper   float64 // cost of best (closing edge included)

	bound []mst.Record // Prim scratch for promising, indexed by room
}

// at is a short accessor into the distance matrix.
func (e *bbEngine) at(u, v int) float64 { return e.w.Weight(u, v) }

// promising reports whether a prefix of length L can still beat e.upper.
func (e *bbEngine) promising(L int) bool {
	var (
		inf     = math.Inf(1)
		front   = inf
		back    = inf
		first   = e.path[0]
		last    = e.path[L-1]
		recs    = e.bound
		unfixed = e.path[L:]
		tree    float64
		minD, d float64
		i, p    int
		cur     int
	)

	for _, p = range unfixed {
		recs[p] = mst.Record{Dist: inf, Parent: -1}
	}
	recs[unfixed[0]].Dist = 0

	for range unfixed {
		cur, minD = -1, inf
		for _, p = range unfixed {
			if !recs[p].InTree && recs[p].Dist < minD {
				minD, cur = recs[p].Dist, p
			}
		}
		if cur < 0 {
			break
		}
		recs[cur].InTree = true
		for _, p = range unfixed {
			if recs[p].InTree {
				continue
			}
			if d = e.at(cur, p); d < recs[p].Dist {
				recs[p].Dist = d
				recs[p].Parent = cur
			}
		}
	}

	for i = range unfixed {
		p = unfixed[i]
		tree += recs[p].Dist
		if d = e.at(first, p); d < front {
			front = d
		}
		if d = e.at(last, p); d < back {
			back = d
		}
	}

	return front+back+tree+e.running <= e.upper
}

// genPerms extends the fixed prefix path[:L] in every promising way.
func (e *bbEngine) genPerms(L int) {
	if L == e.n {
		total := e.running + e.at(e.path[L-1], e.path[0])
		if total < e.upper {
			copy(e.best, e.path)
			e.upper = total
		}

		return
	}
	if !e.promising(L) {
		return
	}

	var i int
	for i = L; i < e.n; i++ {
		e.path[L], e.path[i] = e.path[i], e.path[L]
		e.running += e.at(e.path[L-1], e.path[L])
		e.genPerms(L + 1)
		e.running -= e.at(e.path[L-1], e.path[L])
		e.path[L], e.path[i] = e.path[i], e.path[L]
	}
}

// BranchAndBound returns an optimal tour over the rooms of w, starting from
// the incumbent seed (typically CheapestInsertion over the same rooms).
// The seed's order and length become the initial best tour and upper bound;
// only strictly shorter tours replace it.
//
// Errors:
//   - ErrDimensionMismatch if the seed does not cover exactly w.Len() rooms.
//   - ErrBrokenRing if the seed is not a single cycle.
func BranchAndBound(w *DistanceMatrix, seed *Ring) (Result, error) {
	if seed.Len() != w.Len() {
		return Result{}, ErrDimensionMismatch
	}
	if err := seed.Validate(); err != nil {
		return Result{}, err
	}
	if w.Len() == 0 {
		return Result{Tour: []int{}}, nil
	}

	e := bbEngine{
		n:     w.Len(),
		w:     w,
		path:  seed.Path(),
		upper: seed.Total(),
		bound: make([]mst.Record, w.Len()),
	}
	e.best = CopyTour(e.path)
	e.genPerms(1)

	return Result{Tour: e.best, Cost: e.upper}, nil
}
