// Package tsp_test pins the exact output of both solvers against plain
// reference renditions written over parallel slices and a [][]float64 table.
// Tours must match element for element and lengths bit for bit: on inputs
// with many equal distances, any change in summation order picks a
// different (equally short) tour.
package tsp_test

import (
	"math"
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomgraph/rooms"
	"github.com/katalvlaran/roomgraph/tsp"
)

// referenceInsertion builds the cheapest-insertion tour of rs (len(rs) ≥ 3)
// and returns it with its length summed over rooms in index order.
func referenceInsertion(rs []rooms.Room) ([]int, float64) {
	var (
		n       = len(rs)
		prev    = make([]int, n)
		next    = make([]int, n)
		dist    = make([]float64, n)
		visited = make([]bool, n)
		inf     = math.Inf(1)
	)
	d := func(a, b int) float64 { return rooms.Euclidean.Distance(rs[a], rs[b]) }

	a, b, da, db := 0, 0, inf, inf
	for i := 1; i < n; i++ {
		if x := d(0, i); x < da {
			da, a = x, i
		}
	}
	for i := 1; i < n; i++ {
		if i == a {
			continue
		}
		if x := d(a, i); x < db {
			db, b = x, i
		}
	}
	visited[0], visited[a], visited[b] = true, true, true
	next[0], prev[0] = a, b
	next[a], prev[a], dist[a] = b, 0, da
	next[b], prev[b], dist[b] = 0, a, db
	count, total, k := 3, da+db, 0

	for count < n {
		for i := k + 1; i < n; i++ {
			if !visited[i] {
				k = i
				break
			}
		}
		best, at := inf, 0
		for i := 0; i < n; i++ {
			if !visited[i] {
				continue
			}
			if c := total - d(i, next[i]) + d(i, k) + d(k, next[i]); c < best {
				best, at = c, i
			}
		}
		j := next[at]
		next[at], prev[k], next[k], prev[j] = k, at, j, k
		visited[k] = true
		dist[k], dist[j] = d(at, k), d(j, k)
		total = best
		count++
	}
	dist[0] = d(0, prev[0])

	var sum float64
	for _, x := range dist {
		sum += x
	}
	tour := make([]int, 0, n)
	for i, at := 0, 0; i < n; i++ {
		tour = append(tour, at)
		at = next[at]
	}

	return tour, sum
}

// referenceSearch is a branch-and-bound over a [][]float64 table that keeps
// its running total by adding and subtracting edge weights.
type referenceSearch struct {
	m       [][]float64
	path    []int
	best    []int
	running float64
	upper   float64
}

func newReferenceSearch(rs []rooms.Room, seed []int, seedCost float64) *referenceSearch {
	n := len(rs)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			m[i][j] = rooms.Euclidean.Distance(rs[i], rs[j])
		}
	}
	s := &referenceSearch{m: m, path: append([]int(nil), seed...), upper: seedCost}
	s.best = append([]int(nil), seed...)

	return s
}

func (s *referenceSearch) promising(L int) bool {
	var (
		n      = len(s.path)
		inf    = math.Inf(1)
		d      = make([]float64, n)
		inTree = make([]bool, n)
	)
	for i := range d {
		d[i] = inf
	}
	for i := 0; i < L; i++ {
		inTree[s.path[i]] = true
	}
	d[s.path[L]] = 0
	for step := L; step < n; step++ {
		cur, low := -1, inf
		for i := L; i < n; i++ {
			if p := s.path[i]; !inTree[p] && d[p] < low {
				low, cur = d[p], p
			}
		}
		inTree[cur] = true
		for i := L; i < n; i++ {
			if p := s.path[i]; !inTree[p] && s.m[cur][p] < d[p] {
				d[p] = s.m[cur][p]
			}
		}
	}

	front, back, tree := inf, inf, 0.0
	for i := L; i < n; i++ {
		tree += d[s.path[i]]
	}
	for i := L; i < n; i++ {
		if x := s.m[s.path[0]][s.path[i]]; x < front {
			front = x
		}
	}
	for i := L; i < n; i++ {
		if x := s.m[s.path[L-1]][s.path[i]]; x < back {
			back = x
		}
	}

	return !(front+back+tree+s.running > s.upper)
}

func (s *referenceSearch) genPerms(L int) {
	if L == len(s.path) {
		if total := s.running + s.m[0][s.path[L-1]]; total < s.upper {
			copy(s.best, s.path)
			s.upper = total
		}
		return
	}
	if !s.promising(L) {
		return
	}
	for i := L; i < len(s.path); i++ {
		s.path[L], s.path[i] = s.path[i], s.path[L]
		s.running += s.m[s.path[L-1]][s.path[L]]
		s.genPerms(L + 1)
		s.running -= s.m[s.path[L-1]][s.path[L]]
		s.path[L], s.path[i] = s.path[i], s.path[L]
	}
}

func TestCheapestInsertion_MatchesReference(t *testing.T) {
	// Small coordinate range: many insertion points tie in exact arithmetic
	// and only the float evaluation of the candidate lengths separates them.
	gofakeit.Seed(7)
	for round := 0; round < 3000; round++ {
		rs := randomRooms(3+gofakeit.Number(0, 17), 8)

		r := tsp.CheapestInsertion(tsp.Points(rs))
		wantTour, wantCost := referenceInsertion(rs)

		require.Equal(t, wantTour, r.Path(), "round %d rooms=%v", round, rs)
		require.Equal(t, wantCost, r.Total(), "round %d rooms=%v", round, rs)
	}
}

func TestOptimal_MatchesReferenceSearch(t *testing.T) {
	// Tie-heavy instances: a grid of 5×5 cells yields many equally short tours.
	gofakeit.Seed(31)
	for round := 0; round < 800; round++ {
		rs := randomRooms(3+gofakeit.Number(0, 5), 2)

		seed, seedCost := referenceInsertion(rs)
		ref := newReferenceSearch(rs, seed, seedCost)
		ref.genPerms(1)

		res, err := tsp.Optimal(rs)
		require.NoError(t, err)
		require.Equal(t, ref.best, res.Tour, "round %d rooms=%v", round, rs)
		require.Equal(t, ref.upper, res.Cost, "round %d rooms=%v", round, rs)
	}
}
