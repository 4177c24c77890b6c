// Package tsp: dense distance table for the exact search.
//
// DistanceMatrix stores n×n Euclidean distances in one row-major buffer so
// the search reads a weight with a single index computation.
//
// Contracts:
//   - Symmetric with a zero diagonal: Weight(u, v) == Weight(v, u) bit for bit,
//     because both cells are written from the same computed value.
//   - Immutable after NewDistanceMatrix returns.
//
// Complexity:
//   - Build: O(n²) time, n(n-1)/2 distance evaluations.
//   - Memory: n² float64.

package tsp

import "github.com/katalvlaran/roomgraph/rooms"

// DistanceMatrix is a dense, row-major n×n table of Euclidean distances.
// It is filled once by NewDistanceMatrix and read-only afterwards.
type DistanceMatrix struct {
	n int
	w []float64 // w[u*n+v]
}

var _ Weights = (*DistanceMatrix)(nil)

// NewDistanceMatrix precomputes all pairwise distances of rs.
// Only the upper triangle is evaluated; the lower one is mirrored.
//
// Complexity: O(n²) time and space.
func NewDistanceMatrix(rs []rooms.Room) *DistanceMatrix {
	var (
		n = len(rs)
		m = &DistanceMatrix{n: n, w: make([]float64, n*n)}
		d float64
	)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			d = rooms.Euclidean.Distance(rs[u], rs[v])
			m.w[u*n+v] = d
			m.w[v*n+u] = d
		}
	}

	return m
}

// Len returns n.
func (m *DistanceMatrix) Len() int { return m.n }

// Weight returns the distance between u and v. Indices are not checked.
func (m *DistanceMatrix) Weight(u, v int) float64 { return m.w[u*m.n+v] }
