package rooms

import "math"

// Metric selects the distance rule used by an algorithm phase.
type Metric uint8

const (
	// Euclidean is the plain straight-line distance (FASTTSP, OPTTSP).
	Euclidean Metric = iota
	// ZoneRestricted forbids direct Lab↔Outer edges (MST).
	ZoneRestricted
)

// Distance returns the distance between a and b under m.
// A forbidden pair yields math.Inf(1); coincident rooms yield 0.
func (m Metric) Distance(a, b Room) float64 {
	if m == ZoneRestricted && forbidden(a.Zone, b.Zone) {
		return math.Inf(1)
	}
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

func forbidden(a, b Zone) bool {
	return (a == Lab && b == Outer) || (a == Outer && b == Lab)
}
