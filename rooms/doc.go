// Package rooms models the input of the room-graph solvers: integer points
// ("rooms"), the zone partition used by the MST mode, and the distance oracle
// shared by every algorithm.
//
// Zones
//
//	Decontamination   (x == 0 && y < 1) || (y == 0 && x < 1)
//	Lab               x < 0 && y < 0 (and not Decontamination)
//	Outer             everything else
//
// The rule is asymmetric: the origin and the non-positive halves
// of both axes belong to Decontamination while the positive halves are Outer.
//
// Distances
//
//   - Euclidean: sqrt(dx²+dy²) over integer differences.
//   - ZoneRestricted: Euclidean, except Lab↔Outer pairs which are +Inf.
//
// Input
//
// Read consumes a whitespace-separated stream: a count n followed by n pairs
// of integers. Zones are assigned only when the caller asks for them.
//
// Complexity: Classify and Distance are O(1); Read is O(n).
package rooms
