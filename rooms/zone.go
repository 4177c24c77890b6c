package rooms

// Classify returns the zone of the point (x, y).
//
// Decontamination is tested first, so the origin and the points of the
// negative axes never fall into Lab.
func Classify(x, y int) Zone {
	if (x == 0 && y < 1) || (y == 0 && x < 1) {
		return Decontamination
	}
	if x < 0 && y < 0 {
		return Lab
	}

	return Outer
}

// Assign classifies every room in place and returns the resulting census.
//
// Complexity: O(n).
func Assign(rs []Room) Census {
	var c Census
	for i := range rs {
		rs[i].Zone = Classify(rs[i].X, rs[i].Y)
		c.Observe(rs[i].Zone)
	}

	return c
}

// Survey builds the census of already classified rooms without modifying them.
//
// Complexity: O(n).
func Survey(rs []Room) Census {
	var c Census
	for i := range rs {
		c.Observe(rs[i].Zone)
	}

	return c
}
