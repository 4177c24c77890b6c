package tsp

import "github.com/yourbasic/bit"

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) bits of space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return ErrDimensionMismatch
	}
	var seen bit.Set
	for _, v := range perm {
		// Out-of-range or duplicate element breaks the bijection.
		if v < 0 || v >= n || seen.Contains(v) {
			return ErrDimensionMismatch
		}
		seen.Add(v)
	}

	return nil
}

// ValidateTour checks that tour is a permutation of {0..n-1} starting at 0.
// An empty tour is valid for n == 0.
//
// Complexity: O(n).
func ValidateTour(tour []int, n int) error {
	if err := ValidatePermutation(tour, n); err != nil {
		return err
	}
	if n > 0 && tour[0] != 0 {
		return ErrDimensionMismatch
	}

	return nil
}

// TourCost returns the length of the closed cycle tour[0]→…→tour[n-1]→tour[0].
// Tours with fewer than two rooms cost 0.
//
// Complexity: O(n).
func TourCost(w Weights, tour []int) (float64, error) {
	if err := ValidatePermutation(tour, w.Len()); err != nil {
		return 0, err
	}
	n := len(tour)
	if n < 2 {
		return 0, nil
	}
	var sum float64
	for i := 0; i+1 < n; i++ {
		sum += w.Weight(tour[i], tour[i+1])
	}

	return sum + w.Weight(tour[n-1], tour[0]), nil
}

// CopyTour returns an independent copy of tour (nil stays nil).
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// EqualToursModuloDirection reports whether a and b describe the same cycle
// when both start at the same room, in either direction.
//
// Complexity: O(n).
func EqualToursModuloDirection(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	if n == 0 {
		return true
	}
	if a[0] != b[0] {
		return false
	}
	same, reversed := true, true
	for i := 1; i < n; i++ {
		if a[i] != b[i] {
			same = false
		}
		if a[i] != b[n-i] {
			reversed = false
		}
	}

	return same || reversed
}
