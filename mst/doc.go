// Package mst builds minimum spanning trees over rooms with Prim's algorithm.
//
// The tree is grown from room 0 over the complete graph whose edge weights
// come from rooms.ZoneRestricted: a Lab room and an Outer room are never
// joined directly. Before any work Build checks the zone census; a partition
// with Lab and Outer rooms but no Decontamination room cannot be spanned and
// is rejected with ErrCannotConstruct.
//
// Algorithm (dense Prim, no heap):
//  1. All records start at Dist=+Inf, Parent=-1; the root gets Dist=0.
//  2. n times: pick the out-of-tree record with the smallest Dist (strict <,
//     so ties go to the lowest index), add it, relax every out-of-tree record.
//
// Complexity: O(n²) time, O(n) memory.
package mst
