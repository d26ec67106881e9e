// SPDX-License-Identifier: MIT
//
// bonds.go - the distance-cutoff neighbor-graph builder shared by
// quasicrystal aggregates and periodic lattices.
package lattice

import "math"

// bondTarget is the sealed mutation contract of the bond builder. Both
// aggregate kinds implement it; the unexported method keeps graph mutation
// inside this package, so "only the builder mutates" holds by construction.
type bondTarget interface {
	Positions() [][]float64
	replaceGraph(bonds []Bond, neighbors [][]int)
}

// BuildNeighborBonds rebuilds the bond list and adjacency lists of target in
// place from a Euclidean distance cutoff.
//
// Contract:
//   - Existing bonds and neighbor lists are discarded first, so re-invoking
//     with a different cutoff replaces rather than appends.
//   - For every unordered site pair (i, j) with i < j, a bond
//     {Src: i, Dst: j, Type: 1, Vector: pos[j]−pos[i]} is recorded iff
//     DistanceTolerance < d(i, j) < cutoff; the tolerance floor excludes
//     coincident or near-duplicate sites.
//   - Guarantees on return: adjacency symmetry, Src < Dst on every bond, and
//     BondCount == Σ len(Neighbors()) / 2.
//
// Not safe for concurrent invocation on the same target: the clear-then-
// rebuild is non-atomic and callers must synchronize externally.
//
// Errors: ErrNilLattice for a nil target, ErrNonPositiveCutoff for cutoff ≤ 0.
// Complexity: O(n²·D) time over n sites in D dimensions, O(n + bonds) memory.
func BuildNeighborBonds(target bondTarget, cutoff float64) error {
	if target == nil {
		return ErrNilLattice
	}
	if cutoff <= 0 {
		return ErrNonPositiveCutoff
	}

	positions := target.Positions()
	n := len(positions)
	bonds := make([]Bond, 0, n)
	neighbors := make([][]int, n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			vector, dist := displacement(positions[i], positions[j])
			if dist <= DistanceTolerance || dist >= cutoff {
				continue
			}
			bonds = append(bonds, Bond{Src: i, Dst: j, Type: 1, Vector: vector})
			neighbors[i] = append(neighbors[i], j)
			neighbors[j] = append(neighbors[j], i)
		}
	}

	target.replaceGraph(bonds, neighbors)

	return nil
}

// displacement returns the vector b−a and its Euclidean norm.
func displacement(a, b []float64) ([]float64, float64) {
	vector := make([]float64, len(a))
	sum := 0.0
	for d := range a {
		vector[d] = b[d] - a[d]
		sum += vector[d] * vector[d]
	}

	return vector, math.Sqrt(sum)
}
