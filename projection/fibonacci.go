// SPDX-License-Identifier: MIT
//
// fibonacci.go - the 1D cut-and-project engine: Z² projected onto a line of
// slope 1/φ.
package projection

import (
	"math"
	"sort"

	"github.com/sotashimozono/quasicrystal/lattice"
)

// Fibonacci generates a 1D Fibonacci chain of at most nPoints sites by
// projecting non-negative integer pairs (n₁, n₂) onto a line of slope 1/φ.
//
// A pair is accepted iff its perpendicular offset lies within ± half the
// window cos θ + sin θ (the shadow of the unit square). Accepted parallel
// coordinates are collected in lexicographic enumeration order until nPoints
// are found, then sorted ascending and truncated to exactly nPoints. The
// output is scaled by 1/sin θ so the chain spacings are 1 and φ, matching the
// substitution engine.
//
// The result may hold fewer than nPoints sites only when nPoints exceeds what
// the bounded sweep yields; positions are strictly ascending and start at 0.
// Cost: O(bound²) with bound ∝ nPoints.
func Fibonacci(nPoints int) *lattice.Quasicrystal {
	theta := math.Atan2(1, math.Phi)
	cos, sin := math.Cos(theta), math.Sin(theta)
	window := cos + sin
	half := window / 2

	// Roughly one accepted point per unit of n₁; 2n+4 leaves ample slack.
	bound := 2*nPoints + 4

	var accepted []float64
	for n1 := 0; n1 <= bound && len(accepted) < nPoints; n1++ {
		for n2 := 0; n2 <= bound; n2++ {
			perp := float64(n2)*cos - float64(n1)*sin
			if math.Abs(perp) > half {
				continue
			}
			accepted = append(accepted, (float64(n1)*cos+float64(n2)*sin)/sin)
			if len(accepted) == nPoints {
				break
			}
		}
	}
	sort.Float64s(accepted)

	positions := make([][]float64, 0, len(accepted))
	for _, x := range accepted {
		positions = append(positions, []float64{x})
	}

	params := map[string]float64{
		"n_points":   float64(nPoints),
		"slope":      1 / math.Phi,
		"window":     window,
		"site_count": float64(len(positions)),
	}

	return lattice.New(lattice.FamilyFibonacci, lattice.MethodProjection, 1, positions, nil, params)
}
