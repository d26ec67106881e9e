// SPDX-License-Identifier: MIT
//
// cut_project.go - shared 2D cut-and-project machinery: basis construction,
// lexicographic enumeration of Z^D_high, and the acceptance-window test.
package projection

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/sotashimozono/quasicrystal/lattice"
)

// EnumerationSafetyFactor scales the requested radius into the integer
// enumeration bound n_max = ceil(factor · radius), so the sweep comfortably
// covers every lattice point whose parallel projection can land inside the
// radius.
const EnumerationSafetyFactor = 1.5

// Acceptance-window sizes, fixed per family. The window is a square in
// perpendicular space: a candidate passes iff every perpendicular coordinate
// lies within ± window/2.
const (
	// OctagonalWindow is the silver ratio 1+√2, the natural scale of the
	// eight-fold acceptance domain.
	OctagonalWindow = 1 + math.Sqrt2

	// PentagonalWindow is the golden ratio φ.
	PentagonalWindow = math.Phi
)

// basis2D holds the parallel and perpendicular basis vectors of one 2D
// family: par[j] at angle j·2π/symmetry, perp[j] at the conjugate multiple of
// the same increment (3θ for eight-fold, 2θ for five-fold).
type basis2D struct {
	par  []geom.Coord
	perp []geom.Coord
}

func newBasis2D(dHigh, symmetry, perpMultiple int) basis2D {
	step := 2 * math.Pi / float64(symmetry)
	b := basis2D{par: make([]geom.Coord, dHigh), perp: make([]geom.Coord, dHigh)}
	for j := 0; j < dHigh; j++ {
		b.par[j] = geom.Coord{X: math.Cos(float64(j) * step), Y: math.Sin(float64(j) * step)}
		b.perp[j] = geom.Coord{X: math.Cos(float64(j*perpMultiple) * step), Y: math.Sin(float64(j*perpMultiple) * step)}
	}

	return b
}

// cutProject2D enumerates n ∈ [-n_max, n_max]^dHigh in lexicographic order
// and keeps the parallel projection of every point that passes both the
// radius bound and the perpendicular window test. Output order is the
// enumeration order (unsorted by contract).
func cutProject2D(family lattice.Family, dHigh, symmetry, perpMultiple int, window, radius float64) *lattice.Quasicrystal {
	b := newBasis2D(dHigh, symmetry, perpMultiple)
	nMax := int(math.Ceil(radius * EnumerationSafetyFactor))

	var positions [][]float64
	if nMax >= 0 {
		half := window / 2
		n := make([]int, dHigh)
		for i := range n {
			n[i] = -nMax
		}
		for {
			var par, perp geom.Coord
			for j, nj := range n {
				par = par.Plus(b.par[j].Times(float64(nj)))
				perp = perp.Plus(b.perp[j].Times(float64(nj)))
			}
			if par.Magnitude() <= radius &&
				math.Abs(perp.X) <= half && math.Abs(perp.Y) <= half {
				positions = append(positions, []float64{par.X, par.Y})
			}

			// Advance the lexicographic counter: last index varies fastest.
			carry := dHigh - 1
			for ; carry >= 0; carry-- {
				n[carry]++
				if n[carry] <= nMax {
					break
				}
				n[carry] = -nMax
			}
			if carry < 0 {
				break
			}
		}
	}

	params := map[string]float64{
		"radius":     radius,
		"symmetry":   float64(symmetry),
		"window":     window,
		"n_max":      float64(nMax),
		"site_count": float64(len(positions)),
	}

	return lattice.New(family, lattice.MethodProjection, 2, positions, nil, params)
}

// Octagonal generates the eight-fold (Ammann–Beenker) point pattern by
// projecting Z⁴ through bases at 45° increments, keeping points whose
// parallel norm is ≤ radius and whose perpendicular coordinates fit the
// silver-ratio window. Cost: O((2·ceil(1.5r)+1)⁴).
func Octagonal(radius float64) *lattice.Quasicrystal {
	return cutProject2D(lattice.FamilyOctagonal, 4, 8, 3, OctagonalWindow, radius)
}

// Pentagonal generates the five-fold (Penrose-like) point pattern by
// projecting Z⁵ through bases at 72° increments, keeping points whose
// parallel norm is ≤ radius and whose perpendicular coordinates fit the
// golden-ratio window. Cost: O((2·ceil(1.5r)+1)⁵).
func Pentagonal(radius float64) *lattice.Quasicrystal {
	return cutProject2D(lattice.FamilyPentagonal, 5, 5, 2, PentagonalWindow, radius)
}
