package substitution

import (
	"math"

	"github.com/sotashimozono/quasicrystal/lattice"
)

// pentagonalSeed is the fixed starting tile set: five fat 72° rhombi
// arranged radially around the origin.
func pentagonalSeed() []quad {
	u := unitDirections(5)

	tiles := make([]quad, 0, 5)
	for k := 0; k < 5; k++ {
		tiles = append(tiles, rhombusAt(u[k], u[(k+1)%5], lattice.TileFat))
	}

	return tiles
}

// inflatePentagonal is the per-tile rule, scale 1/φ:
// fat → 1 fat + 2 thin, thin → 1 fat. A uniform scale-about-vertex
// placement, not a true Penrose subdivision.
func inflatePentagonal(t quad) []quad {
	factor := 1 / math.Phi
	if t.tileType == lattice.TileFat {
		return []quad{
			t.scaledAbout(0, factor, lattice.TileFat),
			t.scaledAbout(1, factor, lattice.TileThin),
			t.scaledAbout(3, factor, lattice.TileThin),
		}
	}

	return []quad{t.scaledAbout(0, factor, lattice.TileFat)}
}

// Pentagonal generates the five-fold rhombus tiling by substitution: the
// seed is inflated generations times and the unique vertex set becomes the
// sites. Tile and vertex counts are non-decreasing with generations.
func Pentagonal(generations int) *lattice.Quasicrystal {
	tiles := pentagonalSeed()
	for g := 0; g < generations; g++ {
		tiles = inflate(tiles, inflatePentagonal)
	}

	return assemble(lattice.FamilyPentagonal, tiles, generations)
}
