package substitution

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/sotashimozono/quasicrystal/lattice"
)

// silverRatio 1+√2 governs eight-fold inflation scaling.
const silverRatio = 1 + math.Sqrt2

// octagonalSeed is the fixed starting tile set: eight 45° rhombi arranged
// radially around the origin plus one unit square attached at the boundary
// vertex u₀+u₁.
func octagonalSeed() []quad {
	u := unitDirections(8)

	tiles := make([]quad, 0, 9)
	for k := 0; k < 8; k++ {
		tiles = append(tiles, rhombusAt(u[k], u[(k+1)%8], lattice.TileRhombus))
	}

	base := u[0].Plus(u[1])
	square := quad{
		verts: [4]geom.Coord{
			base,
			base.Plus(u[0]),
			base.Plus(u[0]).Plus(u[2]),
			base.Plus(u[2]),
		},
		tileType: lattice.TileSquare,
	}
	tiles = append(tiles, square)

	return tiles
}

// inflateOctagonal is the per-tile rule, scale 1/(1+√2):
// square → 1 square + 2 rhombi, rhombus → 1 square. A uniform
// scale-about-vertex placement, not a true Ammann–Beenker subdivision.
func inflateOctagonal(t quad) []quad {
	const factor = 1 / silverRatio
	if t.tileType == lattice.TileSquare {
		return []quad{
			t.scaledAbout(0, factor, lattice.TileSquare),
			t.scaledAbout(1, factor, lattice.TileRhombus),
			t.scaledAbout(3, factor, lattice.TileRhombus),
		}
	}

	return []quad{t.scaledAbout(0, factor, lattice.TileSquare)}
}

// Octagonal generates the eight-fold tiling by substitution: the seed is
// inflated generations times and the unique vertex set becomes the sites.
// Tile and vertex counts are non-decreasing with generations.
func Octagonal(generations int) *lattice.Quasicrystal {
	tiles := octagonalSeed()
	for g := 0; g < generations; g++ {
		tiles = inflate(tiles, inflateOctagonal)
	}

	return assemble(lattice.FamilyOctagonal, tiles, generations)
}
