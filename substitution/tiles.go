// SPDX-License-Identifier: MIT
//
// tiles.go - shared 2D tile machinery: the quad primitive, scale-about-vertex
// inflation transform, and assembly of an aggregate from a tile list with
// tolerance-quantized vertex deduplication.
package substitution

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/sotashimozono/quasicrystal/lattice"
)

// quad is a 4-vertex tile in construction space.
type quad struct {
	verts    [4]geom.Coord
	tileType int
}

// scaledAbout returns a copy of q shrunk by factor toward its anchor vertex
// (which stays fixed) and relabeled with tileType.
func (q quad) scaledAbout(anchor int, factor float64, tileType int) quad {
	pivot := q.verts[anchor]
	out := quad{tileType: tileType}
	for i, v := range q.verts {
		out.verts[i] = pivot.Plus(v.Minus(pivot).Times(factor))
	}

	return out
}

// unitDirections returns count unit vectors at equal angular increments
// 2π/count starting from the positive x-axis.
func unitDirections(count int) []geom.Coord {
	dirs := make([]geom.Coord, count)
	step := 2 * math.Pi / float64(count)
	for k := range dirs {
		dirs[k] = geom.Coord{X: math.Cos(float64(k) * step), Y: math.Sin(float64(k) * step)}
	}

	return dirs
}

// rhombusAt builds the rhombus spanned by edge directions a and b from the
// origin, vertices ordered origin, a, a+b, b.
func rhombusAt(a, b geom.Coord, tileType int) quad {
	return quad{
		verts:    [4]geom.Coord{{}, a, a.Plus(b), b},
		tileType: tileType,
	}
}

// inflate applies rule to every tile of one generation synchronously.
func inflate(tiles []quad, rule func(quad) []quad) []quad {
	next := make([]quad, 0, 2*len(tiles))
	for _, t := range tiles {
		next = append(next, rule(t)...)
	}

	return next
}

// vertexKey quantizes a coordinate onto the DistanceTolerance grid so that
// vertices shared between tiles collapse to one site despite floating-point
// rounding.
type vertexKey struct {
	x, y int64
}

func quantize(c geom.Coord) vertexKey {
	return vertexKey{
		x: int64(math.Round(c.X / lattice.DistanceTolerance)),
		y: int64(math.Round(c.Y / lattice.DistanceTolerance)),
	}
}

// assemble converts the final tile list into an aggregate: tiles become
// lattice.Tile values (center precomputed) and the unique vertex set, in
// first-appearance order walking tiles and their vertices in order, becomes
// the position list. Complexity: O(tiles).
func assemble(family lattice.Family, tiles []quad, generations int) *lattice.Quasicrystal {
	latTiles := make([]lattice.Tile, 0, len(tiles))
	seen := make(map[vertexKey]struct{}, 4*len(tiles))
	var positions [][]float64

	for _, t := range tiles {
		verts := make([][]float64, 0, lattice.TileVertexCount)
		for _, v := range t.verts {
			verts = append(verts, []float64{v.X, v.Y})
			key := quantize(v)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			positions = append(positions, []float64{v.X, v.Y})
		}
		latTiles = append(latTiles, lattice.NewTile(verts, t.tileType))
	}

	params := map[string]float64{
		"generations": float64(generations),
		"tile_count":  float64(len(latTiles)),
		"site_count":  float64(len(positions)),
	}

	return lattice.New(family, lattice.MethodSubstitution, 2, positions, latTiles, params)
}
