// Package lattice: core type declarations, provenance tags, and sentinel
// errors for the quasicrystal data model.
package lattice

import "errors"

// Sentinel errors for lattice operations.
var (
	// ErrNilLattice indicates a nil aggregate was passed to the bond builder.
	ErrNilLattice = errors.New("lattice: nil lattice")

	// ErrNonPositiveCutoff indicates BuildNeighborBonds received cutoff ≤ 0.
	ErrNonPositiveCutoff = errors.New("lattice: cutoff must be positive")
)

// DistanceTolerance is the geometric tolerance shared by the bond builder and
// the substitution engines' vertex deduplication. Site pairs closer than this
// are treated as coincident and never bonded.
const DistanceTolerance = 1e-10

// TileVertexCount is the fixed polygon arity of every tile in all current
// families (squares and rhombi alike).
const TileVertexCount = 4

// Method records which generation strategy produced an aggregate.
// It is provenance only: nothing dispatches on it at runtime.
type Method uint8

const (
	// MethodProjection marks aggregates built by higher-dimensional
	// cut-and-project enumeration.
	MethodProjection Method = iota + 1

	// MethodSubstitution marks aggregates built by recursive
	// substitution/inflation.
	MethodSubstitution
)

// String returns the canonical lowercase name of the method.
func (m Method) String() string {
	switch m {
	case MethodProjection:
		return "projection"
	case MethodSubstitution:
		return "substitution"
	default:
		return "unknown"
	}
}

// Family identifies one of the three supported quasicrystal families.
type Family uint8

const (
	// FamilyFibonacci is the 1D two-spacing chain (spacings 1 and φ).
	FamilyFibonacci Family = iota + 1

	// FamilyOctagonal is the 2D eight-fold (Ammann–Beenker) tiling.
	FamilyOctagonal

	// FamilyPentagonal is the 2D five-fold (Penrose rhombus) tiling.
	FamilyPentagonal
)

// String returns the canonical lowercase name of the family.
func (f Family) String() string {
	switch f {
	case FamilyFibonacci:
		return "fibonacci"
	case FamilyOctagonal:
		return "octagonal"
	case FamilyPentagonal:
		return "pentagonal"
	default:
		return "unknown"
	}
}

// Tile type tags. The integer meaning is family-specific: the octagonal
// family distinguishes squares from 45° rhombi, the pentagonal family fat
// (72°) from thin (36°) rhombi. Both pairs share the same numeric values.
const (
	TileSquare  = 1
	TileRhombus = 2

	TileFat  = 1
	TileThin = 2
)

// Tile is a 4-vertex polygon with an ordered vertex list, a family-specific
// integer type tag, and a center (the mean of its vertices).
type Tile struct {
	// Vertices holds exactly TileVertexCount ordered D-dimensional corners.
	Vertices [][]float64

	// Type is the family-specific tag (TileSquare/TileRhombus or
	// TileFat/TileThin).
	Type int

	// Center is the mean of Vertices, precomputed at construction.
	Center []float64
}

// NewTile builds a Tile from its ordered vertices and type tag, computing the
// center as the vertex mean. Complexity: O(TileVertexCount · D).
func NewTile(vertices [][]float64, tileType int) Tile {
	dim := 0
	if len(vertices) > 0 {
		dim = len(vertices[0])
	}
	center := make([]float64, dim)
	for _, v := range vertices {
		for d := 0; d < dim; d++ {
			center[d] += v[d]
		}
	}
	for d := 0; d < dim; d++ {
		center[d] /= float64(len(vertices))
	}

	return Tile{Vertices: vertices, Type: tileType, Center: center}
}

// Bond is a normalized undirected edge between two sites.
type Bond struct {
	// Src and Dst are site indices with Src < Dst.
	Src, Dst int

	// Type is an integer bond tag (the cutoff builder always emits 1).
	Type int

	// Vector is the displacement position[Dst] − position[Src]; its length
	// equals the aggregate dimension.
	Vector []float64
}

// Lattice is the unified read-only accessor interface shared by quasicrystal
// aggregates and periodic lattices. Implementations never mutate through
// these methods; only the bond builder rewrites graph state.
type Lattice interface {
	// Positions returns the site coordinate list. Callers must not mutate it.
	Positions() [][]float64

	// Bonds returns the current bond list (nil before any build).
	Bonds() []Bond

	// Neighbors returns the per-site neighbor-index lists; its length always
	// equals SiteCount().
	Neighbors() [][]int

	// SiteCount returns the number of sites.
	SiteCount() int

	// BondCount returns the number of bonds.
	BondCount() int
}

// Compile-time interface conformance checks.
var (
	_ Lattice = (*Quasicrystal)(nil)
	_ Lattice = (*PeriodicLattice)(nil)

	_ bondTarget = (*Quasicrystal)(nil)
	_ bondTarget = (*PeriodicLattice)(nil)
)
