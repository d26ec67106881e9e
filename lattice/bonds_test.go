package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sotashimozono/quasicrystal/lattice"
)

// chainAggregate builds a small 1D aggregate with the given coordinates.
func chainAggregate(xs ...float64) *lattice.Quasicrystal {
	positions := make([][]float64, 0, len(xs))
	for _, x := range xs {
		positions = append(positions, []float64{x})
	}

	return lattice.New(lattice.FamilyFibonacci, lattice.MethodSubstitution, 1, positions, nil, nil)
}

func norm(v []float64) float64 {
	sum := 0.0
	for _, c := range v {
		sum += c * c
	}

	return math.Sqrt(sum)
}

//----------------------------------------------------------------------------//
// Builder contract
//----------------------------------------------------------------------------//

// TestBuildNeighborBonds_Invariants verifies src<dst ordering, adjacency
// symmetry, vector norms, and the bond/adjacency count identity.
func TestBuildNeighborBonds_Invariants(t *testing.T) {
	qc := chainAggregate(0, 1, 2.5, 2.6, 10)
	const cutoff = 2.0
	require.NoError(t, lattice.BuildNeighborBonds(qc, cutoff))

	require.Len(t, qc.Neighbors(), qc.SiteCount())

	total := 0
	for i, nb := range qc.Neighbors() {
		total += len(nb)
		for _, j := range nb {
			require.Contains(t, qc.Neighbors()[j], i, "adjacency must be symmetric")
		}
	}
	require.Equal(t, qc.BondCount(), total/2)

	for _, b := range qc.Bonds() {
		require.Less(t, b.Src, b.Dst)
		require.Equal(t, 1, b.Type)
		require.Len(t, b.Vector, 1)
		d := norm(b.Vector)
		require.Greater(t, d, lattice.DistanceTolerance)
		require.Less(t, d, cutoff)
		require.InDelta(t, qc.Positions()[b.Dst][0]-qc.Positions()[b.Src][0], b.Vector[0], 1e-12)
	}
}

// TestBuildNeighborBonds_RebuildReplaces checks that a second build with a
// different cutoff leaves only the latest graph.
func TestBuildNeighborBonds_RebuildReplaces(t *testing.T) {
	qc := chainAggregate(0, 1, 2, 3)

	require.NoError(t, lattice.BuildNeighborBonds(qc, 2.5))
	require.Equal(t, 5, qc.BondCount(), "spacing 1 and 2 both under cutoff 2.5")

	require.NoError(t, lattice.BuildNeighborBonds(qc, 1.5))
	require.Equal(t, 3, qc.BondCount(), "only unit spacings under cutoff 1.5")
	for _, nb := range qc.Neighbors() {
		require.LessOrEqual(t, len(nb), 2)
	}
}

// TestBuildNeighborBonds_CoincidentExcluded checks that near-duplicate sites
// closer than the tolerance never bond.
func TestBuildNeighborBonds_CoincidentExcluded(t *testing.T) {
	qc := chainAggregate(0, 1e-12, 1)
	require.NoError(t, lattice.BuildNeighborBonds(qc, 2.0))

	for _, b := range qc.Bonds() {
		require.Greater(t, norm(b.Vector), lattice.DistanceTolerance)
	}
	// Sites 0 and 1 coincide within tolerance: each bonds only to site 2.
	require.Equal(t, 2, qc.BondCount())
	require.Equal(t, []int{2}, qc.Neighbors()[0])
	require.Equal(t, []int{2}, qc.Neighbors()[1])
}

// TestBuildNeighborBonds_Validation covers the two sentinel errors.
func TestBuildNeighborBonds_Validation(t *testing.T) {
	require.ErrorIs(t, lattice.BuildNeighborBonds(nil, 1.0), lattice.ErrNilLattice)

	qc := chainAggregate(0, 1)
	require.ErrorIs(t, lattice.BuildNeighborBonds(qc, 0), lattice.ErrNonPositiveCutoff)
	require.ErrorIs(t, lattice.BuildNeighborBonds(qc, -3), lattice.ErrNonPositiveCutoff)
}

// TestBuildNeighborBonds_EmptyAggregate: zero sites is a valid, bond-free graph.
func TestBuildNeighborBonds_EmptyAggregate(t *testing.T) {
	qc := chainAggregate()
	require.NoError(t, lattice.BuildNeighborBonds(qc, 1.0))
	require.Zero(t, qc.BondCount())
	require.Empty(t, qc.Neighbors())
}

//----------------------------------------------------------------------------//
// Aggregate construction
//----------------------------------------------------------------------------//

// TestNew_ParamsReadOnly verifies the params mapping is copied both in and out.
func TestNew_ParamsReadOnly(t *testing.T) {
	params := map[string]float64{"radius": 3}
	qc := lattice.New(lattice.FamilyOctagonal, lattice.MethodProjection, 2, nil, nil, params)

	params["radius"] = 99
	r, ok := qc.Param("radius")
	require.True(t, ok)
	require.Equal(t, 3.0, r)

	out := qc.Params()
	out["radius"] = 7
	r, _ = qc.Param("radius")
	require.Equal(t, 3.0, r)
}

// TestNewTile_Center verifies the center is the vertex mean.
func TestNewTile_Center(t *testing.T) {
	tile := lattice.NewTile([][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, lattice.TileSquare)
	require.Len(t, tile.Vertices, lattice.TileVertexCount)
	require.InDelta(t, 0.5, tile.Center[0], 1e-15)
	require.InDelta(t, 0.5, tile.Center[1], 1e-15)
}
