package quasicrystal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sotashimozono/quasicrystal"
	"github.com/sotashimozono/quasicrystal/lattice"
)

// TestGenerate_AllCombinations: every (family, method) pair yields an
// aggregate with matching provenance tags and dimensionality.
func TestGenerate_AllCombinations(t *testing.T) {
	cases := []struct {
		name   string
		family lattice.Family
		method lattice.Method
		cfg    quasicrystal.Config
		dim    int
	}{
		{"FibonacciProjection", lattice.FamilyFibonacci, lattice.MethodProjection, quasicrystal.Config{NPoints: 8}, 1},
		{"FibonacciSubstitution", lattice.FamilyFibonacci, lattice.MethodSubstitution, quasicrystal.Config{Generations: 4}, 1},
		{"OctagonalProjection", lattice.FamilyOctagonal, lattice.MethodProjection, quasicrystal.Config{Radius: 2}, 2},
		{"OctagonalSubstitution", lattice.FamilyOctagonal, lattice.MethodSubstitution, quasicrystal.Config{Generations: 1}, 2},
		{"PentagonalProjection", lattice.FamilyPentagonal, lattice.MethodProjection, quasicrystal.Config{Radius: 1.5}, 2},
		{"PentagonalSubstitution", lattice.FamilyPentagonal, lattice.MethodSubstitution, quasicrystal.Config{Generations: 2}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			qc, err := quasicrystal.Generate(tc.family, tc.method, tc.cfg)
			require.NoError(t, err)
			require.Equal(t, tc.family, qc.Family())
			require.Equal(t, tc.method, qc.Method())
			require.Equal(t, tc.dim, qc.Dim())
			require.Positive(t, qc.SiteCount())
			require.Len(t, qc.Neighbors(), qc.SiteCount())
			for _, p := range qc.Positions() {
				require.Len(t, p, tc.dim)
			}
		})
	}
}

// TestGenerate_UnknownTags: unrecognized family or method tags are the only
// configuration errors.
func TestGenerate_UnknownTags(t *testing.T) {
	_, err := quasicrystal.Generate(lattice.Family(99), lattice.MethodProjection, quasicrystal.Config{})
	require.ErrorIs(t, err, quasicrystal.ErrUnknownFamily)

	_, err = quasicrystal.Generate(lattice.FamilyFibonacci, lattice.Method(99), quasicrystal.Config{})
	require.ErrorIs(t, err, quasicrystal.ErrUnknownMethod)

	_, err = quasicrystal.Generate(lattice.Family(0), lattice.MethodSubstitution, quasicrystal.Config{})
	require.ErrorIs(t, err, quasicrystal.ErrUnknownFamily)
}

// TestGenerate_IndependentAggregates: repeated calls share no state.
func TestGenerate_IndependentAggregates(t *testing.T) {
	a, err := quasicrystal.Generate(lattice.FamilyFibonacci, lattice.MethodSubstitution, quasicrystal.Config{Generations: 3})
	require.NoError(t, err)
	b, err := quasicrystal.Generate(lattice.FamilyFibonacci, lattice.MethodSubstitution, quasicrystal.Config{Generations: 3})
	require.NoError(t, err)

	require.NoError(t, lattice.BuildNeighborBonds(a, 2.0))
	require.Positive(t, a.BondCount())
	require.Zero(t, b.BondCount(), "building bonds on one aggregate must not touch another")
}

// TestFibonacciProjectionBonds is the canonical scenario: a 10-point chain
// with cutoff 2.0 produces 1D bonds between nearest neighbors.
func TestFibonacciProjectionBonds(t *testing.T) {
	qc, err := quasicrystal.Generate(lattice.FamilyFibonacci, lattice.MethodProjection, quasicrystal.Config{NPoints: 10})
	require.NoError(t, err)

	const cutoff = 2.0
	require.NoError(t, lattice.BuildNeighborBonds(qc, cutoff))
	require.Positive(t, qc.BondCount())

	for _, b := range qc.Bonds() {
		require.Len(t, b.Vector, 1)
		d := math.Abs(b.Vector[0])
		require.Greater(t, d, lattice.DistanceTolerance)
		require.Less(t, d, cutoff)
	}
}
