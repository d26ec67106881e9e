// Package lattice defines the central quasicrystal aggregate and the types
// shared by every generation engine and downstream consumer.
//
// The package provides:
//
//   - Quasicrystal: the immutable-after-generation aggregate of site
//     positions, tiles, provenance tags, and generation parameters.
//   - Bond / Tile: the edge and polygon primitives of the data model.
//   - PeriodicLattice: a structurally parallel periodic type (chain and
//     square lattices) exposing the exact same read accessors.
//   - Lattice: the unified read-only accessor interface satisfied by both
//     aggregate kinds, so tight-binding and visualization layers consume
//     either without type branching.
//   - BuildNeighborBonds: the distance-cutoff neighbor-graph builder, the
//     only operation permitted to mutate an aggregate after construction.
//
// Invariants maintained across the package:
//
//   - every Bond stores Src < Dst and Vector = position[Dst] − position[Src];
//   - adjacency is symmetric: j ∈ Neighbors()[i] ⟺ i ∈ Neighbors()[j];
//   - len(Neighbors()) always equals SiteCount();
//   - every Tile carries exactly TileVertexCount ordered vertices.
//
// Concurrency: all reads are safe to share; BuildNeighborBonds performs a
// non-atomic clear-then-rebuild and requires external synchronization when
// multiple goroutines touch the same aggregate.
//
// Errors:
//
//	ErrNilLattice        - the bond builder received a nil target.
//	ErrNonPositiveCutoff - the bond builder received cutoff ≤ 0.
package lattice
