// Package quasicrystal generates aperiodic point patterns for three
// quasicrystal families and builds distance-cutoff neighbor graphs over them
// for downstream physics layers.
//
// 🚀 What is quasicrystal?
//
//	A deterministic, pure-Go generation library that brings together:
//		• Cut-and-project engines: higher-dimensional lattice enumeration,
//		  parallel/perpendicular projection, acceptance-window tests
//		• Substitution engines: Fibonacci symbol rewriting and 2D tile
//		  inflation from fixed seeds
//		• A uniform data model: sites, tiles, bonds, neighbor lists
//		• A distance-cutoff bond builder shared with periodic lattices
//
// Supported families:
//
//	FamilyFibonacci  — 1D two-spacing chain (spacings 1 and φ)
//	FamilyOctagonal  — 2D eight-fold Ammann–Beenker tiling
//	FamilyPentagonal — 2D five-fold Penrose rhombus tiling
//
// Each family is available through both generation methods, selected at the
// single entry point:
//
//	qc, err := quasicrystal.Generate(
//		lattice.FamilyOctagonal, lattice.MethodProjection,
//		quasicrystal.Config{Radius: 4},
//	)
//	if err != nil { ... }
//	_ = lattice.BuildNeighborBonds(qc, 1.2)
//
// Everything is organized under three subpackages plus this root:
//
//	lattice/      — aggregate, bonds, tiles, accessor interface, periodic lattices
//	projection/   — cut-and-project engines per family
//	substitution/ — substitution/inflation engines per family
//
// Downstream collaborators (tight-binding Hamiltonians, visualization, the
// full periodic-lattice subsystem) read aggregates exclusively through the
// lattice.Lattice accessor interface.
package quasicrystal
