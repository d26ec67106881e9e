// Package projection implements the higher-dimensional cut-and-project
// generation engines for the three quasicrystal families.
//
// All three engines share one scheme: define parallel-space basis vectors at
// equal angular increments (θ = 2π/8 for the octagonal family, θ = 2π/5 for
// the pentagonal family, a line of slope 1/φ for the Fibonacci chain) plus a
// complementary perpendicular-space basis, enumerate integer lattice points
// of Z^D_high in a fixed lexicographic nested sweep, and accept a point iff
// its parallel projection lies within the requested radius and every
// perpendicular coordinate falls inside ± half the family's acceptance
// window.
//
// The Fibonacci engine is count-bounded instead of radius-bounded: it sweeps
// non-negative 2D integers, collects accepted positions in enumeration order
// until the requested count is reached, then sorts ascending and truncates to
// exactly that count.
//
// Determinism: identical inputs always enumerate in the same order and yield
// identical aggregates. An empty result (no candidate passes the window) is
// valid, not an error.
//
// Cost is O(n_max^D_high) in the enumeration bound; callers bound the radius
// to keep the brute-force sweep tractable. No cancellation is provided.
package projection
