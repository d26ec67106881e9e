// Package substitution implements the recursive substitution/inflation
// generation engines, the algorithmic alternative to cut-and-project.
//
// The 1D Fibonacci engine rewrites a symbol sequence over {Long, Short}
// (Long→Long,Short; Short→Long) starting from a single Long, then walks the
// final sequence from 0 adding φ per Long and 1 per Short.
//
// The 2D engines start from small fixed seeds — one square plus eight 45°
// rhombi around the origin for the octagonal family, five fat 72° rhombi
// arranged radially for the pentagonal family — and replace every tile with
// its type-specific inflation output on each generation. After the final
// generation the unique vertex set across all tiles, deduplicated through a
// tolerance-quantized key at lattice.DistanceTolerance, becomes the position
// list in first-appearance order.
//
// Known limitation, preserved deliberately: the 2D inflation applies a
// uniform scale-about-a-vertex transform per child (with the rule
// multiplicities fat→1 fat+2 thin, thin→1 fat, and the analogous square→
// 1 square+2 rhombi, rhombus→1 square) rather than a true topological
// subdivision. Tile and vertex counts are non-decreasing with generation
// depth; exact subdivision topology is not guaranteed.
package substitution
