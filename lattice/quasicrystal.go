package lattice

// Quasicrystal is the aggregate produced by one generation call: positions,
// tiles (possibly empty for the 1D family), provenance tags, generation
// parameters, and the bond/neighbor graph.
//
// Positions, tiles, tags, and parameters are fixed at construction. The bond
// and neighbor fields are the only post-construction mutable state, and
// exclusively through BuildNeighborBonds. There is no structural sharing
// between aggregates from different generation calls.
type Quasicrystal struct {
	family Family
	method Method
	dim    int

	positions [][]float64
	tiles     []Tile
	params    map[string]float64

	bonds     []Bond
	neighbors [][]int
}

// New constructs a Quasicrystal aggregate. The positions and tiles slices are
// adopted as-is (engines hand over exclusive ownership); params is copied so
// the mapping stays append-only-at-construction, read-only thereafter.
// Neighbor lists start empty with one entry per site.
func New(family Family, method Method, dim int, positions [][]float64, tiles []Tile, params map[string]float64) *Quasicrystal {
	p := make(map[string]float64, len(params))
	for k, v := range params {
		p[k] = v
	}

	return &Quasicrystal{
		family:    family,
		method:    method,
		dim:       dim,
		positions: positions,
		tiles:     tiles,
		params:    p,
		neighbors: make([][]int, len(positions)),
	}
}

// Family returns the quasicrystal family tag.
func (q *Quasicrystal) Family() Family { return q.family }

// Method returns the generation-method provenance tag.
func (q *Quasicrystal) Method() Method { return q.method }

// Dim returns the spatial dimension of the site positions.
func (q *Quasicrystal) Dim() int { return q.dim }

// Positions returns the site coordinate list in generation order.
// The returned slice is owned by the aggregate; callers must not mutate it.
// Complexity: O(1).
func (q *Quasicrystal) Positions() [][]float64 { return q.positions }

// Tiles returns the tile list (empty for the 1D family and for projection
// aggregates, which carry sites only).
func (q *Quasicrystal) Tiles() []Tile { return q.tiles }

// Param reports the named generation parameter and whether it was recorded.
func (q *Quasicrystal) Param(name string) (float64, bool) {
	v, ok := q.params[name]
	return v, ok
}

// Params returns a copy of the generation parameters.
// Complexity: O(len(params)).
func (q *Quasicrystal) Params() map[string]float64 {
	p := make(map[string]float64, len(q.params))
	for k, v := range q.params {
		p[k] = v
	}

	return p
}

// Bonds returns the current bond list; nil until BuildNeighborBonds runs.
func (q *Quasicrystal) Bonds() []Bond { return q.bonds }

// Neighbors returns the per-site neighbor-index lists.
func (q *Quasicrystal) Neighbors() [][]int { return q.neighbors }

// SiteCount returns the number of sites. Complexity: O(1).
func (q *Quasicrystal) SiteCount() int { return len(q.positions) }

// BondCount returns the number of bonds. Complexity: O(1).
func (q *Quasicrystal) BondCount() int { return len(q.bonds) }

// replaceGraph installs a freshly built bond/neighbor graph, discarding any
// previous one. Reserved to BuildNeighborBonds via the bondTarget contract.
func (q *Quasicrystal) replaceGraph(bonds []Bond, neighbors [][]int) {
	q.bonds = bonds
	q.neighbors = neighbors
}
