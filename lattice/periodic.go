package lattice

// PeriodicLattice is the periodic counterpart of Quasicrystal: a finite patch
// of a Bravais lattice exposing the exact same read accessors, so downstream
// physics layers consume periodic and quasiperiodic data identically.
//
// Only chain (1D) and square (2D) lattices are provided here; richer
// unit-cell/translation machinery belongs to the periodic-lattice subsystem
// proper.
type PeriodicLattice struct {
	dim       int
	positions [][]float64

	bonds     []Bond
	neighbors [][]int
}

// NewChain builds a 1D chain of n sites at uniform spacing, sites ordered
// left to right from the origin. Complexity: O(n).
func NewChain(n int, spacing float64) *PeriodicLattice {
	positions := make([][]float64, 0, n)
	for i := 0; i < n; i++ {
		positions = append(positions, []float64{float64(i) * spacing})
	}

	return &PeriodicLattice{dim: 1, positions: positions, neighbors: make([][]int, len(positions))}
}

// NewSquare builds an nx×ny square-lattice patch at uniform spacing, sites in
// row-major order: index = y·nx + x. Complexity: O(nx·ny).
func NewSquare(nx, ny int, spacing float64) *PeriodicLattice {
	positions := make([][]float64, 0, nx*ny)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			positions = append(positions, []float64{float64(x) * spacing, float64(y) * spacing})
		}
	}

	return &PeriodicLattice{dim: 2, positions: positions, neighbors: make([][]int, len(positions))}
}

// Dim returns the spatial dimension of the lattice.
func (p *PeriodicLattice) Dim() int { return p.dim }

// Positions returns the site coordinate list in row-major order.
// The returned slice is owned by the lattice; callers must not mutate it.
func (p *PeriodicLattice) Positions() [][]float64 { return p.positions }

// Bonds returns the current bond list; nil until BuildNeighborBonds runs.
func (p *PeriodicLattice) Bonds() []Bond { return p.bonds }

// Neighbors returns the per-site neighbor-index lists.
func (p *PeriodicLattice) Neighbors() [][]int { return p.neighbors }

// SiteCount returns the number of sites.
func (p *PeriodicLattice) SiteCount() int { return len(p.positions) }

// BondCount returns the number of bonds.
func (p *PeriodicLattice) BondCount() int { return len(p.bonds) }

// replaceGraph installs a freshly built bond/neighbor graph (bondTarget).
func (p *PeriodicLattice) replaceGraph(bonds []Bond, neighbors [][]int) {
	p.bonds = bonds
	p.neighbors = neighbors
}
