// SPDX-License-Identifier: MIT
//
// generate.go - the single construction entry point: a (family, method)
// registry dispatching to the projection and substitution engines.
package quasicrystal

import (
	"errors"
	"fmt"

	"github.com/sotashimozono/quasicrystal/lattice"
	"github.com/sotashimozono/quasicrystal/projection"
	"github.com/sotashimozono/quasicrystal/substitution"
)

// Sentinel errors for construction. An unrecognized family or method tag is
// the only configuration error: all other parameters are caller-bounded by
// contract (radii, counts, and generation depths are not defensively checked).
var (
	// ErrUnknownFamily indicates an unrecognized quasicrystal family tag.
	ErrUnknownFamily = errors.New("quasicrystal: unknown family")

	// ErrUnknownMethod indicates an unrecognized generation-method tag.
	ErrUnknownMethod = errors.New("quasicrystal: unknown generation method")
)

// Config carries the family-specific generation parameters. Exactly one field
// matters per (family, method) pair; the rest are ignored.
type Config struct {
	// Radius bounds the parallel-space norm for the 2D projection engines.
	Radius float64

	// NPoints is the target site count of the 1D Fibonacci projection.
	NPoints int

	// Generations is the substitution depth for all substitution engines.
	Generations int
}

// Generate produces a fresh aggregate for the requested family and method.
// Every call returns an independent aggregate with no shared state; an empty
// result (nothing passed the acceptance window) is valid, not an error.
//
// Errors: ErrUnknownFamily / ErrUnknownMethod, wrapped with the offending tag.
func Generate(family lattice.Family, method lattice.Method, cfg Config) (*lattice.Quasicrystal, error) {
	switch method {
	case lattice.MethodProjection:
		switch family {
		case lattice.FamilyFibonacci:
			return projection.Fibonacci(cfg.NPoints), nil
		case lattice.FamilyOctagonal:
			return projection.Octagonal(cfg.Radius), nil
		case lattice.FamilyPentagonal:
			return projection.Pentagonal(cfg.Radius), nil
		}
	case lattice.MethodSubstitution:
		switch family {
		case lattice.FamilyFibonacci:
			return substitution.Fibonacci(cfg.Generations), nil
		case lattice.FamilyOctagonal:
			return substitution.Octagonal(cfg.Generations), nil
		case lattice.FamilyPentagonal:
			return substitution.Pentagonal(cfg.Generations), nil
		}
	default:
		return nil, fmt.Errorf("Generate: method %d: %w", method, ErrUnknownMethod)
	}

	return nil, fmt.Errorf("Generate: family %d: %w", family, ErrUnknownFamily)
}
