package substitution

import (
	"math"

	"github.com/sotashimozono/quasicrystal/lattice"
)

// symbol is one letter of the Fibonacci substitution alphabet.
type symbol uint8

const (
	symbolLong symbol = iota
	symbolShort
)

// fibonacciSequence applies Long→(Long,Short), Short→(Long) synchronously
// generations times to the seed sequence (Long).
func fibonacciSequence(generations int) []symbol {
	seq := []symbol{symbolLong}
	for g := 0; g < generations; g++ {
		next := make([]symbol, 0, 2*len(seq))
		for _, s := range seq {
			if s == symbolLong {
				next = append(next, symbolLong, symbolShort)
			} else {
				next = append(next, symbolLong)
			}
		}
		seq = next
	}

	return seq
}

// FibonacciSequenceLength returns the symbol count after generations
// substitution passes: 1, 2, 3, 5, 8, 13, 21, … for generations = 0, 1, 2, ….
// The resulting chain has FibonacciSequenceLength(g)+1 sites. Complexity: O(g).
func FibonacciSequenceLength(generations int) int {
	if generations == 0 {
		return 1
	}
	a, b := 1, 2
	for g := 1; g < generations; g++ {
		a, b = b, a+b
	}

	return b
}

// Fibonacci generates the 1D chain by substitution: the final symbol sequence
// is walked left to right from 0, adding φ per Long and 1 per Short, with the
// origin included as the first site. Cost: O(FibonacciSequenceLength(g)).
func Fibonacci(generations int) *lattice.Quasicrystal {
	seq := fibonacciSequence(generations)

	positions := make([][]float64, 0, len(seq)+1)
	x := 0.0
	positions = append(positions, []float64{x})
	for _, s := range seq {
		if s == symbolLong {
			x += math.Phi
		} else {
			x++
		}
		positions = append(positions, []float64{x})
	}

	params := map[string]float64{
		"generations":     float64(generations),
		"sequence_length": float64(len(seq)),
		"site_count":      float64(len(positions)),
	}

	return lattice.New(lattice.FamilyFibonacci, lattice.MethodSubstitution, 1, positions, nil, params)
}
