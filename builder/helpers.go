// Package builder provides internal helpers shared by the Hamiltonian
// builders.
package builder

import (
	"fmt"

	"github.com/katalvlaran/huckel/matrix"
)

// Bond is an unordered connection between two sites, stored with U < V.
type Bond struct {
	// U is the zero-based index of the first site.
	U int
	// V is the zero-based index of the second site.
	V int
}

// hamiltonian allocates an n×n zero matrix and writes β symmetrically at
// every bonded pair. Rewriting an already bonded pair is idempotent.
//
// Complexity: O(n²) allocation + O(|bonds|) writes.
func hamiltonian(method string, n int, bonds []Bond) (*matrix.Dense, error) {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	for _, b := range bonds {
		if err = m.Set(b.U, b.V, Beta); err != nil {
			return nil, fmt.Errorf("%s: bond %d—%d: %w", method, b.U, b.V, err)
		}
		if err = m.Set(b.V, b.U, Beta); err != nil {
			return nil, fmt.Errorf("%s: bond %d—%d: %w", method, b.V, b.U, err)
		}
	}

	return m, nil
}

// chainBonds lists the bonds (i−1)—i for i=1..n−1 in increasing order.
func chainBonds(n int) []Bond {
	if n < 2 {
		return nil
	}
	bonds := make([]Bond, 0, n)
	for i := 1; i < n; i++ {
		bonds = append(bonds, Bond{U: i - 1, V: i})
	}

	return bonds
}

// ringBonds lists the chain bonds followed by the closing bond 0—(n−1).
func ringBonds(n int) []Bond {
	return append(chainBonds(n), Bond{U: 0, V: n - 1})
}
