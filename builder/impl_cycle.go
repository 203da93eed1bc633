// SPDX-License-Identifier: MIT
// Package: huckel/builder
//
// impl_cycle.go — Hamiltonian of a cyclic polyene (the cycle graph C_n).
//
// Contract:
//   • n ≥ MinCyclicSites (else ErrInvalidArgument). Rings of one or two sites
//     would need a self-bond or a doubled bond, neither of which is a Hückel
//     ring, so they are rejected here rather than by callers.
//   • Bonds are the chain bonds plus the closing bond 0—(n-1).
//
// Complexity:
//   • Time: O(n²) allocation + O(n) bonds.
//   • Space: O(n²).

package builder

import "github.com/katalvlaran/huckel/matrix"

// BuildCyclic returns the n×n Hamiltonian of a closed ring of n sites.
func BuildCyclic(n int) (*matrix.Dense, error) {
	if err := validateMin(MethodCyclic, n, MinCyclicSites); err != nil {
		return nil, err
	}

	return hamiltonian(MethodCyclic, n, ringBonds(n))
}
