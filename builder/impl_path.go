// SPDX-License-Identifier: MIT
// Package: huckel/builder
//
// impl_path.go - Hamiltonian of a linear polyene (the path graph P_n).
//
// Contract:
//   - n ≥ MinLinearSites (else ErrInvalidArgument).
//   - Bonds (i-1)—i for i=1..n-1; no wraparound.
//   - n = 1 yields the 1×1 zero matrix (an isolated site).
//
// Complexity:
//   - Time: O(n²) allocation + O(n) bonds.
//   - Space: O(n²).

package builder

import "github.com/katalvlaran/huckel/matrix"

// BuildLinear returns the n×n Hamiltonian of an open chain of n sites.
func BuildLinear(n int) (*matrix.Dense, error) {
	if err := validateMin(MethodLinear, n, MinLinearSites); err != nil {
		return nil, err
	}

	return hamiltonian(MethodLinear, n, chainBonds(n))
}
