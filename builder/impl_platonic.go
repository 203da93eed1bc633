// SPDX-License-Identifier: MIT
// Package: huckel/builder
//
// impl_platonic.go — Hamiltonians of the five Platonic cages.
//
// Contract:
//   • BuildPlatonic(n): n ∈ {4, 6, 8, 12, 20}; the solid is chosen by vertex
//     count so the result is always n×n. Anything else → ErrInvalidArgument.
//   • PlatonicSolid(name): same matrix, chosen by name. Unknown name →
//     ErrInvalidArgument.
//   • Bonds come from the pre-sorted tables in variants_platonic.go.
//
// Complexity:
//   • Time: O(V²) allocation + O(E) bonds (V ≤ 20, E ≤ 30).

package builder

import "github.com/katalvlaran/huckel/matrix"

// BuildPlatonic returns the Hamiltonian of the Platonic solid with n vertices.
func BuildPlatonic(n int) (*matrix.Dense, error) {
	name, err := platonicName(n)
	if err != nil {
		return nil, err
	}

	return PlatonicSolid(name)
}

// PlatonicSolid returns the Hamiltonian of the named Platonic solid.
func PlatonicSolid(name PlatonicName) (*matrix.Dense, error) {
	n, ok := platonicVertexCounts[name]
	if !ok {
		return nil, builderErrorf(MethodPlatonic, ErrInvalidArgument, "unknown solid %q", name)
	}

	return hamiltonian(MethodPlatonic, n, platonicEdgeSets[name])
}

// platonicName resolves a vertex count to its solid.
func platonicName(n int) (PlatonicName, error) {
	name, ok := platonicByVertexCount[n]
	if !ok {
		return 0, builderErrorf(MethodPlatonic, ErrInvalidArgument, "no Platonic solid with %d vertices (want 4, 6, 8, 12 or 20)", n)
	}

	return name, nil
}
