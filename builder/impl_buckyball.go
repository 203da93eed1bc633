// SPDX-License-Identifier: MIT
// Package: huckel/builder
//
// impl_buckyball.go — Hamiltonian of buckminsterfullerene (C60).

package builder

import "github.com/katalvlaran/huckel/matrix"

// BuildBuckyball returns the 60×60 Hamiltonian of C60 built from the fixed
// truncated-icosahedron table. It has no parameter and cannot fail on valid
// table data; the error is kept for signature symmetry with the other builders.
func BuildBuckyball() (*matrix.Dense, error) {
	return hamiltonian(MethodBuckyball, BuckyballSites, fullereneBonds)
}
