// Package huckel computes Hückel molecular-orbital energy spectra for
// conjugated carbon topologies and renders them as energy-level diagrams.
//
// The model is the simplest tight-binding one: every on-site energy α is 0
// and every nearest-neighbour coupling β is −1, so the Hamiltonian of a
// molecule is the negated adjacency matrix of its bond graph.
//
// Supported topologies:
//
//	linear polyene   n sites, open chain           (n ≥ 1)
//	cyclic polyene   n sites, closed ring          (n ≥ 3)
//	platonic solid   4, 6, 8, 12 or 20 vertices
//	buckyball        C60, truncated icosahedron
//
// Under the hood, everything is organized in small subpackages:
//
//	builder/  — topology descriptors and Hamiltonian construction
//	matrix/   — Dense storage, validators and the Jacobi eigen routine
//	solver/   — eigensolver boundary (Jacobi, gonum)
//	spectrum/ — degeneracy grouping of an ascending spectrum
//	diagram/  — text energy-level diagram
//	analysis/ — build → solve → classify pipeline
//	report/   — text and YAML output
//
// Quick ASCII example, benzene (cyclic-polyene 6):
//
//	  ――     2.000
//
//	――  ――   1.000
//
//	――  ――  -1.000
//
//	  ――    -2.000
//
//	6 orbitals.
//
//	go install github.com/katalvlaran/huckel/cmd/huckel@latest
package huckel
