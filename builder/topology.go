// SPDX-License-Identifier: MIT
// Package: huckel/builder
//
// topology.go — the Topology sum type.
//
// Design:
//   • Topology is sealed by an unexported marker method; the only variants are
//     Linear, Cyclic, Platonic and Buckyball.
//   • Variants are plain values: construct them literally (Linear{N: 6}) and
//     let Build validate the parameter.

package builder

import "fmt"

// Topology describes the bond graph of a conjugated carbon molecule.
type Topology interface {
	// Sites reports the number of carbon sites (matrix dimension).
	Sites() int
	// String renders the descriptor, e.g. "cyclic-polyene(6)".
	String() string

	topology()
}

// Linear is an open polyene chain of N sites.
type Linear struct{ N int }

// Cyclic is a closed polyene ring of N sites.
type Cyclic struct{ N int }

// Platonic is a cage on the vertex–edge graph of the regular polyhedron with
// N vertices.
type Platonic struct{ N int }

// Buckyball is buckminsterfullerene, C60.
type Buckyball struct{}

func (Linear) topology()    {}
func (Cyclic) topology()    {}
func (Platonic) topology()  {}
func (Buckyball) topology() {}

// Sites returns N.
func (t Linear) Sites() int { return t.N }

// Sites returns N.
func (t Cyclic) Sites() int { return t.N }

// Sites returns N.
func (t Platonic) Sites() int { return t.N }

// Sites returns BuckyballSites.
func (Buckyball) Sites() int { return BuckyballSites }

func (t Linear) String() string { return fmt.Sprintf("linear-polyene(%d)", t.N) }

func (t Cyclic) String() string { return fmt.Sprintf("cyclic-polyene(%d)", t.N) }

func (t Platonic) String() string {
	if name, ok := platonicByVertexCount[t.N]; ok {
		return fmt.Sprintf("platonic(%d, %s)", t.N, name)
	}
	return fmt.Sprintf("platonic(%d)", t.N)
}

func (Buckyball) String() string { return "buckyball" }
