// SPDX-License-Identifier: MIT
// Package: huckel/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One dispatcher: Build(t) matches every Topology variant exhaustively.
//   - Per-variant builders are implemented in impl_*.go.
//   - Safety: never panic; return ErrInvalidArgument-wrapped errors.

package builder

import "github.com/katalvlaran/huckel/matrix"

// Build returns the Hückel Hamiltonian of t.
//
// Errors:
//   - ErrInvalidArgument for a nil descriptor or an out-of-domain size.
//
// Complexity: O(n²) for the dense allocation.
func Build(t Topology) (*matrix.Dense, error) {
	switch v := t.(type) {
	case Linear:
		return BuildLinear(v.N)
	case Cyclic:
		return BuildCyclic(v.N)
	case Platonic:
		return BuildPlatonic(v.N)
	case Buckyball:
		return BuildBuckyball()
	default:
		return nil, builderErrorf(MethodBuild, ErrInvalidArgument, "unsupported topology %T", t)
	}
}

// Bonds returns the bond list of t in the order the builders emit it.
// The returned slice is a fresh copy.
//
// Errors: the same domain checks as Build.
func Bonds(t Topology) ([]Bond, error) {
	var bonds []Bond
	switch v := t.(type) {
	case Linear:
		if err := validateMin(MethodLinear, v.N, MinLinearSites); err != nil {
			return nil, err
		}
		bonds = chainBonds(v.N)
	case Cyclic:
		if err := validateMin(MethodCyclic, v.N, MinCyclicSites); err != nil {
			return nil, err
		}
		bonds = ringBonds(v.N)
	case Platonic:
		name, err := platonicName(v.N)
		if err != nil {
			return nil, err
		}
		bonds = platonicEdgeSets[name]
	case Buckyball:
		bonds = fullereneBonds
	default:
		return nil, builderErrorf(MethodBuild, ErrInvalidArgument, "unsupported topology %T", t)
	}

	out := make([]Bond, len(bonds))
	copy(out, bonds)

	return out, nil
}
