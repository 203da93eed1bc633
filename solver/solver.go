// SPDX-License-Identifier: MIT

// Package solver is the eigensolver boundary: it hands a real symmetric
// matrix to a dense eigen-decomposition routine and returns the eigenvalues
// in ascending order. Degenerate eigenvalues come back as repeated, possibly
// binary-imprecise, close values; grouping them is spectrum's job.
package solver

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/huckel"
	"github.com/katalvlaran/huckel/matrix"
)

// Solver computes the ascending eigenvalues of a symmetric matrix.
type Solver interface {
	// Name identifies the implementation ("jacobi", "gonum").
	Name() string
	// EigenvaluesSym returns all eigenvalues of m, ascending.
	EigenvaluesSym(m matrix.Matrix) ([]float64, error)
}

// Solver names accepted by ByName.
const (
	NameJacobi = "jacobi"
	NameGonum  = "gonum"
)

// Default returns the in-tree Jacobi solver with package defaults.
func Default() Solver {
	return Jacobi{}
}

// Names lists the accepted solver names in display order.
func Names() []string {
	return []string{NameJacobi, NameGonum}
}

// ByName resolves a solver by case-insensitive name.
// Unknown names wrap huckel.ErrInvalidArgument.
func ByName(name string) (Solver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameJacobi, "":
		return Jacobi{}, nil
	case NameGonum:
		return Gonum{}, nil
	default:
		return nil, fmt.Errorf("solver: unknown solver %q (want %s): %w",
			name, strings.Join(Names(), " | "), huckel.ErrInvalidArgument)
	}
}
