package solver

import (
	"fmt"

	"github.com/katalvlaran/huckel/matrix"
)

// Jacobi solves with matrix.Eigen (cyclic Jacobi rotations).
// Zero fields fall back to matrix.DefaultEigenTol / matrix.DefaultEigenSweeps.
type Jacobi struct {
	Tol       float64
	MaxSweeps int
}

// Name returns NameJacobi.
func (Jacobi) Name() string { return NameJacobi }

// EigenvaluesSym implements Solver.
func (j Jacobi) EigenvaluesSym(m matrix.Matrix) ([]float64, error) {
	tol, sweeps := j.Tol, j.MaxSweeps
	if tol <= 0 {
		tol = matrix.DefaultEigenTol
	}
	if sweeps <= 0 {
		sweeps = matrix.DefaultEigenSweeps
	}

	vals, _, err := matrix.Eigen(m, tol, sweeps)
	if err != nil {
		return nil, fmt.Errorf("solver %s: %w", NameJacobi, err)
	}

	return vals, nil
}
