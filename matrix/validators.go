// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry and Hamiltonian checks run O(n²) over the upper triangle.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense is treated as nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Returns ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on a bad
// tol, ErrAsymmetry on violation.
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if math.Abs(aij-aji) > tol {
				return fmt.Errorf("ValidateSymmetric: (%d,%d)=%g vs (%d,%d)=%g: %w", i, j, aij, j, i, aji, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateHamiltonian checks the Hückel invariants of m: square, symmetric,
// zero diagonal (α = 0) and every off-diagonal entry either 0 or beta.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrNonZeroDiagonal, ErrNotHamiltonian.
// Complexity: O(n²).
func ValidateHamiltonian(m Matrix, beta float64) error {
	if err := ValidateSymmetric(m, 0); err != nil {
		return validatorErrorf("ValidateHamiltonian", err)
	}

	var (
		n    = m.Rows()
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		if v, err = m.At(i, i); err != nil {
			return validatorErrorf("ValidateHamiltonian", err)
		}
		if v != 0 {
			return fmt.Errorf("ValidateHamiltonian: (%d,%d)=%g: %w", i, i, v, ErrNonZeroDiagonal)
		}
		for j = i + 1; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateHamiltonian", err)
			}
			if v != 0 && v != beta {
				return fmt.Errorf("ValidateHamiltonian: (%d,%d)=%g: %w", i, j, v, ErrNotHamiltonian)
			}
		}
	}

	return nil
}

// Degrees returns, per row, the number of non-zero off-diagonal entries,
// i.e. the bond count of each site of a Hamiltonian.
// Complexity: O(n²).
func Degrees(m Matrix) ([]int, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, validatorErrorf("Degrees", err)
	}

	var (
		n    = m.Rows()
		deg  = make([]int, n)
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if v, err = m.At(i, j); err != nil {
				return nil, validatorErrorf("Degrees", err)
			}
			if v != 0 {
				deg[i]++
			}
		}
	}

	return deg, nil
}
