// SPDX-License-Identifier: MIT
// Package: matrix
//
// eigen.go — symmetric eigen-decomposition via cyclic Jacobi sweeps.
//
// Contract:
//   • Input must be square and symmetric within tol (else ErrNonSquare / ErrAsymmetry).
//   • Eigenvalues are returned in ascending order; column k of the vector
//     matrix belongs to eigenvalue k.
//   • Non-convergence after maxSweeps → ErrMatrixEigenFailed.
//   • The input is never mutated.
//
// Complexity:
//   • Time: O(n³) per sweep; Hückel matrices (n ≤ 100) settle in under 15 sweeps.
//   • Space: O(n²) for the working copy and the accumulated rotations.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

const (
	opEigen = "Eigen"

	// DefaultEigenTol bounds the largest off-diagonal magnitude at convergence.
	DefaultEigenTol = 1e-13
	// DefaultEigenSweeps caps the number of full cyclic sweeps.
	DefaultEigenSweeps = 100
)

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix.
//
// Implementation:
//   - Stage 1: validate square & symmetric within tol; copy into a working Dense.
//   - Stage 2: sweep the strict upper triangle in row order, annihilating each
//     non-zero A[p,q] with a Jacobi rotation; stop once max|A[p,q]| < tol.
//   - Stage 3: read the diagonal, sort ascending and permute Q's columns alike.
//
// Inputs:
//   - m: symmetric Matrix.
//   - tol: convergence threshold (typ. 1e-12..1e-14 for float64).
//   - maxSweeps: safety cap on full sweeps.
func Eigen(m Matrix, tol float64, maxSweeps int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opEigen, err)
	}
	a, err := NewDenseFrom(m)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opEigen, err)
	}
	n := a.r
	q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opEigen, err)
	}

	var (
		sweep              int
		p, r, i            int
		app, arr, apr      float64
		theta, t, c, s     float64
		aip, air, qip, qir float64
		converged          bool
	)
	for sweep = 0; sweep <= maxSweeps; sweep++ {
		if maxOffDiagonal(a) < tol {
			converged = true
			break
		}
		if sweep == maxSweeps {
			break
		}
		for p = 0; p < n-1; p++ {
			for r = p + 1; r < n; r++ {
				apr = a.data[p*n+r]
				if apr == 0 {
					continue
				}
				app = a.data[p*n+p]
				arr = a.data[r*n+r]

				// θ = (arr−app)/(2·apr); t = sign(θ)/(|θ|+√(θ²+1)) is the smaller root.
				theta = (arr - app) / (2 * apr)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				for i = 0; i < n; i++ {
					if i == p || i == r {
						continue
					}
					aip = a.data[i*n+p]
					air = a.data[i*n+r]
					a.data[i*n+p] = c*aip - s*air
					a.data[p*n+i] = a.data[i*n+p]
					a.data[i*n+r] = s*aip + c*air
					a.data[r*n+i] = a.data[i*n+r]
				}
				a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
				a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
				a.data[p*n+r], a.data[r*n+p] = 0, 0

				for i = 0; i < n; i++ {
					qip = q.data[i*n+p]
					qir = q.data[i*n+r]
					q.data[i*n+p] = c*qip - s*qir
					q.data[i*n+r] = s*qip + c*qir
				}
			}
		}
	}
	if !converged {
		return nil, nil, fmt.Errorf("%s: off-diagonal ≥ %g after %d sweeps: %w", opEigen, tol, maxSweeps, ErrMatrixEigenFailed)
	}

	order := make([]int, n)
	for i = 0; i < n; i++ {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return a.data[order[x]*n+order[x]] < a.data[order[y]*n+order[y]]
	})

	vals := make([]float64, n)
	vecs := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for k, src := range order {
		vals[k] = a.data[src*n+src]
		for i = 0; i < n; i++ {
			vecs.data[i*n+k] = q.data[i*n+src]
		}
	}

	return vals, vecs, nil
}

// EigenValues is Eigen without the eigenvectors, using the package defaults.
func EigenValues(m Matrix) ([]float64, error) {
	vals, _, err := Eigen(m, DefaultEigenTol, DefaultEigenSweeps)
	return vals, err
}

// maxOffDiagonal returns max_{i<j} |A[i,j]| of a symmetric Dense.
func maxOffDiagonal(a *Dense) float64 {
	var (
		n    = a.r
		maxV float64
		v    float64
	)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v = math.Abs(a.data[i*n+j]); v > maxV {
				maxV = v
			}
		}
	}

	return maxV
}
