package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/huckel/matrix"
	"github.com/stretchr/testify/require"
)

// TestEigenKnownSpectrum checks a 2×2 and a 3×3 case with closed-form eigenvalues.
func TestEigenKnownSpectrum(t *testing.T) {
	vals, _, err := matrix.Eigen(fromRows(t, [][]float64{{2, 1}, {1, 2}}), 1e-13, 50)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 3}, vals, 1e-12)

	// Path P3 adjacency: −√2, 0, √2.
	vals, err = matrix.EigenValues(fromRows(t, [][]float64{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	}))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{-math.Sqrt2, 0, math.Sqrt2}, vals, 1e-12)
}

// TestEigenVectors verifies A·v = λ·v for every returned pair.
func TestEigenVectors(t *testing.T) {
	a := fromRows(t, [][]float64{
		{4, 1, 2},
		{1, 3, 0},
		{2, 0, 5},
	})
	vals, vecs, err := matrix.Eigen(a, matrix.DefaultEigenTol, matrix.DefaultEigenSweeps)
	require.NoError(t, err)
	require.True(t, vals[0] <= vals[1] && vals[1] <= vals[2], "ascending order")

	for k, lambda := range vals {
		for i := 0; i < 3; i++ {
			var av float64
			for j := 0; j < 3; j++ {
				aij, _ := a.At(i, j)
				vjk, _ := vecs.At(j, k)
				av += aij * vjk
			}
			vik, _ := vecs.At(i, k)
			require.InDelta(t, lambda*vik, av, 1e-10)
		}
	}
}

// TestEigenDoesNotMutate ensures the input matrix survives the decomposition.
func TestEigenDoesNotMutate(t *testing.T) {
	a := fromRows(t, [][]float64{{0, -1}, {-1, 0}})
	_, err := matrix.EigenValues(a)
	require.NoError(t, err)
	v, _ := a.At(0, 1)
	require.Equal(t, -1.0, v)
}

func TestEigenErrors(t *testing.T) {
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, _, err = matrix.Eigen(rect, 1e-12, 10)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, _, err = matrix.Eigen(fromRows(t, [][]float64{{0, 1}, {2, 0}}), 1e-12, 10)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	// Zero sweeps cannot diagonalize a coupled matrix.
	_, _, err = matrix.Eigen(fromRows(t, [][]float64{{0, 1}, {1, 0}}), 1e-12, 0)
	require.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)
}
