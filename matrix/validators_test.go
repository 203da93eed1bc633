package matrix_test

import (
	"testing"

	"github.com/katalvlaran/huckel/matrix"
	"github.com/stretchr/testify/require"
)

// fromRows builds a Dense from a literal row slice.
func fromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}
	return m
}

func TestValidateSquare(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateSquare(typedNil), matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)
}

func TestValidateSymmetric(t *testing.T) {
	sym := fromRows(t, [][]float64{{0, 1}, {1, 0}})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))

	asym := fromRows(t, [][]float64{{0, 1}, {2, 0}})
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 0.5), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, 1.0))
}

func TestValidateHamiltonian(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"ethylene", [][]float64{{0, -1}, {-1, 0}}, nil},
		{"on-site energy", [][]float64{{0.5, -1}, {-1, 0}}, matrix.ErrNonZeroDiagonal},
		{"wrong coupling", [][]float64{{0, -2}, {-2, 0}}, matrix.ErrNotHamiltonian},
		{"asymmetric", [][]float64{{0, -1}, {0, 0}}, matrix.ErrAsymmetry},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateHamiltonian(fromRows(t, tc.rows), -1)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDegrees(t *testing.T) {
	m := fromRows(t, [][]float64{
		{0, -1, 0},
		{-1, 0, -1},
		{0, -1, 0},
	})
	deg, err := matrix.Degrees(m)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 1}, deg)
}
