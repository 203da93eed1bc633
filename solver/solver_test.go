package solver_test

import (
	"testing"

	"github.com/katalvlaran/huckel"
	"github.com/katalvlaran/huckel/builder"
	"github.com/katalvlaran/huckel/matrix"
	"github.com/katalvlaran/huckel/solver"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"jacobi", solver.NameJacobi},
		{"", solver.NameJacobi},
		{" GONUM ", solver.NameGonum},
	} {
		s, err := solver.ByName(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, s.Name())
	}

	_, err := solver.ByName("lanczos")
	require.ErrorIs(t, err, huckel.ErrInvalidArgument)
	require.Equal(t, solver.NameJacobi, solver.Default().Name())
}

// TestSolvers_Agree cross-checks both solvers on every topology family.
func TestSolvers_Agree(t *testing.T) {
	t.Parallel()
	topologies := []builder.Topology{
		builder.Linear{N: 1},
		builder.Linear{N: 7},
		builder.Cyclic{N: 6},
		builder.Cyclic{N: 25},
		builder.Platonic{N: 20},
		builder.Buckyball{},
	}
	for _, topo := range topologies {
		m, err := builder.Build(topo)
		require.NoError(t, err)

		jac, err := solver.Jacobi{}.EigenvaluesSym(m)
		require.NoError(t, err, topo.String())
		gon, err := solver.Gonum{}.EigenvaluesSym(m)
		require.NoError(t, err, topo.String())

		require.Len(t, jac, topo.Sites())
		require.InDeltaSlice(t, gon, jac, 1e-9, topo.String())
		for i := 1; i < len(gon); i++ {
			require.LessOrEqual(t, gon[i-1], gon[i], "gonum ascending")
		}
	}
}

func TestSolvers_RejectAsymmetric(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1))

	_, err = solver.Jacobi{}.EigenvaluesSym(m)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
	_, err = solver.Gonum{}.EigenvaluesSym(m)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestJacobi_Budget(t *testing.T) {
	m, err := builder.Build(builder.Cyclic{N: 10})
	require.NoError(t, err)
	_, err = solver.Jacobi{Tol: 1e-13, MaxSweeps: 1}.EigenvaluesSym(m)
	require.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)
}
