package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/huckel/matrix"
)

// ErrFactorizeFailed reports that the gonum symmetric eigen-factorization
// did not succeed.
var ErrFactorizeFailed = errors.New("solver: gonum EigenSym factorization failed")

// Gonum solves with gonum's LAPACK-backed mat.EigenSym.
type Gonum struct{}

// Name returns NameGonum.
func (Gonum) Name() string { return NameGonum }

// EigenvaluesSym implements Solver. The matrix must be square and
// symmetric; gonum itself reads only the upper triangle.
func (Gonum) EigenvaluesSym(m matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateSymmetric(m, 0); err != nil {
		return nil, fmt.Errorf("solver %s: %w", NameGonum, err)
	}
	d, err := matrix.NewDenseFrom(m)
	if err != nil {
		return nil, fmt.Errorf("solver %s: %w", NameGonum, err)
	}

	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(d.Rows(), d.RawCopy()), false); !ok {
		return nil, fmt.Errorf("solver %s: n=%d: %w", NameGonum, d.Rows(), ErrFactorizeFailed)
	}

	return es.Values(nil), nil
}
