// Package analysis wires the Hückel pipeline: build the Hamiltonian of a
// topology, hand it to an eigensolver, and classify the spectrum into
// degeneracy levels. Each Run is synchronous and shares no state.
package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/huckel/builder"
	"github.com/katalvlaran/huckel/matrix"
	"github.com/katalvlaran/huckel/spectrum"
)

// Result is the outcome of one Run.
type Result struct {
	Topology    builder.Topology
	Sites       int
	Bonds       int
	Solver      string
	Eigenvalues []float64
	Levels      []spectrum.Level
}

// Orbitals returns the total orbital count of r.
func (r *Result) Orbitals() int {
	return spectrum.Orbitals(r.Levels)
}

// Run computes the degeneracy-grouped Hückel spectrum of t.
//
// Errors:
//   - huckel.ErrInvalidArgument for an out-of-domain topology.
//   - matrix.ErrNaNInf when the solver returns a non-finite eigenvalue.
//   - the solver's error (e.g. matrix.ErrMatrixEigenFailed) otherwise.
func Run(t builder.Topology, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	log := cfg.log.WithValues("topology", fmt.Sprint(t))

	h, err := builder.Build(t)
	if err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}
	if err = matrix.ValidateHamiltonian(h, builder.Beta); err != nil {
		return nil, fmt.Errorf("analysis: %s: %w", t, err)
	}
	bonds, err := builder.Bonds(t)
	if err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}
	log.V(2).Info("built hamiltonian", "sites", h.Rows(), "bonds", len(bonds))

	start := time.Now()
	evals, err := cfg.solver.EigenvaluesSym(h)
	if err != nil {
		return nil, fmt.Errorf("analysis: %s: %w", t, err)
	}
	for i, e := range evals {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return nil, fmt.Errorf("analysis: %s: solver %s: eigenvalue %d=%g: %w", t, cfg.solver.Name(), i, e, matrix.ErrNaNInf)
		}
	}
	log.V(2).Info("solved spectrum", "solver", cfg.solver.Name(), "elapsed", time.Since(start))

	levels := spectrum.Classify(evals, spectrum.WithPlaces(cfg.places))
	log.V(3).Info("classified spectrum", "levels", len(levels))

	return &Result{
		Topology:    t,
		Sites:       h.Rows(),
		Bonds:       len(bonds),
		Solver:      cfg.solver.Name(),
		Eigenvalues: evals,
		Levels:      levels,
	}, nil
}
