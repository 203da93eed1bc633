// SPDX-License-Identifier: MIT
// Package: huckel/analysis
//
// options.go — functional options for Run.
//
// Deterministic defaults:
//   • solver = solver.Default() (Jacobi)
//   • places = spectrum.DefaultPlaces (3)
//   • logger = klog.Background()
//
// Option constructors panic on meaningless values; Run never panics.

package analysis

import (
	"github.com/go-logr/logr"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/huckel/solver"
	"github.com/katalvlaran/huckel/spectrum"
)

// Option customizes Run.
type Option func(*config)

type config struct {
	solver solver.Solver
	places int32
	log    logr.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		solver: solver.Default(),
		places: spectrum.DefaultPlaces,
		log:    klog.Background(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSolver selects the eigensolver. Panics on nil.
func WithSolver(s solver.Solver) Option {
	if s == nil {
		panic("analysis: WithSolver(nil)")
	}
	return func(c *config) {
		c.solver = s
	}
}

// WithPlaces sets the rounding precision of the classified levels.
// Panics on a negative value.
func WithPlaces(places int32) Option {
	if places < 0 {
		panic("analysis: WithPlaces(<0)")
	}
	return func(c *config) {
		c.places = places
	}
}

// WithLogger routes progress logs to l.
func WithLogger(l logr.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}
