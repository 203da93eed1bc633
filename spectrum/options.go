// SPDX-License-Identifier: MIT
// Package: huckel/spectrum
//
// options.go — functional options for Classify.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless inputs;
//     Classify panics only on non-finite eigenvalues.

package spectrum

import "fmt"

// DefaultPlaces is the number of decimal places levels are rounded to.
const DefaultPlaces int32 = 3

// Option customizes Classify.
type Option func(*config)

type config struct {
	places int32
}

func newConfig(opts ...Option) config {
	cfg := config{places: DefaultPlaces}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithPlaces sets the rounding precision in decimal places.
// Panics on a negative value.
func WithPlaces(places int32) Option {
	if places < 0 {
		panic(fmt.Sprintf("spectrum: WithPlaces(%d): places must be ≥ 0", places))
	}
	return func(c *config) {
		c.places = places
	}
}
