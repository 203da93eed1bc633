// SPDX-License-Identifier: MIT
// Package: huckel/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • The only domain failure is an out-of-domain size; it surfaces as
//     ErrInvalidArgument, an alias of huckel.ErrInvalidArgument, so callers may
//     match either name with errors.Is.
//   • Context is attached with %w at the detection site; sentinels are never
//     re-declared with formatted strings.
//   • Builders never panic at runtime.

package builder

import (
	"fmt"

	"github.com/katalvlaran/huckel"
)

// ErrInvalidArgument indicates a non-positive site count, a ring shorter than
// MinCyclicSites, a Platonic size outside {4,6,8,12,20}, or a nil/unknown
// Topology variant.
var ErrInvalidArgument = huckel.ErrInvalidArgument

// builderErrorf wraps err with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
