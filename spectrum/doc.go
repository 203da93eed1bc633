// Package spectrum groups an ascending eigenvalue spectrum into
// degeneracy levels.
//
// Each eigenvalue is converted to a decimal and rounded to a fixed number of
// places (3 by default) with round-half-to-even; runs of equal rounded values
// collapse into one Level whose Degeneracy is the run length. Rounding on a
// decimal representation keeps binary noise such as 0.9999999999999998 from
// splitting a degenerate pair.
//
// Two eigenvalues closer than half a unit in the last place may still land on
// different levels when they straddle a rounding boundary; that tie-break is
// accepted, not an error.
package spectrum
