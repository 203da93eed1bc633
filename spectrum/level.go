package spectrum

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Level is one rung of a degeneracy-grouped spectrum.
type Level struct {
	// Energy is the rounded eigenvalue, in units of |β| relative to α.
	Energy decimal.Decimal
	// Degeneracy is the number of eigenvalues that rounded to Energy.
	Degeneracy int
}

// String renders "<energy> (×<degeneracy>)" with the energy at its rounded
// precision, e.g. "-1.000 (×2)".
func (l Level) String() string {
	return fmt.Sprintf("%s (×%d)", l.Label(), l.Degeneracy)
}

// Label renders the energy with the number of places it was rounded to.
func (l Level) Label() string {
	places := -l.Energy.Exponent()
	if places < 0 {
		places = 0
	}
	return l.Energy.StringFixed(places)
}

// Orbitals returns the total orbital count Σ Degeneracy.
func Orbitals(levels []Level) int {
	total := 0
	for _, l := range levels {
		total += l.Degeneracy
	}
	return total
}

// MaxDegeneracy returns the largest Degeneracy in levels, or 0 when empty.
func MaxDegeneracy(levels []Level) int {
	maxD := 0
	for _, l := range levels {
		if l.Degeneracy > maxD {
			maxD = l.Degeneracy
		}
	}
	return maxD
}
