package spectrum

import "github.com/shopspring/decimal"

// Classify groups an ascending spectrum into (energy, degeneracy) levels.
//
// The scan is single-pass and order-preserving: each value is rounded to the
// configured places with banker's rounding, equal neighbours accumulate, and
// a level is emitted whenever the rounded value changes. Classify does not
// sort; unsorted input yields unsorted levels. Empty input yields nil.
//
// Rounding applies to the exact binary value of each float, not to its
// shortest printed form: 0.0005 is stored just above the tie and rounds to
// 0.001.
//
// Σ Degeneracy over the result always equals len(evals). Every value must be
// finite; NaN or ±Inf panics.
func Classify(evals []float64, opts ...Option) []Level {
	if len(evals) == 0 {
		return nil
	}
	cfg := newConfig(opts...)

	var (
		levels = make([]Level, 0, len(evals))
		cur    decimal.Decimal
		count  int
	)
	for _, e := range evals {
		r := exact(e).RoundBank(cfg.places)
		if count > 0 && r.Equal(cur) {
			count++
			continue
		}
		if count > 0 {
			levels = append(levels, Level{Energy: cur, Degeneracy: count})
		}
		cur, count = r, 1
	}
	levels = append(levels, Level{Energy: cur, Degeneracy: count})

	return levels
}

// exactExponent is below the smallest binary exponent of a float64 (2⁻¹⁰⁷⁴),
// so NewFromFloatWithExponent keeps every digit.
const exactExponent = -1075

// exact returns the full decimal expansion of e.
func exact(e float64) decimal.Decimal {
	return decimal.NewFromFloatWithExponent(e, exactExponent)
}
