// Package builder provides validation helpers to enforce parameter contracts
// of the Hamiltonian builders.
package builder

// validateMin ensures that the site count n is ≥ min.
// Returns "<Method>: n=<n> < min=<min>: huckel: invalid argument" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method string, n, min int) error {
	if n < min {
		return builderErrorf(method, ErrInvalidArgument, "n=%d < min=%d", n, min)
	}

	return nil
}
