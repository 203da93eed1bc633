// Package matrix holds the dense numeric core of huckel: the Matrix
// interface, a row-major Dense implementation, structural validators and a
// cyclic Jacobi eigen routine for real symmetric matrices.
//
// Sizes stay small (C60 is the largest case, 60×60), so everything is plain
// O(n²) storage with O(n³) per Jacobi sweep. All accessors bounds-check and
// return sentinel errors (ErrIndexOutOfBounds, ErrNonSquare, ...) wrapped
// with the failing method's name.
package matrix
