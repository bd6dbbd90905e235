// Package grid holds the square scalar field relaxed by the jacobi solver and
// the boundary initializer that fixes its edges.
//
// What:
//
//   - Grid wraps an N×N matrix.Dense (row-major, offset r*N + c), N ≥ 3.
//   - InitBoundary sets the four corners and fills each edge by linear
//     interpolation between its endpoint corners.
//   - SeedZero / SeedBilinear choose the interior start state.
//
// Invariants:
//
//   - Only interior cells (1 ≤ r,c ≤ N-2) are ever written by relaxation;
//     BoundaryEqual checks that edges stayed untouched.
//
// Errors:
//
//   - ErrGridTooSmall: side length below MinSize.
//   - ErrNilGrid, ErrSizeMismatch: invalid grid pairs.
//   - matrix.ErrNaNInf: non-finite corner values.
package grid
