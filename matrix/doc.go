// Package matrix provides the dense, row-major float64 storage shared by the
// grid solver and the linear-system variant.
//
// The matrix package provides:
//
//   - Dense: a flat []float64 buffer with bounds-checked At/Set, a no-copy
//     Data() accessor for hot kernels, Clone and bitwise Equal.
//   - Validators: ValidateNotNil, ValidateSquare, ValidateSameShape,
//     ValidateVecLen, ValidateFinite.
//   - Vector kernels: MatVec, Dot, Norm2, MaxAbsDiff.
//
// Errors are package-level sentinels (errors.go); match them with errors.Is.
package matrix
