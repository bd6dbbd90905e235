// Package simpleiter solves a dense linear system A·x = b by the fixed-step
// simple iteration
//
//	c_k     = A·x_k − b
//	x_{k+1} = x_k − τ·c_k
//
// starting from x_0 = 0.
//
// Stopping rules, checked after every residual evaluation in this order:
//
//   - ‖c_k‖₂ / ‖b‖₂ < ε          → StatusConverged
//   - ‖c_k‖₂ > ‖c_{k-1}‖₂ (k ≥ 1) → StatusDiverged
//   - k == MaxIterations          → StatusIterationCap
//
// The residual and the update are data-parallel over row bands of a
// parallel.Pool; the squared-norm reduction folds per-band partials in band
// order, so results are identical for a fixed worker count.
//
// The iteration converges for symmetric positive definite A when
// 0 < τ < 2/λ_max(A). NewSystem builds the benchmark system A = 1·1ᵀ + I,
// b = (n+1)·1, whose solution is x = 1 and whose λ_max is n+1.
package simpleiter
