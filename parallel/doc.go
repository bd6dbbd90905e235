// Package parallel is the data-parallel execution context used by the solvers.
//
// What:
//
//   - Pool.For partitions an index range into contiguous chunks, runs one
//     goroutine per chunk and waits for all of them (a full barrier).
//   - Pool.MaxReduce / Pool.SumReduce run a per-chunk kernel and fold the
//     partial results in chunk order after the barrier.
//
// Why:
//
//   - Stencil sweeps and residual norms are embarrassingly parallel maps and
//     associative reductions over rows; chunk ownership makes every write
//     disjoint, so the hot loops need no locks.
//
// Complexity:
//
//   - For / Reduce: O(W) goroutine spawns per call (W = Workers()), plus the
//     cost of the kernel. Ranges shorter than W run inline.
package parallel
