// Package jacobi approximates the steady state of the 2-D Laplace equation on
// a square grid by Jacobi relaxation.
//
// What:
//
//   - Boundary: corners fixed by Params.Corners, edges linearly interpolated
//     (grid.InitBoundary); the interior starts from a grid.InteriorSeed.
//   - Sweep: every interior cell becomes the mean of its four neighbours from
//     the previous sweep. Two buffers swap roles after each sweep.
//   - Check: every CheckInterval sweeps the max interior change between the
//     two buffers is compared to Tolerance.
//   - Driver: Running → Converged | IterationCap, bounded by
//     min(MaxIterations, HardIterationCap).
//
// Parallelism:
//
//   - Sweeps and checks run on a parallel.Pool of Params.Workers goroutines
//     over disjoint row bands. Sweeps have no cross-cell accumulation, so the
//     final grid is bit-identical for any worker count.
//
// Complexity:
//
//   - Sweep: O(N²). Check: O(N²). Memory: 2·N² float64.
//
// Example:
//
//	s, err := jacobi.New(jacobi.WithSize(128), jacobi.WithCheckInterval(100))
//	if err != nil { ... }
//	res := s.Solve(ctx)
//	fmt.Println(res.Status, res.Iterations, res.Error)
package jacobi
