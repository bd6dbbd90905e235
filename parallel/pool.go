// SPDX-License-Identifier: MIT

package parallel

import (
	"errors"
	"runtime"
	"sync"
)

// ErrInvalidWorkers is returned by New when the worker count is below 1.
var ErrInvalidWorkers = errors.New("parallel: workers must be >= 1")

// Range is a half-open index interval [Lo, Hi) assigned to one worker.
type Range struct {
	Lo, Hi int
}

// Len returns Hi-Lo.
func (r Range) Len() int { return r.Hi - r.Lo }

// Pool is a data-parallel execution context with a fixed degree of parallelism.
// It keeps no goroutines alive between calls: every For/Reduce spawns at most
// Workers() goroutines and returns only after all of them are done.
//
// A Pool is immutable and safe for concurrent use.
type Pool struct {
	workers int
}

// New returns a Pool running at most workers goroutines per call.
func New(workers int) (*Pool, error) {
	if workers < 1 {
		return nil, ErrInvalidWorkers
	}

	return &Pool{workers: workers}, nil
}

// Default returns a Pool sized to runtime.NumCPU().
func Default() *Pool {
	return &Pool{workers: runtime.NumCPU()}
}

// Sequential returns a single-worker Pool; every call runs inline.
func Sequential() *Pool {
	return &Pool{workers: 1}
}

// Workers reports the configured degree of parallelism.
func (p *Pool) Workers() int { return p.workers }

// Chunks splits [lo, hi) into at most Workers() contiguous, disjoint, ordered
// ranges of size ceil((hi-lo)/workers). Ranges smaller than the worker count
// collapse into a single chunk so tiny grids do not pay goroutine overhead.
func (p *Pool) Chunks(lo, hi int) []Range {
	total := hi - lo
	if total <= 0 {
		return nil
	}
	if total < p.workers || p.workers == 1 {
		return []Range{{Lo: lo, Hi: hi}}
	}

	size := (total + p.workers - 1) / p.workers
	out := make([]Range, 0, p.workers)
	for s := lo; s < hi; s += size {
		e := s + size
		if e > hi {
			e = hi
		}
		out = append(out, Range{Lo: s, Hi: e})
	}

	return out
}

// For runs task once per chunk of [lo, hi). Chunks run concurrently; For
// returns after every chunk has finished, so writes made by task are visible
// to the caller (the barrier).
func (p *Pool) For(lo, hi int, task func(lo, hi int)) {
	chunks := p.Chunks(lo, hi)
	switch len(chunks) {
	case 0:
		return
	case 1:
		task(chunks[0].Lo, chunks[0].Hi)
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for _, c := range chunks {
		go func(c Range) {
			defer wg.Done()
			task(c.Lo, c.Hi)
		}(c)
	}
	wg.Wait()
}

// reduce runs task per chunk, storing one partial per chunk index, and folds
// the partials left to right after the barrier. The fold order depends only on
// the chunking, never on goroutine scheduling.
func (p *Pool) reduce(lo, hi int, identity float64, task func(lo, hi int) float64, fold func(acc, v float64) float64) float64 {
	chunks := p.Chunks(lo, hi)
	if len(chunks) == 0 {
		return identity
	}
	if len(chunks) == 1 {
		return fold(identity, task(chunks[0].Lo, chunks[0].Hi))
	}

	partials := make([]float64, len(chunks))
	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for i, c := range chunks {
		go func(i int, c Range) {
			defer wg.Done()
			partials[i] = task(c.Lo, c.Hi)
		}(i, c)
	}
	wg.Wait()

	acc := identity
	for _, v := range partials {
		acc = fold(acc, v)
	}

	return acc
}

// MaxReduce returns the maximum of the per-chunk results of task over [lo, hi).
// An empty range yields 0, the identity for non-negative quantities such as
// absolute differences.
func (p *Pool) MaxReduce(lo, hi int, task func(lo, hi int) float64) float64 {
	return p.reduce(lo, hi, 0, task, func(acc, v float64) float64 {
		if v > acc {
			return v
		}
		return acc
	})
}

// SumReduce returns the sum of the per-chunk results of task over [lo, hi).
// For a fixed worker count the result is bit-reproducible.
func (p *Pool) SumReduce(lo, hi int, task func(lo, hi int) float64) float64 {
	return p.reduce(lo, hi, 0, task, func(acc, v float64) float64 { return acc + v })
}
