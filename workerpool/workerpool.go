// Copyright 2026 The go-matvec Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable fork-join worker pool
// for parallel computation. A Pool is created once and reused across many
// operations, eliminating per-call goroutine spawn overhead.
//
// The pool is caller-owned: kernels never create, resize, or close it. One
// Pool instance serves one caller's synchronous calls at a time; concurrent
// Run calls on the same instance from multiple callers are unsupported.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.Run(0, rows, func(r, worker int) {
//	    processRow(r)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and reused. A pool with zero workers executes all work inline on the
// caller's goroutine with identical results.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents one chunk of a fork-join operation.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
//
// If numWorkers is 0 the pool spawns no goroutines and all work runs
// sequentially on the calling goroutine. If numWorkers is negative,
// GOMAXPROCS workers are used.
func New(numWorkers int) *Pool {
	if numWorkers < 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{numWorkers: numWorkers}
	if numWorkers == 0 {
		return p
	}

	// Buffer enough for all workers to have pending work
	p.workC = make(chan workItem, numWorkers*2)
	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe. A closed pool degrades to
// sequential execution.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		if p.workC != nil {
			close(p.workC)
		}
	})
}

// Run invokes task exactly once for every integer in [start, end) and
// blocks until all invocations complete (synchronous fork-join).
//
// The range is split into contiguous, non-overlapping chunks, one per
// worker invocation; worker identifies the invocation processing the index
// and lies in [0, NumWorkers). Chunk boundaries are a performance choice:
// task is called once per index regardless of how the range is split, so
// results must not depend on the worker count. A pool sized larger than the
// range never invokes task more times than there are indices.
func (p *Pool) Run(start, end int, task func(index, worker int)) {
	n := end - start
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers <= 1 || p.closed.Load() {
		for i := start; i < end; i++ {
			task(i, 0)
		}
		return
	}

	// Ceiling division so the chunks cover the whole range.
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		w := w
		lo := start + w*chunkSize
		hi := min(lo+chunkSize, end)
		if lo >= hi {
			continue
		}

		wg.Add(1)
		p.workC <- workItem{
			fn: func() {
				for i := lo; i < hi; i++ {
					task(i, w)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelFor splits [start, end) into contiguous chunks and invokes fn
// once per chunk with (chunkStart, chunkEnd, worker). Blocks until all
// chunks complete. This is the chunk-granular variant of Run, for callers
// that amortize per-row setup across a group of rows.
func (p *Pool) ParallelFor(start, end int, fn func(chunkStart, chunkEnd, worker int)) {
	n := end - start
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers <= 1 || p.closed.Load() {
		fn(start, end, 0)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		w := w
		lo := start + w*chunkSize
		hi := min(lo+chunkSize, end)
		if lo >= hi {
			continue
		}

		wg.Add(1)
		p.workC <- workItem{
			fn: func() {
				fn(lo, hi, w)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
