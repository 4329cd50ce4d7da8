// Copyright 2025 The go-tablesort Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs independent table jobs on a persistent set of
// goroutines. Each job is a whole, single-threaded sort of its own table; the
// pool never splits one sort across workers.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.EachErr(len(tables), func(i int) error {
//	    return tablesort.SortAll(tables[i], tablesort.Ascending, tablesort.ColumnX)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused by every call to Each and EachErr.
type Pool struct {
	numWorkers int
	jobC       chan job
	closeOnce  sync.Once
	closed     atomic.Bool
}

// job is one worker's share of an Each call.
type job struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		jobC:       make(chan job, numWorkers),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for j := range p.jobC {
		j.fn()
		j.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down. Calls already running complete; later calls run
// sequentially on the caller's goroutine. Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.jobC)
	})
}

// Each calls fn for every index in [0, n), handing indexes out to workers one
// at a time so uneven tables balance out. Blocks until all calls return.
func (p *Pool) Each(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.jobC <- job{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}

// EachErr is Each for jobs that fail. Every job runs; the returned error
// joins the messages of all failures in index order, one per line, and
// matches each of them with errors.Is. It is nil if no job failed.
func (p *Pool) EachErr(n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	errs := make([]error, n)
	p.Each(n, func(i int) {
		errs[i] = fn(i)
	})

	return errors.Join(errs...)
}
