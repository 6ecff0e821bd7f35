// Package parallel runs independent tasks on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines pulling tasks from one queue.
//
// A Pool is safe for concurrent use; tasks from concurrent Run calls
// interleave on the same workers.
type Pool struct {
	workers int
	tasks   chan func()
	wg      sync.WaitGroup
	closed  atomic.Bool
	mu      sync.RWMutex
}

// NewPool starts a pool with the given number of workers.
// Zero or negative means GOMAXPROCS.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		tasks:   make(chan func(), workers*4),
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}

	return p
}

// Run calls fn(i) for every i in [0, n) on the pool's workers and returns once
// all calls have finished. Calls happen in no particular order.
//
// On a closed pool Run calls fn on the calling goroutine instead.
func (p *Pool) Run(n int, fn func(i int)) {
	p.mu.RLock()
	if p.closed.Load() {
		p.mu.RUnlock()
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var done sync.WaitGroup
	done.Add(n)
	for i := 0; i < n; i++ {
		p.tasks <- func() {
			defer done.Done()
			fn(i)
		}
	}
	p.mu.RUnlock()

	done.Wait()
}

// Workers is the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers after the queued tasks finish.
// It is safe to call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed.Swap(true) {
		return
	}
	close(p.tasks)
	p.wg.Wait()
}
