// Package pool provides a simple worker pool for CPU-bound searches, such as
// hunting for random primes. A nil *Pool is valid everywhere and means
// "run on the calling goroutine".
package pool

import (
	"runtime"
	"sync"
)

type Pool struct {
	workers int

	jobs chan func()
	wg   sync.WaitGroup

	closeOnce sync.Once
}

// NewPool creates a pool of count long-lived workers. If count is 0, the
// number of workers defaults to runtime.GOMAXPROCS(0).
func NewPool(count int) *Pool {
	if count <= 0 {
		count = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: count,
		jobs:    make(chan func()),
	}
	p.wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
			}
		}()
	}
	return p
}

// TearDown stops the workers and waits for them to exit. The pool must not
// be used afterwards. Safe to call more than once, and a no-op on nil.
func (p *Pool) TearDown() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		close(p.jobs)
	})
	p.wg.Wait()
}

// Search runs f repeatedly across the workers until count results have been
// produced, and returns them. f returns nil to report a miss; misses are
// retried. On a nil pool the search runs sequentially on the caller.
func (p *Pool) Search(count int, f func() interface{}) []interface{} {
	results := make([]interface{}, 0, count)
	if p == nil {
		for len(results) < count {
			if r := f(); r != nil {
				results = append(results, r)
			}
		}
		return results
	}

	found := make(chan interface{}, p.workers)
	pending := 0
	for len(results) < count {
		// keep every worker busy while results are still missing
		for pending < p.workers && pending < count-len(results) {
			p.jobs <- func() {
				found <- f()
			}
			pending++
		}
		r := <-found
		pending--
		if r != nil {
			results = append(results, r)
		}
	}

	// drain jobs that were still in flight when the search finished
	for pending > 0 {
		<-found
		pending--
	}
	return results
}
