// Package parallel runs independent work items on a fixed set of
// goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

type (
	WorkerFunc func(func())
	WaitFunc   func(done bool)
	CancelFunc func()
)

// Pool hands work to its workers through Do. Wait blocks until queued work
// is finished; Wait(true) also stops the workers, after which Do must not
// be called. A pool of one worker runs everything inline.
type Pool struct {
	wg     sync.WaitGroup
	work   chan func()
	Do     WorkerFunc
	Wait   WaitFunc
	Cancel CancelFunc
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}

	if numWorkers > 1 {
		pool.work = make(chan func(), numWorkers)

		for range numWorkers {
			pool.wg.Go(func() {
				for f := range pool.work {
					f()
				}
			})
		}

		pool.Do = func(f func()) {
			pool.work <- f
		}

		pool.Wait = func(done bool) {
			if done {
				pool.Cancel()
			}
			pool.wg.Wait()
		}
		pool.Cancel = sync.OnceFunc(func() { close(pool.work) })
	}

	return pool
}

// Size returns the number of workers, 1 for an inline pool.
func (p *Pool) Size() int {
	if p == nil || p.work == nil {
		return 1
	}
	return cap(p.work)
}

// Batch calls f(i) for every i in [0, n) and returns once all calls are
// done. The caller works through the indexes too, and helpers are only
// queued when a worker slot is free, so Batch may be called from inside a
// pool job. It must not be called once Wait(true) has started. A nil pool
// runs f serially.
func (p *Pool) Batch(n int, f func(i int)) {
	var (
		next   atomic.Int64
		mu     sync.Mutex
		closed bool
		wg     sync.WaitGroup
	)
	run := func() {
		for {
			i := int(next.Add(1) - 1)
			if i >= n {
				return
			}
			f(i)
		}
	}

	if p != nil && p.work != nil {
		for range min(p.Size(), n) - 1 {
			helper := func() {
				mu.Lock()
				if closed {
					mu.Unlock()
					return
				}
				wg.Add(1)
				mu.Unlock()

				defer wg.Done()
				run()
			}

			select {
			case p.work <- helper:
			default:
			}
		}
	}

	run()

	mu.Lock()
	closed = true
	mu.Unlock()
	wg.Wait()
}
