// Package parallel runs independent jobs on a bounded number of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func())
	WaitFunc   func(done bool)
	CancelFunc func()
)

// Pool runs the functions handed to Do on a fixed set of workers. With a
// single worker Do runs the function before returning.
//
// Wait blocks until every function handed to Do so far has returned. When
// done is set the workers are stopped as well and the pool must not be used
// afterwards.
type Pool struct {
	workers sync.WaitGroup
	pending sync.WaitGroup
	size    int
	Do      WorkerFunc
	Wait    WaitFunc
	Cancel  CancelFunc
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		size: numWorkers,
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}

	if numWorkers > 1 {
		workChan := make(chan func(), numWorkers)

		for range numWorkers {
			pool.workers.Go(func() {
				for f := range workChan {
					f()
				}
			})
		}

		pool.Do = func(f func()) {
			pool.pending.Add(1)
			workChan <- func() {
				defer pool.pending.Done()
				f()
			}
		}

		pool.Cancel = sync.OnceFunc(func() { close(workChan) })
		pool.Wait = func(done bool) {
			pool.pending.Wait()
			if done {
				pool.Cancel()
				pool.workers.Wait()
			}
		}
	}

	return pool
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return p.size
}
