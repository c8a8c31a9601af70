// Package executors provides the stock Executor implementations used by the
// promise package's Runner.
package executors

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// GoExecutor runs every job on its own goroutine.
type GoExecutor struct{}

func (GoExecutor) Submit(f func()) {
	go f()
}

// PoolExecutor runs jobs on goroutines bounded to a fixed concurrency.
// Submit blocks while all workers are busy.
type PoolExecutor struct {
	sem *semaphore.Weighted
}

func NewPoolExecutor(maxWorkers int) *PoolExecutor {
	if maxWorkers <= 0 {
		panic("executors: maxWorkers must be positive")
	}
	return &PoolExecutor{
		sem: semaphore.NewWeighted(int64(maxWorkers)),
	}
}

func (p *PoolExecutor) Submit(f func()) {
	// Background context: acquisition only waits on worker capacity.
	_ = p.sem.Acquire(context.Background(), 1)
	go func() {
		defer p.sem.Release(1)
		f()
	}()
}
