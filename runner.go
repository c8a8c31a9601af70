package promise

import (
	"sync"

	"github.com/lunefish/promise/executors"
)

// Runner bridges blocking background work into promises. Exec dispatches a
// job through the Runner's Executor and returns an unresolved promise for
// its result; TryResolveAll drains completed jobs into their promises.
//
// The Runner never polls on its own: a job's promise resolves only inside a
// TryResolveAll call, on the calling goroutine, after the job has finished.
// The only state shared with a worker goroutine is the job's one-shot result
// channel. There is no cancellation — a submitted job always runs to
// completion, and a panicking job crashes its worker.
type Runner struct {
	exec Executor

	mu   sync.Mutex
	jobs []func() bool // one poll func per outstanding job
}

// NewRunner creates a Runner that gives every job its own goroutine.
func NewRunner() *Runner {
	return NewRunnerExecutor(executors.GoExecutor{})
}

// NewPooledRunner creates a Runner that dispatches jobs into a pool bounded
// to workers concurrent goroutines.
func NewPooledRunner(workers int) *Runner {
	return NewRunnerExecutor(executors.NewPoolExecutor(workers))
}

// NewRunnerExecutor creates a Runner dispatching through e.
func NewRunnerExecutor(e Executor) *Runner {
	if e == nil {
		panic("promise: executor is nil")
	}
	return &Runner{exec: e}
}

// Exec dispatches job through r's executor and returns a promise for its
// result. The promise is unresolved until a TryResolveAll call observes the
// finished job.
func Exec[T any](r *Runner, job func() T) *Promise[T] {
	ch := make(chan T, 1)
	p := New[T]()
	st := p.state

	r.exec.Submit(func() {
		select {
		case ch <- job():
		default:
			fatal(ErrResultDropped)
		}
	})

	r.mu.Lock()
	r.jobs = append(r.jobs, func() bool {
		select {
		case val := <-ch:
			st.resolve(val)
			return true
		default:
			return false
		}
	})
	r.mu.Unlock()
	return p
}

// TryResolveAll makes one non-blocking pass over the outstanding jobs,
// resolving the promise of every job that has finished. Jobs still running
// stay queued for the next pass. It returns the number of promises resolved.
//
// Promises resolve with the lock released, so a continuation may submit
// further jobs to the same Runner.
func (r *Runner) TryResolveAll() int {
	r.mu.Lock()
	jobs := r.jobs
	r.jobs = nil
	r.mu.Unlock()

	resolved := 0
	var remaining []func() bool
	for _, poll := range jobs {
		if poll() {
			resolved++
		} else {
			remaining = append(remaining, poll)
		}
	}
	if len(remaining) > 0 {
		r.mu.Lock()
		r.jobs = append(remaining, r.jobs...)
		r.mu.Unlock()
	}
	return resolved
}

// Pending returns the number of jobs whose results have not yet been drained
// into their promises.
func (r *Runner) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.jobs)
}
