package promise

// Executor abstracts how a Runner dispatches background jobs. The default is
// one goroutine per job (executors.GoExecutor); NewPooledRunner bounds
// concurrency instead (executors.PoolExecutor). Any implementation works,
// e.g. wrapping an existing goroutine pool with ExecutorFunc.
//
// Submit must eventually run f; it may block until capacity is available but
// must not drop f.
type Executor interface {
	Submit(func())
}

// ExecutorFunc adapts a plain function to the Executor interface.
type ExecutorFunc func(func())

func (e ExecutorFunc) Submit(f func()) {
	e(f)
}
