package promise

// Promise is a handle to a value that may not yet be available. It supports
// one-time resolution and registration of continuations that fire at
// resolution time, or synchronously during registration if the value is
// already present.
//
// Any number of handles may share one underlying slot: continuations built by
// Then and the join combinators hold cloned handles, and every handle
// observes the same resolution. Mutation of the slot is guarded by a mutex,
// so handles may be touched from multiple goroutines, but continuations
// themselves always run synchronously inside the call that triggers them —
// there is no scheduler and nothing blocks.
//
// Two continuation kinds exist. Observers (Then, ThenPromise) watch the
// value without claiming it; any number may be registered and they fire in
// registration order. A consumer (ThenMove, ThenMovePromise) claims the
// value; at most one may ever be attached, it fires after all observers, and
// afterwards the promise reads as empty.
type Promise[T any] struct {
	state *state[T]
}

// New creates an unresolved promise.
func New[T any]() *Promise[T] {
	return &Promise[T]{state: newState[T]()}
}

// Resolved creates a promise already holding val.
func Resolved[T any](val T) *Promise[T] {
	return &Promise[T]{state: resolvedState(val)}
}

// Resolve supplies the promise's value and fires all registered
// continuations. It panics with ErrDoubleResolve if the promise is already
// resolved or its value has been consumed.
func (p *Promise[T]) Resolve(val T) {
	p.state.resolve(val)
}

// TryResolve is Resolve that reports false instead of panicking when the
// promise is already satisfied.
func (p *Promise[T]) TryResolve(val T) bool {
	return p.state.tryResolve(val)
}

// Value returns the current value. ok is false when the promise is
// unresolved or its value has been moved out. Value never blocks.
func (p *Promise[T]) Value() (val T, ok bool) {
	return p.state.value()
}

// Take removes and returns the value, leaving the promise empty. It panics
// with ErrNotResolved if no value has arrived, or ErrMovedOut if the value
// was already consumed.
func (p *Promise[T]) Take() T {
	return p.state.take()
}

// clone returns a new handle sharing p's slot.
func (p *Promise[T]) clone() *Promise[T] {
	return &Promise[T]{state: p.state}
}

// Then registers an observer that derives a new value from p's value without
// claiming it. The returned promise resolves with fn's result when p
// resolves; if p is already resolved, fn fires before Then returns.
func Then[T, R any](p *Promise[T], fn func(T) R) *Promise[R] {
	out := New[R]()
	st := out.state
	p.state.insertThen(func(val T) {
		st.resolve(fn(val))
	})
	return out
}

// ThenMove registers the consumer: fn receives p's value and the value is
// moved out of p. The returned promise resolves with fn's result. Panics
// with ErrDoubleMove if a consumer is already attached or the value was
// already taken.
func ThenMove[T, R any](p *Promise[T], fn func(T) R) *Promise[R] {
	out := New[R]()
	st := out.state
	p.state.insertThenMove(func(val T) {
		st.resolve(fn(val))
	})
	return out
}

// ThenPromise is Then for transforms that themselves return a promise. The
// returned promise resolves once the inner promise does.
func ThenPromise[T, R any](p *Promise[T], fn func(T) *Promise[R]) *Promise[R] {
	out := New[R]()
	st := out.state
	p.state.insertThen(func(val T) {
		fn(val).state.insertThenMove(func(res R) {
			st.resolve(res)
		})
	})
	return out
}

// ThenMovePromise is ThenMove for transforms that themselves return a
// promise.
func ThenMovePromise[T, R any](p *Promise[T], fn func(T) *Promise[R]) *Promise[R] {
	out := New[R]()
	st := out.state
	p.state.insertThenMove(func(val T) {
		fn(val).state.insertThenMove(func(res R) {
			st.resolve(res)
		})
	})
	return out
}
