package promise

import (
	"sync"

	pkgerrors "github.com/pkg/errors"
)

type stateKind int

const (
	kindUnresolved stateKind = iota
	kindResolved
	kindMoved
)

// state is the shared cell behind every handle to one promise. Every
// transition holds mu; continuations fire with mu released so a continuation
// may register further continuations on the same promise.
type state[T any] struct {
	mu sync.Mutex

	kind   stateKind
	val    T
	thens  []func(T) // observers, fire in registration order
	moveFn func(T)   // single consumer, fires after all observers
}

func newState[T any]() *state[T] {
	return &state[T]{}
}

func resolvedState[T any](val T) *state[T] {
	return &state[T]{kind: kindResolved, val: val}
}

// fatal reports a contract violation. The stack on the panic value points at
// the violating call.
func fatal(err error) {
	panic(pkgerrors.WithStack(err))
}

func (s *state[T]) resolve(val T) {
	if !s.tryResolve(val) {
		fatal(ErrDoubleResolve)
	}
}

// tryResolve folds the queued continuations against val: observers in
// registration order first, then the move consumer if one is attached.
// It reports false when the promise is already satisfied.
func (s *state[T]) tryResolve(val T) bool {
	s.mu.Lock()
	if s.kind != kindUnresolved {
		s.mu.Unlock()
		return false
	}
	thens := s.thens
	moveFn := s.moveFn
	s.thens = nil
	s.moveFn = nil
	if moveFn != nil {
		s.kind = kindMoved
	} else {
		s.kind = kindResolved
		s.val = val
	}
	s.mu.Unlock()

	for _, fn := range thens {
		fn(val)
	}
	if moveFn != nil {
		moveFn(val)
	}
	return true
}

// insertThen queues fn as an observer, or fires it immediately when the
// value is already present.
func (s *state[T]) insertThen(fn func(T)) {
	s.mu.Lock()
	switch s.kind {
	case kindResolved:
		val := s.val
		s.mu.Unlock()
		fn(val)
		return
	case kindMoved:
		s.mu.Unlock()
		fatal(ErrMovedOut)
	}
	s.thens = append(s.thens, fn)
	s.mu.Unlock()
}

// insertThenMove attaches the single consumer, taking the value out
// immediately when it is already present.
func (s *state[T]) insertThenMove(fn func(T)) {
	s.mu.Lock()
	switch s.kind {
	case kindResolved:
		val := s.val
		var zero T
		s.val = zero
		s.kind = kindMoved
		s.mu.Unlock()
		fn(val)
		return
	case kindMoved:
		s.mu.Unlock()
		fatal(ErrDoubleMove)
	}
	if s.moveFn != nil {
		s.mu.Unlock()
		fatal(ErrDoubleMove)
	}
	s.moveFn = fn
	s.mu.Unlock()
}

func (s *state[T]) value() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kind != kindResolved {
		var zero T
		return zero, false
	}
	return s.val, true
}

func (s *state[T]) take() T {
	s.mu.Lock()
	switch s.kind {
	case kindUnresolved:
		s.mu.Unlock()
		fatal(ErrNotResolved)
	case kindMoved:
		s.mu.Unlock()
		fatal(ErrMovedOut)
	}
	val := s.val
	var zero T
	s.val = zero
	s.kind = kindMoved
	s.mu.Unlock()
	return val
}
