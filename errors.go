package promise

import (
	"errors"
)

// All errors below mark contract violations by the calling code, not
// recoverable runtime failures. The package panics with the sentinel wrapped
// by github.com/pkg/errors.WithStack so the violation site is on the value;
// errors.Is against the sentinel still matches through the wrap.
var (
	// ErrDoubleResolve reports a second Resolve on an already satisfied
	// (resolved or consumed) promise.
	ErrDoubleResolve = errors.New("promise: already resolved")

	// ErrDoubleMove reports a second by-value continuation registered on the
	// same promise, before or after resolution.
	ErrDoubleMove = errors.New("promise: value already claimed by a move continuation")

	// ErrMovedOut reports an observer registration or Take after the value
	// has been consumed by a move continuation.
	ErrMovedOut = errors.New("promise: value moved out")

	// ErrNotResolved reports Take on a promise that has no value yet.
	ErrNotResolved = errors.New("promise: not resolved")

	// ErrEmptyJoin reports JoinAll on an empty input slice.
	ErrEmptyJoin = errors.New("promise: join of no promises")

	// ErrResultDropped reports a background job whose result channel could
	// not accept the result. The runner owns the buffered channel for the
	// job's lifetime, so this is an internal invariant violation.
	ErrResultDropped = errors.New("promise: background result dropped")
)
