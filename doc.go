// Package promise provides a promise primitive with chained continuations,
// join combinators, and a poll-based bridge to background goroutines.
//
// A Promise is resolved exactly once. Consumers register continuations that
// fire synchronously at resolution time, or immediately if the promise is
// already resolved. Two kinds of continuation exist: observers (Then), any
// number of which may watch the value, and a single consumer (ThenMove) that
// takes the value out of the promise. There is no event loop: resolution
// happens on whichever goroutine calls Resolve, or inside
// Runner.TryResolveAll when bridging background work.
package promise
