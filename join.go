package promise

// Pair carries the two values of a Join.
type Pair[T1, T2 any] struct {
	First  T1
	Second T2
}

// Triple carries the three values of a Join3.
type Triple[T1, T2, T3 any] struct {
	First  T1
	Second T2
	Third  T3
}

// Join returns a promise that resolves once both p1 and p2 have resolved,
// carrying both values. The inputs may resolve in either real-time order.
// Join claims both values, so it counts as the move continuation of each
// input.
func Join[T1, T2 any](p1 *Promise[T1], p2 *Promise[T2]) *Promise[Pair[T1, T2]] {
	p2 = p2.clone()
	return ThenMovePromise(p1, func(v1 T1) *Promise[Pair[T1, T2]] {
		return ThenMove(p2, func(v2 T2) Pair[T1, T2] {
			return Pair[T1, T2]{First: v1, Second: v2}
		})
	})
}

// Join3 is Join over three promises.
func Join3[T1, T2, T3 any](p1 *Promise[T1], p2 *Promise[T2], p3 *Promise[T3]) *Promise[Triple[T1, T2, T3]] {
	p2 = p2.clone()
	p3 = p3.clone()
	return ThenMovePromise(p1, func(v1 T1) *Promise[Triple[T1, T2, T3]] {
		return ThenMovePromise(p2, func(v2 T2) *Promise[Triple[T1, T2, T3]] {
			return ThenMove(p3, func(v3 T3) Triple[T1, T2, T3] {
				return Triple[T1, T2, T3]{First: v1, Second: v2, Third: v3}
			})
		})
	})
}

// JoinAll returns a promise that resolves once every promise in ps has
// resolved, carrying the values in input order regardless of resolution
// order. It panics with ErrEmptyJoin when ps is empty.
func JoinAll[T any](ps []*Promise[T]) *Promise[[]T] {
	if len(ps) == 0 {
		fatal(ErrEmptyJoin)
	}
	acc := ThenMove(ps[0], func(val T) []T {
		return []T{val}
	})
	for _, p := range ps[1:] {
		p := p.clone()
		acc = ThenMovePromise(acc, func(vals []T) *Promise[[]T] {
			return ThenMove(p, func(val T) []T {
				return append(vals, val)
			})
		})
	}
	return acc
}
