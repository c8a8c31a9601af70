package promise

import (
	"fmt"
)

// ExamplePromise demonstrates resolving a promise and observing it through a
// derived promise.
func ExamplePromise() {
	p := New[int]()
	doubled := Then(p, func(v int) int { return v * 2 })

	p.Resolve(21)

	v, _ := doubled.Value()
	fmt.Println(v)
	// Output: 42
}

// ExampleThenMove demonstrates that the move continuation consumes the value.
func ExampleThenMove() {
	p := New[string]()
	upper := ThenMove(p, func(s string) string { return s + "!" })

	p.Resolve("hello")

	v, _ := upper.Value()
	fmt.Println(v)

	_, ok := p.Value()
	fmt.Println("source still holds value:", ok)
	// Output:
	// hello!
	// source still holds value: false
}

// ExampleJoin demonstrates combining two pending values.
func ExampleJoin() {
	a := New[int]()
	b := New[string]()
	j := Join(a, b)

	b.Resolve("apples")
	a.Resolve(3)

	v, _ := j.Value()
	fmt.Printf("%d %s\n", v.First, v.Second)
	// Output: 3 apples
}

// ExampleRunner demonstrates bridging background work into a promise. A
// synchronous executor keeps the example deterministic; real callers use
// NewRunner or NewPooledRunner and poll periodically.
func ExampleRunner() {
	r := NewRunnerExecutor(ExecutorFunc(func(f func()) { f() }))

	p := Exec(r, func() int { return 6 * 7 })

	_, ok := p.Value()
	fmt.Println("resolved before polling:", ok)

	r.TryResolveAll()

	v, _ := p.Value()
	fmt.Println(v)
	// Output:
	// resolved before polling: false
	// 42
}
