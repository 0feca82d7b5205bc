// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lazy provides memoizing thunks and lazily constructed persistent
// lists in Go.
//
// The core type [Thunk] is a shared cell holding a deferred value. Its
// producer runs at most once, on first demand, and every holder of the cell
// observes the same result. [List] is a singly-linked list whose nodes are
// thunks, which makes infinite lists, monadic bind, and a lazy Cartesian
// product expressible without materializing anything up front.
//
// # Thunk
//
// Construction:
//
//   - [Pure]: An already evaluated thunk
//   - [Delay]: An unevaluated thunk with a producer
//
// Evaluation:
//
//   - [Thunk.Force]: Run the producer if it has not run yet (panics on poisoning)
//   - [Thunk.TryForce]: Non-panicking variant of Force
//   - [Thunk.Eval]: Force and return the value
//   - [Thunk.TryEval]: Non-panicking variant of Eval
//   - [Thunk.IsEvaluated]: State probe that never forces
//
// Combinators (lazy, the receiver is not forced until the result is):
//
//   - [Map]: Apply a function to the value
//   - [Bind]: Sequence into a thunk-producing function
//   - [Join]: Flatten a thunk of a thunk
//
// Strict variants force their argument immediately:
//
//   - [MapStrict], [BindStrict]
//
// # State Machine
//
// A thunk created by [Delay] is Unevaluated. The first force moves it to
// Evaluating and runs the producer; when the producer returns, the thunk is
// Evaluated and the producer is released. Evaluated is terminal.
//
// Forcing a thunk from inside its own producer is a cyclic dependency: the
// inner force fails with [ErrPoisoned] instead of recursing. A producer that
// panics leaves the thunk Poisoned; the panic itself propagates unchanged to
// the caller of Force or Eval, and every later force reports [ErrPoisoned].
//
// Concurrent forcing is safe. The transition out of Unevaluated is a single
// compare-and-swap; goroutines that arrive while another goroutine is
// evaluating block until it finishes and then read the stored value.
// A producer that waits on another goroutine which forces the same thunk
// deadlocks; only same-goroutine re-entry is detected.
//
// # List
//
// Construction:
//
//   - [Nil]: The empty list (the zero List is also empty)
//   - [Cons]: Prepend a head to a tail
//   - [PureList]: Single-element list
//   - [Of], [FromSlice]: Evaluated list from values
//   - [Iterate]: Infinite list x, f(x), f(f(x)), ...
//
// Lazy transformation (no element function runs until traversal):
//
//   - [MapList]: Functor map
//   - [List.Append]: Concatenation; an infinite receiver never reaches the argument
//   - [JoinList]: Flatten a list of lists
//   - [BindList]: MapList followed by JoinList
//   - [Prod]: Cartesian product of a list of lists, first list varying slowest
//   - [List.Take]: Prefix of at most n elements
//
// Traversal:
//
//   - [List.Uncons], [List.IsNil]: Force one node
//   - [List.All]: Range-over-func iterator, forcing one node per step
//   - [List.Collect]: Force everything into a slice
//   - [List.String]: Render as [e1, e2, ...], forcing every node
//   - [List.Inspect]: Render without forcing; pending nodes show as <unevaluated>
//   - [List.IsEvaluated]: State probe that never forces
//
// # Example
//
//	outer := lazy.Cons(lazy.Of(1, 2, 3), lazy.PureList(lazy.Of(4, 5)))
//	choices := lazy.Prod(outer)
//
//	fmt.Println(choices.Inspect()) // <unevaluated>
//	fmt.Println(choices)           // [[1, 4], [1, 5], [2, 4], [2, 5], [3, 4], [3, 5]]
//	fmt.Println(choices.Inspect()) // [[1, 4], [1, 5], [2, 4], [2, 5], [3, 4], [3, 5]]
package lazy
