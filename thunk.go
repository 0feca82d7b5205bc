// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import (
	"fmt"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// Thunk states. Evaluated and poisoned are terminal.
const (
	unevaluated uint32 = iota
	evaluating
	evaluated
	poisoned
)

// Thunk is a shared, memoizing cell holding a deferred value of type T.
//
// The producer runs at most once over the lifetime of the cell. Every holder
// of the pointer observes the same value. A Thunk is safe for concurrent use:
// goroutines that force it while another goroutine is running the producer
// wait for that producer to finish instead of running it again.
//
// Thunks must be created with [Pure] or [Delay].
type Thunk[T any] struct {
	state   atomic.Uint32
	owner   atomic.Int64
	done    chan struct{}
	produce func() T
	value   T
}

// Pure returns an already evaluated thunk holding v.
func Pure[T any](v T) *Thunk[T] {
	t := &Thunk[T]{value: v}
	t.state.Store(evaluated)
	return t
}

// Delay returns an unevaluated thunk whose value is computed by f.
// f is not called until the thunk is first forced.
func Delay[T any](f func() T) *Thunk[T] {
	return &Thunk[T]{produce: f, done: make(chan struct{})}
}

// Force evaluates the thunk if it has not been evaluated yet.
// Panics with [ErrPoisoned] if the thunk is poisoned. A panic raised by the
// producer propagates to the caller unchanged.
func (t *Thunk[T]) Force() {
	if err := t.force(); err != nil {
		panic(err)
	}
}

// TryForce is the non-panicking variant of Force.
// Returns [ErrPoisoned] instead of panicking on a poisoned thunk.
func (t *Thunk[T]) TryForce() error {
	return t.force()
}

// Eval forces the thunk and returns its value.
// Repeated calls return the same value without running the producer again.
func (t *Thunk[T]) Eval() T {
	t.Force()
	return t.value
}

// TryEval forces the thunk and returns its value, or the zero value and
// [ErrPoisoned].
func (t *Thunk[T]) TryEval() (T, error) {
	if err := t.force(); err != nil {
		var zero T
		return zero, err
	}
	return t.value, nil
}

// IsEvaluated reports whether the thunk holds a value. It never forces.
func (t *Thunk[T]) IsEvaluated() bool {
	return t.state.Load() == evaluated
}

// String renders the thunk without forcing it.
func (t *Thunk[T]) String() string {
	switch t.state.Load() {
	case evaluated:
		return fmt.Sprint(t.value)
	case evaluating:
		return "Evaluating"
	case poisoned:
		return "Poisoned"
	default:
		return "Unevaluated"
	}
}

func (t *Thunk[T]) force() error {
	for {
		switch t.state.Load() {
		case evaluated:
			return nil
		case poisoned:
			return ErrPoisoned
		case unevaluated:
			if !t.state.CompareAndSwap(unevaluated, evaluating) {
				continue
			}
			t.owner.Store(goid.Get())
			t.run()
			return nil
		case evaluating:
			// The owner id is stored before the producer runs, so a
			// re-entrant force always sees its own id here.
			if t.owner.Load() == goid.Get() {
				return ErrPoisoned
			}
			<-t.done
		}
	}
}

// run invokes the producer on the goroutine that won the transition to
// evaluating. A panicking producer leaves the thunk poisoned.
func (t *Thunk[T]) run() {
	completed := false
	defer func() {
		if !completed {
			t.state.Store(poisoned)
		}
		t.produce = nil
		close(t.done)
	}()
	t.value = t.produce()
	completed = true
	t.state.Store(evaluated)
}

// Map returns an unevaluated thunk that applies f to the value of t.
// t is not forced until the result is.
func Map[T, U any](t *Thunk[T], f func(T) U) *Thunk[U] {
	return Delay(func() U {
		return f(t.Eval())
	})
}

// Bind returns an unevaluated thunk that forces t, applies f, and forces the
// thunk f returns (monadic bind).
func Bind[T, U any](t *Thunk[T], f func(T) *Thunk[U]) *Thunk[U] {
	return Delay(func() U {
		return f(t.Eval()).Eval()
	})
}

// Join flattens one level of thunk nesting without forcing either level.
func Join[T any](t *Thunk[*Thunk[T]]) *Thunk[T] {
	return Delay(func() T {
		return t.Eval().Eval()
	})
}

// MapStrict forces t now and returns an evaluated thunk holding f of its value.
func MapStrict[T, U any](t *Thunk[T], f func(T) U) *Thunk[U] {
	return Pure(f(t.Eval()))
}

// BindStrict forces t now and returns the thunk produced by f.
// The returned thunk itself is not forced.
func BindStrict[T, U any](t *Thunk[T], f func(T) *Thunk[U]) *Thunk[U] {
	return f(t.Eval())
}
