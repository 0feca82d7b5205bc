// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import "iter"

// node is one cell of a List: either Nil (cons == false) or a head with a tail.
type node[T any] struct {
	head T
	tail List[T]
	cons bool
}

// List is a persistent, possibly infinite, singly-linked list whose nodes
// are produced on demand.
//
// Each node lives in a [Thunk], so a node is computed at most once and shared
// by every list that reaches it. No operation mutates an existing list.
// The zero List is the empty list.
type List[T any] struct {
	cell *Thunk[node[T]]
}

// Nil returns the empty list.
func Nil[T any]() List[T] {
	return List[T]{cell: Pure(node[T]{})}
}

// Cons returns an evaluated list node with the given head and tail.
// The tail is not forced.
func Cons[T any](head T, tail List[T]) List[T] {
	return List[T]{cell: Pure(node[T]{head: head, tail: tail, cons: true})}
}

// PureList returns the single-element list [v].
func PureList[T any](v T) List[T] {
	return Cons(v, Nil[T]())
}

// Of returns a fully evaluated list of xs.
func Of[T any](xs ...T) List[T] {
	return FromSlice(xs)
}

// FromSlice returns a fully evaluated list holding the elements of xs.
func FromSlice[T any](xs []T) List[T] {
	l := Nil[T]()
	for i := len(xs) - 1; i >= 0; i-- {
		l = Cons(xs[i], l)
	}
	return l
}

// Iterate returns the infinite list x, f(x), f(f(x)), ...
// f runs once per node, when that node is first forced.
func Iterate[T any](x T, f func(T) T) List[T] {
	return Cons(x, iterateFrom(x, f))
}

func iterateFrom[T any](prev T, f func(T) T) List[T] {
	return List[T]{cell: Delay(func() node[T] {
		x := f(prev)
		return node[T]{head: x, tail: iterateFrom(x, f), cons: true}
	})}
}

// force evaluates the first node of l.
func (l List[T]) force() node[T] {
	if l.cell == nil {
		return node[T]{}
	}
	return l.cell.Eval()
}

// Uncons forces the first node and returns its head and tail.
// ok is false for the empty list.
func (l List[T]) Uncons() (head T, tail List[T], ok bool) {
	n := l.force()
	return n.head, n.tail, n.cons
}

// IsNil forces the first node and reports whether the list is empty.
func (l List[T]) IsNil() bool {
	return !l.force().cons
}

// IsEvaluated reports whether the first node has been computed. It never forces.
func (l List[T]) IsEvaluated() bool {
	return l.cell == nil || l.cell.IsEvaluated()
}

// deferList returns a list whose first node is computed by forcing the first
// node of l, applying f, and forcing the first node of the list f returns.
func deferList[T, U any](l List[T], f func(node[T]) List[U]) List[U] {
	return List[U]{cell: Delay(func() node[U] {
		return f(l.force()).force()
	})}
}

// MapList returns the lazy list of f applied to each element of l.
// f is applied to an element only when the node holding it is forced.
func MapList[T, U any](l List[T], f func(T) U) List[U] {
	return deferList(l, func(n node[T]) List[U] {
		if !n.cons {
			return Nil[U]()
		}
		return Cons(f(n.head), MapList(n.tail, f))
	})
}

// Append returns the lazy concatenation of l and other.
// If l is infinite, other is never reached.
func (l List[T]) Append(other List[T]) List[T] {
	return deferList(l, func(n node[T]) List[T] {
		if !n.cons {
			return other
		}
		return Cons(n.head, n.tail.Append(other))
	})
}

// JoinList flattens a list of lists one level: [xs, xss...] becomes
// xs followed by JoinList(xss).
func JoinList[T any](xss List[List[T]]) List[T] {
	return deferList(xss, func(n node[List[T]]) List[T] {
		if !n.cons {
			return Nil[T]()
		}
		return n.head.Append(JoinList(n.tail))
	})
}

// BindList maps f over l and flattens the result (list monad bind).
func BindList[T, U any](l List[T], f func(T) List[U]) List[U] {
	return JoinList(MapList(l, f))
}

// Prod returns the lazy Cartesian product of xss: every list formed by
// choosing one element from each inner list, in order.
//
// The first inner list varies slowest. The product of an empty list of lists
// is the single empty choice [[]]. Neither the outer list of choices nor any
// choice list is built until it is traversed.
func Prod[T any](xss List[List[T]]) List[List[T]] {
	return deferList(xss, func(n node[List[T]]) List[List[T]] {
		if !n.cons {
			return PureList(Nil[T]())
		}
		rest := Prod(n.tail)
		return BindList(n.head, func(k T) List[List[T]] {
			return MapList(rest, func(cs List[T]) List[T] {
				return Cons(k, cs)
			})
		})
	})
}

// Take returns the lazy prefix of l holding at most n elements.
func (l List[T]) Take(n int) List[T] {
	if n <= 0 {
		return Nil[T]()
	}
	return deferList(l, func(nd node[T]) List[T] {
		if !nd.cons {
			return Nil[T]()
		}
		return Cons(nd.head, nd.tail.Take(n-1))
	})
}

// All returns an iterator over the elements of l.
// Each node is forced when the iteration reaches it; breaking out of the
// loop stops forcing, so All is safe on infinite lists.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.force(); n.cons; n = n.tail.force() {
			if !yield(n.head) {
				return
			}
		}
	}
}

// Collect forces every node of l and returns its elements.
// Does not return for an infinite list.
func (l List[T]) Collect() []T {
	var xs []T
	for x := range l.All() {
		xs = append(xs, x)
	}
	return xs
}
