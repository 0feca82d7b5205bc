// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import (
	"fmt"
	"strings"
)

// Markers used by Inspect for nodes that hold no value yet.
const (
	markUnevaluated = "<unevaluated>"
	markEvaluating  = "<evaluating>"
	markPoisoned    = "<poisoned>"
)

// String renders l as [e1, e2, ...], forcing every node it visits exactly
// once. Elements are formatted with %v, so nested lists are forced as well.
//
// String does not return for an infinite list; bound it with Take first.
func (l List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for x := range l.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprint(&b, x)
	}
	b.WriteByte(']')
	return b.String()
}

// Inspect renders l without forcing anything. The evaluated prefix is shown
// as in String; the first node without a value is shown as <unevaluated>,
// <evaluating> or <poisoned>. Nested lists are inspected, not forced.
func (l List[T]) Inspect() string {
	if m, ok := l.marker(); ok {
		return m
	}
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for cur := l; ; {
		m, pending := cur.marker()
		n := node[T]{}
		if !pending {
			n = cur.force()
			if !n.cons {
				break
			}
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		if pending {
			b.WriteString(m)
			break
		}
		b.WriteString(inspectValue(n.head))
		cur = n.tail
	}
	b.WriteByte(']')
	return b.String()
}

// marker returns the Inspect marker for a node that holds no value yet.
func (l List[T]) marker() (string, bool) {
	if l.cell == nil {
		return "", false
	}
	switch l.cell.state.Load() {
	case evaluated:
		return "", false
	case evaluating:
		return markEvaluating, true
	case poisoned:
		return markPoisoned, true
	default:
		return markUnevaluated, true
	}
}

func inspectValue(v any) string {
	if in, ok := v.(interface{ Inspect() string }); ok {
		return in.Inspect()
	}
	return fmt.Sprint(v)
}
