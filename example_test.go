// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy_test

import (
	"fmt"

	"code.hybscloud.com/lazy"
)

func Example() {
	outer := lazy.Cons(lazy.Of(1, 2, 3), lazy.PureList(lazy.Of(4, 5)))
	fmt.Println(outer)

	choices := lazy.Prod(outer)
	fmt.Println(choices.Inspect())
	fmt.Println(choices)
	fmt.Println(choices.Inspect())
	// Output:
	// [[1, 2, 3], [4, 5]]
	// <unevaluated>
	// [[1, 4], [1, 5], [2, 4], [2, 5], [3, 4], [3, 5]]
	// [[1, 4], [1, 5], [2, 4], [2, 5], [3, 4], [3, 5]]
}

func ExampleDelay() {
	th := lazy.Delay(func() int {
		fmt.Println("computing")
		return 42
	})
	fmt.Println(th)
	fmt.Println(th.Eval())
	fmt.Println(th.Eval())
	fmt.Println(th)
	// Output:
	// Unevaluated
	// computing
	// 42
	// 42
	// 42
}

func ExampleList_Take() {
	naturals := lazy.Iterate(0, func(x int) int { return x + 1 })
	squares := lazy.MapList(naturals, func(x int) int { return x * x })
	fmt.Println(squares.Take(5))
	// Output:
	// [0, 1, 4, 9, 16]
}

func ExampleBindList() {
	pairs := lazy.BindList(lazy.Of("a", "b"), func(s string) lazy.List[string] {
		return lazy.Of(s+"1", s+"2")
	})
	fmt.Println(pairs)
	// Output:
	// [a1, a2, b1, b2]
}
