// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy_test

import (
	"code.hybscloud.com/lazy"
	"testing"
)

func TestEvalAllocationsEvaluated(t *testing.T) {
	th := lazy.Pure(42)
	allocs := testing.AllocsPerRun(100, func() {
		_ = th.Eval()
	})
	if allocs > 0 {
		t.Errorf("Pure(42).Eval() allocs = %v; want 0", allocs)
	}

	forced := lazy.Delay(func() int { return 42 })
	forced.Force()
	allocs2 := testing.AllocsPerRun(100, func() {
		_ = forced.Eval()
	})
	if allocs2 > 0 {
		t.Errorf("Eval on forced thunk allocs = %v; want 0", allocs2)
	}
}

func TestUnconsAllocationsEvaluated(t *testing.T) {
	l := lazy.Of(1, 2, 3)
	allocs := testing.AllocsPerRun(100, func() {
		_, _, _ = l.Uncons()
	})
	if allocs > 0 {
		t.Errorf("Uncons on evaluated list allocs = %v; want 0", allocs)
	}
}
