// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import "errors"

// ErrPoisoned reports a thunk that cannot produce a value: it was forced
// again while its own producer was still running on the same goroutine, or
// its producer panicked.
//
// Force and Eval panic with ErrPoisoned; TryForce and TryEval return it.
var ErrPoisoned = errors.New("lazy: poisoned thunk")
