// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command lazyprod prints the lazy Cartesian product of a list of lists.
//
// Input is a YAML sequence of sequences of scalars, read from the file named
// by the first argument or from stdin:
//
//	- [red, green]
//	- [small, large]
//
// Each combination is printed on its own line, first row varying slowest.
// The demo subcommand runs the built-in [[1, 2, 3], [4, 5]] scenario.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
