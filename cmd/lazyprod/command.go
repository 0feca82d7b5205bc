// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"code.hybscloud.com/lazy"
)

// options control how a product is printed.
type options struct {
	// limit caps the number of combinations printed; 0 means no cap.
	limit int
	// inspect prints the non-forcing view before and after traversal.
	inspect bool
}

func newRootCommand() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:          "lazyprod [file]",
		Short:        "Print the lazy Cartesian product of a YAML list of lists",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}
			rows, err := readRows(in)
			if err != nil {
				return err
			}
			lists := lo.Map(rows, func(row []string, _ int) lazy.List[string] {
				return lazy.FromSlice(row)
			})
			return writeProduct(cmd.OutOrStdout(), lazy.FromSlice(lists), opts)
		},
	}
	root.PersistentFlags().IntVar(&opts.limit, "limit", 0, "print at most this many combinations (0 for all)")
	root.PersistentFlags().BoolVar(&opts.inspect, "inspect", false, "show the unforced view before and after printing")
	root.AddCommand(newDemoCommand(&opts))
	return root
}

func newDemoCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the product of [[1, 2, 3], [4, 5]]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outer := lazy.Cons(lazy.Of(1, 2, 3), lazy.PureList(lazy.Of(4, 5)))
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), outer); err != nil {
				return err
			}
			return writeProduct(cmd.OutOrStdout(), outer, *opts)
		},
	}
}

// writeProduct prints one combination of outer's product per line.
func writeProduct[T any](w io.Writer, outer lazy.List[lazy.List[T]], opts options) error {
	product := lazy.Prod(outer)
	if opts.limit > 0 {
		product = product.Take(opts.limit)
	}
	if opts.inspect {
		if _, err := fmt.Fprintln(w, "before:", product.Inspect()); err != nil {
			return err
		}
	}
	for choice := range product.All() {
		if _, err := fmt.Fprintln(w, choice); err != nil {
			return err
		}
	}
	if opts.inspect {
		if _, err := fmt.Fprintln(w, "after:", product.Inspect()); err != nil {
			return err
		}
	}
	return nil
}
