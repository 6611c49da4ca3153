// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/go-air/uncorr"
	"github.com/go-air/uncorr/internal/config"
	"github.com/go-air/uncorr/param"
)

func newCasesCmd(a *app, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "cases",
		Short: "Print the configured cases and their bounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := printer()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "case\tcandidates\tmultiplier\tshape\tsearches")
			cases := append(cfg.BinaryCases(), cfg.TernaryCase())
			for i := range cases {
				c := &cases[i]
				n := param.NewStandard(c.Q, c.Rank).Expected()
				p.Fprintf(tw, "%s\t%d\t%d\t(%d, %d)\t%s\n", c.Name, n, c.Multiplier(), c.Before, c.After, searches(c))
			}
			tc := cfg.TripleCase()
			n := uncorr.HighEnumerator().Expected()
			p.Fprintf(tw, "%s\t%d\t-\t-\thigh %s; low %s\n", tc.Name, n, tc.High, tc.Low)
			return tw.Flush()
		},
	}
}

func searches(c *uncorr.Case) string {
	s := ""
	for i, b := range c.Pair {
		if i > 0 {
			s += "; "
		}
		s += "pair " + b.String()
	}
	if c.Variants != nil {
		s += "; variants " + c.Variants.String()
	}
	return s
}
