// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/go-air/uncorr/internal/config"
	"github.com/go-air/uncorr/param"
	"github.com/go-air/uncorr/z"
)

// parseAlphabet accepts "binary", "ternary", "2" or "3".
func parseAlphabet(s string) (z.Q, error) {
	switch s {
	case "binary":
		return z.Binary, nil
	case "ternary":
		return z.Ternary, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || !z.Q(n).Valid() {
		return 0, fmt.Errorf("unknown alphabet %q", s)
	}
	return z.Q(n), nil
}

func newCheckCmd(a *app, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check <alphabet> <digits>",
		Short: "Classify one block function",
		Long: `check classifies the block function whose entries are given by digits,
f(0,...,0) first and the first argument varying fastest.  The rank is
determined by the number of digits.`,
		Example: "  uncorr check binary 0001",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseAlphabet(args[0])
			if err != nil {
				return err
			}
			v, err := param.Parse(q, args[1])
			if err != nil {
				return err
			}
			c, err := cfg.CaseFor(q, v.Rank)
			if err != nil {
				return err
			}
			if err := c.Validate(); err != nil {
				return err
			}
			a.st.Candidates.Add(1)
			cls, err := a.verifier().Classify(&c, v)
			if err != nil {
				a.st.Violations.Add(1)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", c.Name, v, cls)
			return nil
		},
	}
}
