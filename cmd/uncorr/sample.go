// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-air/uncorr/gen"
	"github.com/go-air/uncorr/internal/config"
	"github.com/go-air/uncorr/z"
)

func newSampleCmd(a *app, cfg *config.Config) *cobra.Command {
	var (
		rank  int
		count int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "sample <alphabet>",
		Short: "Classify random canonical block functions",
		Long: `sample classifies random functions in the canonical form of the
enumeration, which spot checks ranks whose enumeration takes long.`,
		Example: "  uncorr sample binary --rank 5 --count 1000",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseAlphabet(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("count") {
				count = cfg.Sample.Count
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Sample.Seed
			}
			if !cmd.Flags().Changed("rank") && q == z.Ternary {
				rank = 3
			}
			c, err := cfg.CaseFor(q, rank)
			if err != nil {
				return err
			}
			if err := c.Validate(); err != nil {
				return err
			}
			gen.Seed(seed)
			res, err := a.verifier().RunCandidates(cmd.Context(), c, gen.Sample(q, rank, count))
			if err != nil {
				return err
			}
			a.log.Info("sample finished",
				zap.String("case", c.Name),
				zap.Int64("seed", seed),
				zap.Int64("good", res.Good),
				zap.Int64("correlated", res.Correlated))
			p := printer()
			p.Fprintf(cmd.OutOrStdout(), "c %s: %d sampled, %d good, %d correlated\n",
				c.Name, res.Candidates, res.Good, res.Correlated)
			return nil
		},
	}
	cmd.Flags().IntVar(&rank, "rank", 4, "rank of the sampled functions (ternary: 3)")
	cmd.Flags().IntVar(&count, "count", 100, "number of functions, overriding sample.count")
	cmd.Flags().Int64Var(&seed, "seed", 33, "random seed, overriding sample.seed")
	return cmd
}
