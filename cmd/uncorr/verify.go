// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/go-air/uncorr"
	"github.com/go-air/uncorr/internal/config"
)

func newVerifyCmd(a *app, cfg *config.Config) *cobra.Command {
	var (
		limit    int64
		ranks    []int
		parallel int
	)
	cmd := &cobra.Command{
		Use:       "verify [binary|ternary|triple|all]",
		Short:     "Classify every canonical function of the selected cases",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"binary", "ternary", "triple", "all"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if parallel < 1 {
				return fmt.Errorf("--jobs must be positive, got %d", parallel)
			}
			which := "all"
			if len(args) == 1 {
				which = args[0]
			}
			if cmd.Flags().Changed("ranks") {
				cfg.Binary.Ranks = ranks
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			var cases []uncorr.Case
			if which == "binary" || which == "all" {
				cases = append(cases, cfg.BinaryCases()...)
			}
			if which == "ternary" || which == "all" {
				cases = append(cases, cfg.TernaryCase())
			}
			vf := a.verifier()
			type job struct {
				res    *uncorr.Result
				err    error
				triple bool
			}
			jobs := make([]job, len(cases), len(cases)+1)
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(parallel)
			for i, c := range cases {
				i, c := i, c
				if limit > 0 {
					c.Limit = limit
				}
				g.Go(func() error {
					jobs[i].res, jobs[i].err = vf.Run(ctx, c)
					return jobs[i].err
				})
			}
			if which == "triple" || which == "all" {
				tc := cfg.TripleCase()
				if limit > 0 {
					tc.Limit = limit
				}
				jobs = append(jobs, job{triple: true})
				j := &jobs[len(jobs)-1]
				g.Go(func() error {
					j.res, j.err = vf.RunTriple(ctx, tc)
					return j.err
				})
			}
			err := g.Wait()
			for _, j := range jobs {
				// cases cancelled because a sibling failed are not reported
				if j.res == nil || errors.Is(j.err, context.Canceled) && cmd.Context().Err() == nil {
					continue
				}
				if j.triple {
					reportTriple(cmd.OutOrStdout(), j.res)
				} else {
					report(cmd.OutOrStdout(), j.res)
				}
			}
			return err
		},
	}
	cmd.Flags().Int64Var(&limit, "limit", 0, "stop each case after this many candidates (0: no limit)")
	cmd.Flags().IntVarP(&parallel, "jobs", "j", 1, "number of cases verified concurrently")
	cmd.Flags().IntSliceVar(&ranks, "ranks", nil, "binary ranks to verify (default from configuration)")
	return cmd
}
