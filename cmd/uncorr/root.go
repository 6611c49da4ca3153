// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-air/uncorr/internal/config"
	"github.com/go-air/uncorr/internal/logging"
)

func newRootCmd(a *app) *cobra.Command {
	cfg := config.DefaultConfig()
	root := &cobra.Command{
		Use:   "uncorr",
		Short: "Verify the classification of block-additive sequences",
		Long: `uncorr enumerates block functions over Z/2Z and Z/3Z and checks that
each one generates either a strongly 2-uncorrelated sequence or a sequence
with a correlation witness on a finite prefix.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// errors from here on are not usage errors
			cmd.SilenceUsage = true
			loaded, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			*cfg = *loaded
			return a.start(cmd, cfg)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log every classification")
	pf.StringVar(&a.metricsAddr, "metrics-addr", "", "address serving /metrics and /debug/pprof (eg :6060)")

	root.AddCommand(
		newVerifyCmd(a, cfg),
		newCheckCmd(a, cfg),
		newSampleCmd(a, cfg),
		newCasesCmd(a, cfg))
	return root
}

func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if a.cfgPath != "" {
		var err error
		if cfg, err = config.Load(a.cfgPath); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("metrics-addr") {
		cfg.Metrics.Addr = a.metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *app) start(cmd *cobra.Command, cfg *config.Config) error {
	l, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.runID = uuid.NewString()
	a.log = l.With(zap.String("run_id", a.runID))
	a.log.Debug("configuration loaded", zap.String("path", a.cfgPath), zap.String("command", cmd.Name()))
	if cfg.Metrics.Addr == "" {
		return nil
	}
	_, stop, err := serveMetrics(cfg.Metrics.Addr, a.st, a.log)
	if err != nil {
		return err
	}
	a.stopMetrics = stop
	return nil
}
