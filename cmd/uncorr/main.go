// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/go-air/uncorr"
	"github.com/go-air/uncorr/internal/stats"
)

const (
	exitOK          = 0
	exitUsage       = 1
	exitViolation   = 2
	exitInterrupted = 130
)

func main() {
	st := stats.New()
	ctx, stop := withSignals(context.Background(), st, os.Stderr)
	code := run(ctx, newApp(os.Stdout, os.Stderr, st), os.Args[1:])
	stop()
	os.Exit(code)
}

// run executes the command line args and returns the exit code.
func run(ctx context.Context, a *app, args []string) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	err := cmd.ExecuteContext(ctx)
	a.close()
	if err != nil {
		if a.log != nil {
			a.log.Error("uncorr failed", zap.Error(err))
		} else {
			fmt.Fprintf(a.stderr, "uncorr: %s\n", err)
		}
	}
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, uncorr.ErrClassification):
		return exitViolation
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	}
	return exitUsage
}

type app struct {
	stdout, stderr io.Writer

	cfgPath     string
	verbose     bool
	metricsAddr string

	st          *stats.Stats
	log         *zap.Logger
	runID       string
	stopMetrics func()
}

func newApp(stdout, stderr io.Writer, st *stats.Stats) *app {
	return &app{stdout: stdout, stderr: stderr, st: st}
}

func (a *app) verifier() *uncorr.Verifier {
	return uncorr.NewVerifier(uncorr.WithLogger(a.log), uncorr.WithStats(a.st))
}

func (a *app) close() {
	if a.stopMetrics != nil {
		a.stopMetrics()
		a.stopMetrics = nil
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}
