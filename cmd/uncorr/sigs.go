// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-air/uncorr/internal/stats"
)

// withSignals returns a context which is cancelled on SIGINT or SIGTERM.
// SIGUSR1 prints the counters of st to w.  The returned function releases
// the signal handler.
func withSignals(parent context.Context, st *stats.Stats, w io.Writer) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-sigs:
				switch sig {
				case syscall.SIGINT, syscall.SIGTERM:
					fmt.Fprintln(w, "\nc interrupted")
					cancel()
				case syscall.SIGUSR1:
					fmt.Fprintf(w, "\nc interrupted USR1\n%s", st.Snapshot())
				}
			}
		}
	}()
	return ctx, func() {
		signal.Stop(sigs)
		cancel()
		<-done
	}
}
