// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"io"
	"time"

	"golang.org/x/text/message"

	"github.com/go-air/uncorr"
)

func printer() *message.Printer {
	return message.NewPrinter(message.MatchLanguage("en"))
}

// report prints the result of a case: one comment line with the counters,
// and the count of sequences when the run was complete.
func report(w io.Writer, res *uncorr.Result) {
	p := printer()
	p.Fprintf(w, "c %s: %d candidates, %d good, %d correlated in %s\n",
		res.Case, res.Candidates, res.Good, res.Correlated, res.Dur.Round(time.Millisecond))
	if stopped(p, w, res) {
		return
	}
	p.Fprintf(w, "There are %d %s block-additive sequences of rank %d.\n", res.Count, res.Q, res.Rank)
}

// reportTriple prints the result of the triple correlation case.
func reportTriple(w io.Writer, res *uncorr.Result) {
	p := printer()
	p.Fprintf(w, "c %s: %d high parts, %d low parts in %s\n",
		res.Case, res.Candidates, res.LowParts, res.Dur.Round(time.Millisecond))
	if stopped(p, w, res) {
		return
	}
	p.Fprintf(w, "All %d canonical high parts of the triple case are 3-correlated.\n", res.Candidates)
}

// stopped prints why an incomplete run has no verdict.
func stopped(p *message.Printer, w io.Writer, res *uncorr.Result) bool {
	switch {
	case res.Violated:
		p.Fprintf(w, "c %s: unclassified function after %d candidates, no count\n", res.Case, res.Candidates)
	case res.Partial:
		p.Fprintf(w, "c %s: partial run, no count\n", res.Case)
	default:
		return false
	}
	return true
}
