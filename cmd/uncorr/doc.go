// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package main implements the uncorr command.
//
//	uncorr verify [binary|ternary|triple|all]
//	uncorr check <alphabet> <digits>
//	uncorr sample <alphabet>
//	uncorr cases
//
// verify enumerates every canonical block function of the selected cases and
// classifies it, printing one line per finished case.  With -jobs n, up to
// n cases run at once; reports keep the case order.  check classifies a
// single function given by its entries, f(0...0) first.  sample classifies
// random canonical functions, for ranks whose enumeration is long.  cases
// prints the cases and their bounds.
//
// Bounds come from the literal cases unless a YAML file is given with
// -config.  UNCORR_LOG_LEVEL and UNCORR_METRICS_ADDR override the file.
//
// With -metrics-addr, uncorr serves Prometheus counters on /metrics and
// profiles on /debug/pprof.
//
// Exit codes:
//
//	0    every function was classified
//	1    usage or configuration error
//	2    a function could not be classified
//	130  interrupted
//
// SIGUSR1 prints the counters without stopping.
package main
