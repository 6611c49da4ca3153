// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package uncorr verifies the classification of block-additive sequences.
//
// A block function f of rank r over Z/qZ generates the sequence
//
//	u_n = sum_i f(d_i, ..., d_{i+r-1}) mod q
//
// where the d_i are the base q digits of n.  For every canonical f of a
// case, a Verifier checks that f is either strongly 2-uncorrelated (package
// family) or that its sequence has a correlation witness on some finite
// prefix (package corr).  A function passing neither check would
// contradict the classification, and the run stops with a
// *ClassificationError.
//
// Typical use:
//
//	v := uncorr.NewVerifier(uncorr.WithLogger(logger))
//	res, err := v.Run(ctx, uncorr.BinaryCase(4))
//	if errors.Is(err, uncorr.ErrClassification) {
//		// counterexample or bad bounds
//	}
//	fmt.Println(res.Count)
//
// Cases are plain values; their bounds may be changed before a run, for
// instance to shorten a smoke test with Limit.
package uncorr
