// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package family decides strong 2-uncorrelation of block functions.
//
// Two indices n and n+a differ, in base q, in a window of low digits ending
// at the carry digit of the addition and agree above it.  A Checker looks at
// every equality pattern of the digits below the carry, and at every family
// of digit pairs (x, y) compatible with it, and counts over all completions
// of the forced equal digits the class of Value(y) - Value(x) mod q.  The
// function is strongly uncorrelated when every family is exactly balanced
// among the q classes.
//
// The search is a depth first recursion over digit pairs.  Each call works
// on its own copy of the pair of digit buffers, and the first unbalanced
// family ends the search.
package family
