// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package corr searches finite prefixes of a sequence for correlation
// witnesses.
//
// For a prefix u_0 ... u_{M-1} and a tuple of shifts s_1 < ... < s_k, each
// position n is mapped to the cell ((u_{n+s_1} - u_n) mod q, ...,
// (u_{n+s_k} - u_n) mod q).  Positions are counted only when n and n plus
// the guard shift lie in the same of Blocks contiguous blocks of the prefix.
// A cell holding more than M/Share positions is a witness that the
// sequence is correlated.
package corr
