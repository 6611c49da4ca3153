// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package seq evaluates the sequences generated by block functions.
//
// The term u_n of the sequence generated by a rank r block function f is
// the sum of f over every window of r consecutive digits in the base q
// expansion of n, reduced mod q.  Expansions have a fixed width; windows
// reaching past the width read zero digits.
package seq
