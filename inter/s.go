// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package inter contains the interfaces shared between the packages of
// uncorr.
package inter

import (
	"github.com/go-air/uncorr/param"
	"github.com/go-air/uncorr/z"
)

// Interface Sequence encapsulates an infinite sequence
// u_0, u_1, ... over the alphabet Q().
//
// Term must be a pure function of n.
type Sequence interface {
	Q() z.Q
	Term(n int) int8
}

// Interface Candidates encapsulates a stream of block functions to
// classify.
//
// Next advances the stream and returns false once it is exhausted.
// Vector returns the current block function; it is only valid until
// the next call to Next and must not be modified by the caller.
type Candidates interface {
	Next() bool
	Vector() *param.Vector
}
