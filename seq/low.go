// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package seq

import (
	"github.com/go-air/uncorr/param"
	"github.com/go-air/uncorr/z"
)

// Low is the low part of a function in the triple correlation case.  It is
// given by a rank 2 function f and only depends on the three least
// significant digits d0, d1, d2 of n:
//
//	l_n = f(d2, d1) + f(d1, 0)   if d0 = 0
//	l_n = 0                      otherwise
type Low struct {
	V *param.Vector
}

// Q implements inter.Sequence.
func (l Low) Q() z.Q {
	return l.V.Q
}

// Term implements inter.Sequence.
func (l Low) Term(n int) int8 {
	var ds [3]int8
	q := l.V.Q
	q.Digits(ds[:], n)
	if ds[0] != 0 {
		return 0
	}
	hi := l.V.At([]int8{ds[2], ds[1]})
	lo := l.V.At([]int8{ds[1], 0})
	return q.Mod(int(hi) + int(lo))
}
