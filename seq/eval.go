// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package seq

import (
	"fmt"

	"github.com/go-air/uncorr/param"
	"github.com/go-air/uncorr/z"
)

// MaxWidth bounds the width of the expansions given to Term.
const MaxWidth = 40

// Value returns the sum of v over the windows of v.Rank consecutive digits
// lying entirely in ds.  The sum is not reduced.
func Value(v *param.Vector, ds []int8) int {
	s := 0
	for i := 0; i+v.Rank <= len(ds); i++ {
		s += int(v.At(ds[i : i+v.Rank]))
	}
	return s
}

// Term returns u_n for the sequence generated by v from the width least
// significant digits of n.
func Term(v *param.Vector, n, width int) int8 {
	if width > MaxWidth {
		panic(fmt.Sprintf("width %d > %d", width, MaxWidth))
	}
	var buf [MaxWidth + 8]int8
	ds := buf[:width+v.Rank-1]
	v.Q.Digits(ds[:width], n)
	return v.Q.Mod(Value(v, ds))
}

// Block is the sequence generated by a block function.
type Block struct {
	V     *param.Vector
	Width int
}

// Q implements inter.Sequence.
func (b Block) Q() z.Q {
	return b.V.Q
}

// Term implements inter.Sequence.
func (b Block) Term(n int) int8 {
	return Term(b.V, n, b.Width)
}
