// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package param

import "github.com/go-air/uncorr/z"

// Projections returns the projection entries of rank rank block functions
// over q: the indices c*q**j with c in [1,q) and j in [0,rank), that is the
// tuples with a single nonzero digit.
func Projections(q z.Q, rank int) []int {
	res := make([]int, 0, rank*(int(q)-1))
	for j := 0; j < rank; j++ {
		p := q.Pow(j)
		for c := 1; c < int(q); c++ {
			res = append(res, c*p)
		}
	}
	return res
}

// IsProjection returns whether k is a projection entry.
func IsProjection(q z.Q, rank, k int) bool {
	for _, p := range Projections(q, rank) {
		if p == k {
			return true
		}
	}
	return false
}

// ProjectionShifts returns every vector supported on the projection
// entries, q**(rank*(q-1)) of them.  Adding one of them to a function
// gives another member of its class modulo projections; in the binary case
// these are the 2**rank sums of the digit selections.
func ProjectionShifts(q z.Q, rank int) []*Vector {
	ps := Projections(q, rank)
	n := q.Pow(len(ps))
	res := make([]*Vector, 0, n)
	digits := make([]int8, len(ps))
	for i := 0; i < n; i++ {
		q.Digits(digits, i)
		v := New(q, rank)
		for j, d := range digits {
			v.F[ps[j]] = d
		}
		res = append(res, v)
	}
	return res
}

// Multiplier returns how many block functions a canonical representative
// stands for: the nonzero multiples times the functions supported on
// projection entries, (q-1) * q**(rank*(q-1)).
func Multiplier(q z.Q, rank int) int64 {
	m := int64(q) - 1
	for i := 0; i < rank*(int(q)-1); i++ {
		m *= int64(q)
	}
	return m
}
