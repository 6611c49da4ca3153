// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package seq

import (
	"github.com/go-air/uncorr/inter"
	"github.com/go-air/uncorr/z"
)

// Sum is the pointwise sum of sequences over the same alphabet.  It must
// not be empty.
type Sum []inter.Sequence

// Q implements inter.Sequence.
func (s Sum) Q() z.Q {
	return s[0].Q()
}

// Term implements inter.Sequence.
func (s Sum) Term(n int) int8 {
	t := 0
	for _, u := range s {
		t += int(u.Term(n))
	}
	return s.Q().Mod(t)
}

// Prefix caches the first terms of a sequence.  A Prefix is itself a
// Sequence, which lets a cached part be summed with others.
type Prefix struct {
	s inter.Sequence
	u []int8
}

// NewPrefix creates an empty cache for s.
func NewPrefix(s inter.Sequence) *Prefix {
	return &Prefix{s: s}
}

// Sequence returns the cached sequence.
func (p *Prefix) Sequence() inter.Sequence {
	return p.s
}

// Terms returns u_0 ... u_{m-1}, evaluating the terms not yet cached.  The
// result must not be modified.
func (p *Prefix) Terms(m int) []int8 {
	if n := len(p.u); m > n {
		if m > cap(p.u) {
			u := make([]int8, n, m)
			copy(u, p.u)
			p.u = u
		}
		for i := n; i < m; i++ {
			p.u = append(p.u, p.s.Term(i))
		}
	}
	return p.u[:m]
}

// Q implements inter.Sequence.
func (p *Prefix) Q() z.Q {
	return p.s.Q()
}

// Term implements inter.Sequence, caching every term up to n.
func (p *Prefix) Term(n int) int8 {
	if n < len(p.u) {
		return p.u[n]
	}
	return p.Terms(n + 1)[n]
}

// Len returns the number of cached terms.
func (p *Prefix) Len() int {
	return len(p.u)
}
