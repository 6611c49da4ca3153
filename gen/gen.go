// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"math/rand"
	"sync"

	"github.com/go-air/uncorr/param"
	"github.com/go-air/uncorr/z"
)

/// make the rng seedable
var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

func intn(n int) int {
	mu.Lock()
	defer mu.Unlock()
	return rng.Intn(n)
}

// RandVector returns a random function of the given rank over q whose
// held entries are 0.  A nil held holds nothing.  The result is scaled so
// that its least nonzero entry is 1.
func RandVector(q z.Q, rank int, held func(k int) bool) *param.Vector {
	v := param.New(q, rank)
	for k := range v.F {
		if held != nil && held(k) {
			continue
		}
		v.F[k] = int8(intn(int(q)))
	}
	if c := v.LeastNonzero(); c > 1 {
		// c is its own inverse in Z/2 and Z/3
		v = v.Scale(c)
	}
	return v
}

// RandStandard returns a random function in the canonical form enumerated
// by param.NewStandard: entry 0 and the projection entries are held.
func RandStandard(q z.Q, rank int) *param.Vector {
	return RandVector(q, rank, func(k int) bool {
		return k == 0 || param.IsProjection(q, rank, k)
	})
}

// Cycle generates the periodic sequence x_0 ... x_{p-1} x_0 ... over q.
func Cycle(q z.Q, xs ...int8) *Periodic {
	return &Periodic{q: q, xs: xs}
}

// RandSequence generates a sequence whose first n terms are chosen
// uniformly at random and which repeats with period n.
func RandSequence(q z.Q, n int) *Periodic {
	xs := make([]int8, n)
	mu.Lock()
	defer mu.Unlock()
	for i := range xs {
		xs[i] = int8(rng.Intn(int(q)))
	}
	return &Periodic{q: q, xs: xs}
}

// Periodic is a sequence given by its period.
type Periodic struct {
	q  z.Q
	xs []int8
}

// Q implements inter.Sequence.
func (p *Periodic) Q() z.Q {
	return p.q
}

// Term implements inter.Sequence.
func (p *Periodic) Term(n int) int8 {
	return p.xs[n%len(p.xs)]
}

// Samples is a stream of random canonical functions.
type Samples struct {
	q    z.Q
	rank int
	n    int
	v    *param.Vector
}

// Sample returns a stream of n functions drawn with RandStandard.
func Sample(q z.Q, rank, n int) *Samples {
	return &Samples{q: q, rank: rank, n: n}
}

// Next implements inter.Candidates.
func (s *Samples) Next() bool {
	if s.n <= 0 {
		return false
	}
	s.n--
	s.v = RandStandard(s.q, s.rank)
	return true
}

// Vector implements inter.Candidates.
func (s *Samples) Vector() *param.Vector {
	return s.v
}
