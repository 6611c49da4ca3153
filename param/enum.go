// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package param

import "github.com/go-air/uncorr/z"

// Enumerator visits block functions by counting in mixed radix: entry k
// ranges over [0,caps[k]], entry 0 being the least significant.
//
// Enumerator mutates a single Vector in place.
type Enumerator struct {
	v         *Vector
	caps      []int8
	canonical bool
	zero      bool
	start     bool
	done      bool
	n         int64
}

// Option configures an Enumerator.
type Option func(e *Enumerator)

// Canonical skips every vector whose least nonzero entry is not 1.
func Canonical() Option {
	return func(e *Enumerator) { e.canonical = true }
}

// WithZero makes the zero vector the first one visited.
func WithZero() Option {
	return func(e *Enumerator) { e.zero = true }
}

// Hold holds the entries k with held(k) at 0.
func Hold(held func(k int) bool) Option {
	return func(e *Enumerator) {
		for k := range e.caps {
			if held(k) {
				e.caps[k] = 0
			}
		}
	}
}

// NewEnumerator creates an enumerator of rank rank functions over q.  Without
// options every entry ranges over the whole alphabet and the zero vector is
// skipped.
func NewEnumerator(q z.Q, rank int, opts ...Option) *Enumerator {
	e := &Enumerator{v: New(q, rank), start: true}
	e.caps = make([]int8, e.v.Len())
	for k := range e.caps {
		e.caps[k] = int8(q) - 1
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewStandard creates the canonical enumerator of the classification cases:
// entry 0 and projection entries held, multiples skipped, zero included.
func NewStandard(q z.Q, rank int) *Enumerator {
	ps := Projections(q, rank)
	held := func(k int) bool {
		if k == 0 {
			return true
		}
		for _, p := range ps {
			if p == k {
				return true
			}
		}
		return false
	}
	return NewEnumerator(q, rank, Canonical(), WithZero(), Hold(held))
}

// Vector returns the current vector.
func (e *Enumerator) Vector() *Vector {
	return e.v
}

// Next advances to the next vector.  It returns false once every vector has
// been visited.
func (e *Enumerator) Next() bool {
	if e.done {
		return false
	}
	if e.start {
		e.start = false
		if e.zero {
			e.n++
			return true
		}
	}
	for {
		i := e.bump()
		if i < 0 {
			e.done = true
			return false
		}
		// entries below i were reset, so F[i] is the least nonzero entry.
		if !e.canonical || e.v.F[i] == 1 {
			e.n++
			return true
		}
	}
}

func (e *Enumerator) bump() int {
	f := e.v.F
	for i, c := range e.caps {
		if f[i] == c {
			f[i] = 0
			continue
		}
		f[i]++
		return i
	}
	return -1
}

// Count returns the number of vectors visited so far.
func (e *Enumerator) Count() int64 {
	return e.n
}

// Free returns the number of entries which are not held.
func (e *Enumerator) Free() int {
	n := 0
	for _, c := range e.caps {
		if c != 0 {
			n++
		}
	}
	return n
}

// Expected returns the number of vectors a full enumeration visits.
func (e *Enumerator) Expected() int64 {
	return Expected(e.v.Q, e.Free(), e.canonical, e.zero)
}

// Expected gives the number of vectors with free unconstrained entries,
// restricted to least nonzero entry 1 if canonical, and with or without the
// zero vector.
func Expected(q z.Q, free int, canonical, zero bool) int64 {
	all := int64(1)
	for i := 0; i < free; i++ {
		all *= int64(q)
	}
	nonzero := all - 1
	if canonical {
		nonzero /= int64(q) - 1
	}
	if zero {
		return nonzero + 1
	}
	return nonzero
}
