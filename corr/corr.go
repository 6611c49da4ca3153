// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package corr

import (
	"fmt"

	"github.com/go-air/uncorr/inter"
	"github.com/go-air/uncorr/param"
	"github.com/go-air/uncorr/seq"
	"github.com/go-air/uncorr/z"
)

// Witness records a cell exceeding its threshold.
type Witness struct {
	Size      int    // prefix size M
	Shifts    []int  // scaled shifts
	Cell      []int8 // the class of each shifted difference
	Count     int    // positions in the cell when the threshold was passed
	Threshold int    // M / Share
}

func (w Witness) String() string {
	return fmt.Sprintf("M=%d shifts=%v cell=%v count=%d>%d", w.Size, w.Shifts, w.Cell, w.Count, w.Threshold)
}

// Searcher searches the prefixes of one sequence.  Terms are evaluated
// once and shared by all searches.
type Searcher struct {
	q   z.Q
	p   *seq.Prefix
	tab []int

	// Scans counts the (size, tuple) pairs scanned.
	Scans int64
}

// New creates a Searcher for s.
func New(s inter.Sequence) *Searcher {
	return NewPrefix(seq.NewPrefix(s))
}

// NewPrefix creates a Searcher reading terms from p.
func NewPrefix(p *seq.Prefix) *Searcher {
	return &Searcher{q: p.Q(), p: p}
}

// Find returns the first witness within b, searching sizes in increasing
// order and, for each size, tuples with the largest shift varying slowest.
func (s *Searcher) Find(b Bounds) (Witness, bool) {
	var (
		w     Witness
		found bool
	)
	if b.Order < 1 {
		return w, false
	}
	shifts := make([]int, b.Order)
	for m := b.Sizes.Lo; m < b.Sizes.Hi && !found; m++ {
		M := s.q.Pow(m)
		if M/b.Blocks == 0 {
			continue
		}
		u := s.p.Terms(M)
		eachTuple(b.Shifts, b.Order, func(t []int) bool {
			for i, a := range t {
				shifts[i] = a * b.Scale
			}
			s.Scans++
			cell, count, ok := s.scan(u, shifts, b, true)
			if !ok {
				return true
			}
			w = Witness{
				Size:      M,
				Shifts:    append([]int(nil), shifts...),
				Cell:      s.cell(cell, b.Order),
				Count:     count,
				Threshold: M / b.Share}
			found = true
			return false
		})
	}
	return w, found
}

// Table returns the full tally of one scan of the prefix of size M at the
// given (already scaled) shifts, which must not be empty.  Cells are indexed little endian, the
// class of the first shift being the least significant digit.
func (s *Searcher) Table(M int, shifts []int, b Bounds) []int {
	s.scan(s.p.Terms(M), shifts, b, false)
	return append([]int(nil), s.tab...)
}

// scan tallies the cells of u.  If stop is set it returns as soon as a
// cell exceeds the threshold.
func (s *Searcher) scan(u []int8, shifts []int, b Bounds, stop bool) (cell, count int, ok bool) {
	q := s.q
	M := len(u)
	bs := M / b.Blocks
	thr := 0
	if stop {
		thr = M / b.Share
	}
	n := q.Pow(len(shifts))
	if cap(s.tab) < n {
		s.tab = make([]int, n)
	}
	s.tab = s.tab[:n]
	for i := range s.tab {
		s.tab[i] = 0
	}
	if bs == 0 {
		return 0, 0, false
	}
	last, guard := shifts[len(shifts)-1], shifts[b.Guard]
	for i := 0; i+last < M; i++ {
		if i/bs != (i+guard)/bs {
			continue
		}
		c := 0
		for j := len(shifts) - 1; j >= 0; j-- {
			c = c*int(q) + int(q.Sub(u[i+shifts[j]], u[i]))
		}
		s.tab[c]++
		if stop && s.tab[c] > thr {
			return c, s.tab[c], true
		}
	}
	return 0, 0, false
}

func (s *Searcher) cell(c, order int) []int8 {
	return s.q.Digits(make([]int8, order), c)
}

// FindCorrelationWitness returns whether the sequence of v has a pairwise
// witness at some prefix of size q^m, 2 <= m < sizeBound, and shift in
// shifts.
func FindCorrelationWitness(v *param.Vector, sizeBound int, shifts Range) bool {
	s := New(seq.Block{V: v, Width: sizeBound})
	_, ok := s.Find(Pair(v.Q, Range{Lo: 2, Hi: sizeBound}, shifts))
	return ok
}
