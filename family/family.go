// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package family

import (
	"fmt"

	"github.com/go-air/uncorr/param"
	"github.com/go-air/uncorr/seq"
	"github.com/go-air/uncorr/z"
)

// MaxDigits bounds the length of the digit buffers, Before+2+After.
const MaxDigits = 16

// Shape selects the equality patterns examined by a Checker.
//
// Patterns have a carry position len in [0, Before+2), len pattern digits
// below it and After forced equal digits above it.  When Strided is set,
// the pad = max(len+1-Before, 0) lowest digits are left entirely free
// instead of being split into equal and distinct ones.  When Ordered is
// set the carry digit pair is restricted to x < y.
type Shape struct {
	Before  int
	After   int
	Strided bool
	Ordered bool
}

// ShapeFor returns the shape used for (before, after)-strong uncorrelation
// over q: binary patterns are unstrided with carry pair (0,1), ternary ones
// are strided with any distinct carry pair.
func ShapeFor(q z.Q, before, after int) Shape {
	return Shape{
		Before:  before,
		After:   after,
		Strided: q == z.Ternary,
		Ordered: q == z.Binary}
}

// Strong returns whether v is (before, after)-strongly 2-uncorrelated.
func Strong(v *param.Vector, before, after int) bool {
	return New(v, ShapeFor(v.Q, before, after)).Check()
}

// Checker checks one block function against one shape.
type Checker struct {
	v     *param.Vector
	shape Shape

	all      [][2]int8
	distinct [][2]int8
	carry    [][2]int8

	// Patterns, Families and Completions count the equality patterns,
	// digit pair families and completions examined so far.
	Patterns    int64
	Families    int64
	Completions int64

	failed *Counterexample
}

// New creates a Checker.  New panics if the shape needs more than
// MaxDigits digits.
func New(v *param.Vector, shape Shape) *Checker {
	if n := shape.Before + 2 + shape.After; n > MaxDigits || shape.Before < 0 || shape.After < 0 {
		panic(fmt.Sprintf("shape %+v needs %d digits", shape, n))
	}
	c := &Checker{
		v:        v,
		shape:    shape,
		all:      v.Q.Pairs(false),
		distinct: v.Q.Pairs(true)}
	c.carry = c.distinct
	if shape.Ordered {
		c.carry = nil
		for _, d := range c.distinct {
			if d[0] < d[1] {
				c.carry = append(c.carry, d)
			}
		}
	}
	return c
}

// Counterexample describes the first unbalanced family found by Check.
type Counterexample struct {
	Len   int    // carry position
	Mask  int    // bit j set iff digit j < Len is forced equal
	X, Y  []int8 // the family; forced equal digits are left 0
	Tally []int  // completions per class
}

func (ce *Counterexample) String() string {
	return fmt.Sprintf("len=%d mask=%b x=%v y=%v tally=%v", ce.Len, ce.Mask, ce.X, ce.Y, ce.Tally)
}

// Failed returns the family which made the last Check fail, or nil.
func (c *Checker) Failed() *Counterexample {
	return c.failed
}

type pattern struct {
	n    int
	len  int
	mask int
	pad  int
	eq   [MaxDigits]bool
}

type pair struct {
	x, y [MaxDigits]int8
}

type tally [z.Ternary]int

func (t *tally) add(o tally) {
	for i := range t {
		t[i] += o[i]
	}
}

// Check returns whether every family is balanced.  It stops at the first
// one which is not.
func (c *Checker) Check() bool {
	c.failed = nil
	for l := 0; l < c.shape.Before+2; l++ {
		pad := 0
		if c.shape.Strided && l+1 > c.shape.Before {
			pad = l + 1 - c.shape.Before
		}
		for mask := 0; mask < 1<<l; mask += 1 << pad {
			pat := c.pattern(l, mask, pad)
			c.Patterns++
			if !c.family(&pat, pair{}, 0) {
				return false
			}
		}
	}
	return true
}

func (c *Checker) pattern(l, mask, pad int) pattern {
	pat := pattern{n: l + 1 + c.shape.After, len: l, mask: mask, pad: pad}
	for j := 0; j < l; j++ {
		pat.eq[j] = (mask>>j)&1 != 0
	}
	for j := l + 1; j < pat.n; j++ {
		pat.eq[j] = true
	}
	return pat
}

func (c *Checker) pairs(pat *pattern, off int) [][2]int8 {
	switch {
	case off == pat.len:
		return c.carry
	case off < pat.pad:
		return c.all
	default:
		return c.distinct
	}
}

// family assigns the digit pairs of the positions which are not forced
// equal, one position per call.
func (c *Checker) family(pat *pattern, p pair, off int) bool {
	if off == pat.n {
		c.Families++
		t := c.fill(pat, p, 0)
		if !c.balanced(t) {
			c.fail(pat, p, t)
			return false
		}
		return true
	}
	if pat.eq[off] {
		return c.family(pat, p, off+1)
	}
	for _, d := range c.pairs(pat, off) {
		p.x[off], p.y[off] = d[0], d[1]
		if !c.family(pat, p, off+1) {
			return false
		}
	}
	return true
}

// fill completes a family by giving each forced equal position every
// common digit, and counts the completions per class.
func (c *Checker) fill(pat *pattern, p pair, off int) tally {
	var t tally
	if off == pat.n {
		t[c.class(p, pat.n)]++
		c.Completions++
		return t
	}
	if !pat.eq[off] {
		return c.fill(pat, p, off+1)
	}
	for d := int8(0); d < int8(c.v.Q); d++ {
		p.x[off], p.y[off] = d, d
		t.add(c.fill(pat, p, off+1))
	}
	return t
}

func (c *Checker) class(p pair, n int) int8 {
	return c.v.Q.Mod(seq.Value(c.v, p.y[:n]) - seq.Value(c.v, p.x[:n]))
}

func (c *Checker) balanced(t tally) bool {
	for i := 1; i < int(c.v.Q); i++ {
		if t[i] != t[0] {
			return false
		}
	}
	return true
}

func (c *Checker) fail(pat *pattern, p pair, t tally) {
	ce := &Counterexample{
		Len:   pat.len,
		Mask:  pat.mask,
		X:     make([]int8, pat.n),
		Y:     make([]int8, pat.n),
		Tally: make([]int, c.v.Q)}
	for i := 0; i < pat.n; i++ {
		if !pat.eq[i] {
			ce.X[i], ce.Y[i] = p.x[i], p.y[i]
		}
	}
	copy(ce.Tally, t[:c.v.Q])
	c.failed = ce
}
