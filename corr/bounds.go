// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package corr

import (
	"errors"
	"fmt"

	"github.com/go-air/uncorr/z"
)

// MaxTerms is the largest prefix a search may materialize, 3^15.
const MaxTerms = 14348907

// ErrBounds is returned by Bounds.Validate.
var ErrBounds = errors.New("invalid search bounds")

// Range is the half open interval [Lo, Hi).
type Range struct {
	Lo int `yaml:"lo"`
	Hi int `yaml:"hi"`
}

// Len returns the number of integers in r.
func (r Range) Len() int {
	if r.Hi <= r.Lo {
		return 0
	}
	return r.Hi - r.Lo
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Lo, r.Hi)
}

// Bounds configures a search.
type Bounds struct {
	// Sizes holds the exponents m of the prefix sizes q^m, searched in
	// increasing order.
	Sizes Range `yaml:"sizes"`
	// Shifts bounds the shifts of a tuple before scaling.
	Shifts Range `yaml:"shifts"`
	// Order is the number of shifts in a tuple.
	Order int `yaml:"order"`
	// Scale multiplies every shift.
	Scale int `yaml:"scale"`
	// Blocks is the number of blocks a prefix is cut into.
	Blocks int `yaml:"blocks"`
	// Share sets the threshold M/Share a cell must exceed.
	Share int `yaml:"share"`
	// Guard is the index of the shift which must stay in the block of n.
	Guard int `yaml:"guard"`
}

// Pair returns the bounds of a pairwise search over q: one shift, blocks
// of size M/8 (binary) or M/27 (ternary) and threshold M/q.
func Pair(q z.Q, sizes, shifts Range) Bounds {
	b := Bounds{
		Sizes:  sizes,
		Shifts: shifts,
		Order:  1,
		Scale:  1,
		Blocks: 8,
		Share:  int(q)}
	if q == z.Ternary {
		b.Blocks = 27
	}
	return b
}

// MaxSize returns the largest prefix size of b over q, or 0 if there is
// none.
func (b Bounds) MaxSize(q z.Q) int {
	if b.Sizes.Len() == 0 {
		return 0
	}
	return q.Pow(b.Sizes.Hi - 1)
}

// Validate checks that b describes a search over q which fits in
// MaxTerms.  Empty size or shift ranges are valid and never produce a
// witness.
func (b Bounds) Validate(q z.Q) error {
	switch {
	case !q.Valid():
		return fmt.Errorf("%w: alphabet %s", ErrBounds, q)
	case b.Sizes.Lo < 0:
		return fmt.Errorf("%w: negative size exponent %d", ErrBounds, b.Sizes.Lo)
	case b.Sizes.Hi-1 > 15 || b.MaxSize(q) > MaxTerms:
		return fmt.Errorf("%w: prefix %s^%d exceeds %d terms", ErrBounds, q, b.Sizes.Hi-1, MaxTerms)
	case b.Shifts.Lo < 1:
		return fmt.Errorf("%w: shifts %s must be positive", ErrBounds, b.Shifts)
	case b.Order < 1 || b.Order > 4:
		return fmt.Errorf("%w: order %d", ErrBounds, b.Order)
	case b.Scale < 1:
		return fmt.Errorf("%w: scale %d", ErrBounds, b.Scale)
	case b.Blocks < 1:
		return fmt.Errorf("%w: blocks %d", ErrBounds, b.Blocks)
	case b.Share < 1:
		return fmt.Errorf("%w: share %d", ErrBounds, b.Share)
	case b.Guard < 0 || b.Guard >= b.Order:
		return fmt.Errorf("%w: guard %d with order %d", ErrBounds, b.Guard, b.Order)
	}
	return nil
}

func (b Bounds) String() string {
	return fmt.Sprintf("sizes=%s shifts=%s order=%d scale=%d blocks=%d share=%d guard=%d",
		b.Sizes, b.Shifts, b.Order, b.Scale, b.Blocks, b.Share, b.Guard)
}

// eachTuple calls fn with every increasing tuple of order shifts in r,
// the largest shift varying slowest, until fn returns false.  The tuple
// passed to fn is reused.
func eachTuple(r Range, order int, fn func(t []int) bool) bool {
	t := make([]int, order)
	var rec func(k, hi int) bool
	rec = func(k, hi int) bool {
		if k < 0 {
			return fn(t)
		}
		for a := r.Lo + k; a < hi; a++ {
			t[k] = a
			if !rec(k-1, a) {
				return false
			}
		}
		return true
	}
	return rec(order-1, r.Hi)
}
