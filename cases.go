// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package uncorr

import (
	"fmt"

	"github.com/go-air/uncorr/corr"
	"github.com/go-air/uncorr/family"
	"github.com/go-air/uncorr/param"
	"github.com/go-air/uncorr/seq"
	"github.com/go-air/uncorr/z"
)

// Case describes the verification of all canonical functions of one rank
// over one alphabet.
type Case struct {
	Name string
	Q    z.Q
	Rank int
	// Width is the number of digit windows summed for a term.  It must
	// cover every prefix searched.
	Width int
	// Before and After give the shape of strong uncorrelation.
	Before, After int
	// Pair lists the fallback searches for functions which are not
	// strongly uncorrelated, tried in order.
	Pair []corr.Bounds
	// Variants, when set, is searched for every projection variant of each
	// good function, each of which must have a witness.
	Variants *corr.Bounds
	// Limit stops the run after Limit candidates when positive.
	Limit int64
}

// BinaryCase returns the case of binary functions of the given rank,
// which must be in [2, 5].  Good functions must be (rank-2, rank-1)-strongly
// uncorrelated, and all their projection variants must be 4-correlated.
func BinaryCase(rank int) Case {
	return Case{
		Name:   fmt.Sprintf("binary-%d", rank),
		Q:      z.Binary,
		Rank:   rank,
		Width:  15,
		Before: rank - 2,
		After:  rank - 1,
		Pair: []corr.Bounds{
			corr.Pair(z.Binary, corr.Range{Lo: 2, Hi: 15}, corr.Range{Lo: 1, Hi: 8}),
			corr.Pair(z.Binary, corr.Range{Lo: 2, Hi: 15}, corr.Range{Lo: 8, Hi: 18})},
		Variants: &corr.Bounds{
			Sizes:  corr.Range{Lo: 6, Hi: 11},
			Shifts: corr.Range{Lo: 1, Hi: 7},
			Order:  3,
			Scale:  1,
			Blocks: 16,
			Share:  8,
			Guard:  1}}
}

// TernaryCase returns the case of ternary functions of rank 3, with
// (0, 2)-strong uncorrelation.
func TernaryCase() Case {
	return Case{
		Name:   "ternary-3",
		Q:      z.Ternary,
		Rank:   3,
		Width:  15,
		Before: 0,
		After:  2,
		Pair: []corr.Bounds{
			corr.Pair(z.Ternary, corr.Range{Lo: 2, Hi: 15}, corr.Range{Lo: 1, Hi: 7}),
			corr.Pair(z.Ternary, corr.Range{Lo: 2, Hi: 15}, corr.Range{Lo: 7, Hi: 10})}}
}

// DefaultCases returns the binary cases of rank 2 to 5 and the ternary
// case.
func DefaultCases() []Case {
	var cs []Case
	for r := 2; r <= 5; r++ {
		cs = append(cs, BinaryCase(r))
	}
	return append(cs, TernaryCase())
}

// Multiplier returns how many functions each canonical function of c
// stands for.
func (c *Case) Multiplier() int64 {
	return param.Multiplier(c.Q, c.Rank)
}

// Validate checks that c can be run.
func (c *Case) Validate() error {
	if !c.Q.Valid() {
		return fmt.Errorf("%w: %s: alphabet %s", ErrInvalidCase, c.Name, c.Q)
	}
	if c.Rank < 2 || c.Rank > 5 || (c.Q == z.Ternary && c.Rank > 3) {
		return fmt.Errorf("%w: %s: rank %d over %s", ErrInvalidCase, c.Name, c.Rank, c.Q)
	}
	if c.Before < 0 || c.After < 0 || c.Before+2+c.After > family.MaxDigits {
		return fmt.Errorf("%w: %s: shape (%d, %d)", ErrInvalidCase, c.Name, c.Before, c.After)
	}
	bs := c.Pair
	if c.Variants != nil {
		bs = append(bs[:len(bs):len(bs)], *c.Variants)
	}
	return validateBounds(c.Name, c.Q, c.Width, bs)
}

func validateBounds(name string, q z.Q, width int, bs []corr.Bounds) error {
	if width < 1 || width > seq.MaxWidth {
		return fmt.Errorf("%w: %s: width %d", ErrInvalidCase, name, width)
	}
	for _, b := range bs {
		if err := b.Validate(q); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidCase, name, err)
		}
		if k, _ := q.Log(b.MaxSize(q)); k > width {
			return fmt.Errorf("%w: %s: width %d does not cover prefixes of size %d", ErrInvalidCase, name, width, b.MaxSize(q))
		}
	}
	return nil
}

// Triple describes the verification of ternary rank 3 functions through
// 3-correlation.  Each function is split into a high part, nonzero only on
// windows whose lowest digit is nonzero, and a low part given by a rank 2
// function (see seq.Low).
type Triple struct {
	Name  string
	Width int
	// High is searched on the high part alone.
	High corr.Bounds
	// Low is searched on the sum of the high part with every low part,
	// for high parts without a High witness.
	Low   corr.Bounds
	Limit int64
}

// TripleCase returns the triple correlation case: shifts (9a, 9b) with
// b < 5 on prefixes 3^6 to 3^8 for high parts, and shifts (a, b) with
// b < 6 on prefixes 3^4 to 3^6 with low parts.
func TripleCase() Triple {
	return Triple{
		Name:  "triple",
		Width: 9,
		High: corr.Bounds{
			Sizes:  corr.Range{Lo: 6, Hi: 9},
			Shifts: corr.Range{Lo: 1, Hi: 5},
			Order:  2,
			Scale:  9,
			Blocks: 9,
			Share:  9,
			Guard:  1},
		Low: corr.Bounds{
			Sizes:  corr.Range{Lo: 4, Hi: 7},
			Shifts: corr.Range{Lo: 1, Hi: 6},
			Order:  2,
			Scale:  1,
			Blocks: 9,
			Share:  9,
			Guard:  1}}
}

// Validate checks that t can be run.
func (t *Triple) Validate() error {
	return validateBounds(t.Name, z.Ternary, t.Width, []corr.Bounds{t.High, t.Low})
}

// HighEnumerator returns the enumeration of high parts: canonical nonzero
// rank 3 functions vanishing on windows with lowest digit 0.
func HighEnumerator() *param.Enumerator {
	return param.NewEnumerator(z.Ternary, 3, param.Canonical(), param.Hold(func(k int) bool {
		return k%3 == 0
	}))
}

// LowEnumerator returns the enumeration of low parts: all rank 2 ternary
// functions with f(0, 0) = 0, the zero function included.
func LowEnumerator() *param.Enumerator {
	return param.NewEnumerator(z.Ternary, 2, param.WithZero(), param.Hold(func(k int) bool {
		return k == 0
	}))
}
