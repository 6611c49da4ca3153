// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package corr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/uncorr/gen"
	"github.com/go-air/uncorr/param"
	"github.com/go-air/uncorr/z"
)

func TestTupleOrder(t *testing.T) {
	var got [][]int
	eachTuple(Range{Lo: 1, Hi: 5}, 2, func(t []int) bool {
		got = append(got, append([]int(nil), t...))
		return true
	})
	assert.Equal(t, [][]int{{1, 2}, {1, 3}, {2, 3}, {1, 4}, {2, 4}, {3, 4}}, got)

	n := 0
	eachTuple(Range{Lo: 1, Hi: 7}, 3, func(t []int) bool {
		n++
		return true
	})
	assert.Equal(t, 20, n)

	n = 0
	eachTuple(Range{Lo: 1, Hi: 7}, 3, func(t []int) bool {
		n++
		return t[2] < 4
	})
	assert.Equal(t, 2, n, "stops on false")
}

func TestBalancedAndCorrelatedShifts(t *testing.T) {
	// differences at shift 1 alternate, at shift 2 they are always 1
	s := New(gen.Cycle(z.Binary, 0, 0, 1, 1))
	b := Bounds{
		Sizes:  Range{Lo: 4, Hi: 5},
		Shifts: Range{Lo: 1, Hi: 2},
		Order:  1,
		Scale:  1,
		Blocks: 1,
		Share:  2}
	_, ok := s.Find(b)
	assert.False(t, ok)

	b.Shifts.Hi = 3
	w, ok := s.Find(b)
	require.True(t, ok)
	assert.Equal(t, Witness{Size: 16, Shifts: []int{2}, Cell: []int8{1}, Count: 9, Threshold: 8}, w)
	assert.EqualValues(t, 3, s.Scans)
}

func TestConstantSequence(t *testing.T) {
	v := param.New(z.Binary, 2)
	assert.True(t, FindCorrelationWitness(v, 15, Range{Lo: 1, Hi: 8}))

	// blocks of size 2 hold 8 positions, which is not more than half
	s := New(gen.Cycle(z.Binary, 0))
	w, ok := s.Find(Pair(z.Binary, Range{Lo: 2, Hi: 15}, Range{Lo: 1, Hi: 8}))
	require.True(t, ok)
	assert.Equal(t, Witness{Size: 32, Shifts: []int{1}, Cell: []int8{0}, Count: 17, Threshold: 16}, w)
}

func TestRudinShapiroHasNoPairWitness(t *testing.T) {
	v, err := param.Parse(z.Binary, "0001")
	require.NoError(t, err)
	assert.False(t, FindCorrelationWitness(v, 15, Range{Lo: 1, Hi: 8}))
	assert.False(t, FindCorrelationWitness(v, 15, Range{Lo: 8, Hi: 18}))
}

func TestSmallBlocks(t *testing.T) {
	s := New(gen.Cycle(z.Binary, 0))
	b := Pair(z.Binary, Range{Lo: 2, Hi: 4}, Range{Lo: 1, Hi: 2})
	// M=4 has empty blocks; at M=8 no shift stays inside a block of size 1
	_, ok := s.Find(b)
	assert.False(t, ok)
	assert.EqualValues(t, 1, s.Scans)
}

func TestScaledPairs(t *testing.T) {
	xs := make([]int8, 27)
	for i := range xs {
		xs[i] = int8(i / 9)
	}
	s := New(gen.Cycle(z.Ternary, xs...))
	w, ok := s.Find(Bounds{
		Sizes:  Range{Lo: 4, Hi: 5},
		Shifts: Range{Lo: 1, Hi: 3},
		Order:  2,
		Scale:  9,
		Blocks: 1,
		Share:  9,
		Guard:  1})
	require.True(t, ok)
	assert.Equal(t, Witness{Size: 81, Shifts: []int{9, 18}, Cell: []int8{1, 2}, Count: 10, Threshold: 9}, w)
}

func TestEmptyBounds(t *testing.T) {
	s := New(gen.Cycle(z.Ternary, 0))
	for _, b := range []Bounds{
		{Sizes: Range{Lo: 2, Hi: 2}, Shifts: Range{Lo: 1, Hi: 7}, Order: 1, Scale: 1, Blocks: 1, Share: 3},
		{Sizes: Range{Lo: 2, Hi: 8}, Shifts: Range{Lo: 3, Hi: 3}, Order: 1, Scale: 1, Blocks: 1, Share: 3},
		{Sizes: Range{Lo: 2, Hi: 8}, Shifts: Range{Lo: 1, Hi: 3}, Order: 3, Scale: 1, Blocks: 1, Share: 3},
	} {
		_, ok := s.Find(b)
		assert.False(t, ok, "%s", b)
	}
}

// positions counts the positions a scan tallies.
func positions(M int, shifts []int, b Bounds) int {
	bs := M / b.Blocks
	n := 0
	for i := 0; i+shifts[len(shifts)-1] < M; i++ {
		if i/bs == (i+shifts[b.Guard])/bs {
			n++
		}
	}
	return n
}

func TestTableSums(t *testing.T) {
	gen.Seed(3)
	for _, q := range []z.Q{z.Binary, z.Ternary} {
		s := New(gen.RandSequence(q, 5000))
		for _, tc := range []struct {
			shifts []int
			b      Bounds
		}{
			{[]int{3}, Pair(q, Range{}, Range{})},
			{[]int{1, 4, 5}, Bounds{Blocks: 16, Guard: 1}},
			{[]int{9, 27}, Bounds{Blocks: 9, Guard: 1}},
		} {
			M := q.Pow(7)
			tab := s.Table(M, tc.shifts, tc.b)
			require.Len(t, tab, q.Pow(len(tc.shifts)))
			sum := 0
			for _, c := range tab {
				sum += c
			}
			assert.Equal(t, positions(M, tc.shifts, tc.b), sum, "%s %v", q, tc.shifts)
		}
	}
}

func TestValidate(t *testing.T) {
	good := Pair(z.Ternary, Range{Lo: 2, Hi: 16}, Range{Lo: 1, Hi: 7})
	require.NoError(t, good.Validate(z.Ternary))
	assert.Equal(t, MaxTerms, good.MaxSize(z.Ternary))

	for _, b := range []Bounds{
		Pair(z.Ternary, Range{Lo: 2, Hi: 17}, Range{Lo: 1, Hi: 7}),
		Pair(z.Ternary, Range{Lo: -1, Hi: 3}, Range{Lo: 1, Hi: 7}),
		Pair(z.Ternary, Range{Lo: 2, Hi: 3}, Range{Lo: 0, Hi: 7}),
		{Sizes: Range{Lo: 2, Hi: 3}, Shifts: Range{Lo: 1, Hi: 3}, Order: 2, Scale: 1, Blocks: 1, Share: 1, Guard: 2},
		{Sizes: Range{Lo: 2, Hi: 3}, Shifts: Range{Lo: 1, Hi: 3}, Order: 1, Scale: 0, Blocks: 1, Share: 1},
	} {
		err := b.Validate(z.Ternary)
		assert.True(t, errors.Is(err, ErrBounds), "%s: %v", b, err)
	}
	assert.Error(t, good.Validate(z.Q(5)))
}
