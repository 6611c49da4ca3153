// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package param

import (
	"fmt"
	"strings"

	"github.com/go-air/uncorr/z"
)

// Vector is a block function of rank Rank over Z/QZ.
type Vector struct {
	Q    z.Q
	Rank int
	F    []int8
}

// New creates the zero block function of rank rank over q.
func New(q z.Q, rank int) *Vector {
	return &Vector{Q: q, Rank: rank, F: make([]int8, q.Pow(rank))}
}

// Len returns the number of entries, q**rank.
func (v *Vector) Len() int {
	return len(v.F)
}

// At applies the block function to the digit window ds, which has
// length v.Rank.
func (v *Vector) At(ds []int8) int8 {
	return v.F[v.Q.Index(ds)]
}

// Copy returns a deep copy of v.
func (v *Vector) Copy() *Vector {
	f := make([]int8, len(v.F))
	copy(f, v.F)
	return &Vector{Q: v.Q, Rank: v.Rank, F: f}
}

// Equal returns whether v and o are the same block function.
func (v *Vector) Equal(o *Vector) bool {
	if v.Q != o.Q || v.Rank != o.Rank || len(v.F) != len(o.F) {
		return false
	}
	for i, c := range v.F {
		if o.F[i] != c {
			return false
		}
	}
	return true
}

// Scale returns c*v.
func (v *Vector) Scale(c int8) *Vector {
	w := v.Copy()
	for i := range w.F {
		w.F[i] = v.Q.Mod(int(c) * int(v.F[i]))
	}
	return w
}

// Add returns v+o, pointwise mod q.  In the binary case this is the
// exclusive or of the two functions.
func (v *Vector) Add(o *Vector) *Vector {
	if v.Q != o.Q || v.Rank != o.Rank {
		panic(fmt.Sprintf("adding %s rank %d to %s rank %d", o.Q, o.Rank, v.Q, v.Rank))
	}
	w := v.Copy()
	for i := range w.F {
		w.F[i] = v.Q.Mod(int(v.F[i]) + int(o.F[i]))
	}
	return w
}

// LeastNonzero returns the lowest indexed nonzero entry, or 0 if v is zero.
func (v *Vector) LeastNonzero() int8 {
	for _, c := range v.F {
		if c != 0 {
			return c
		}
	}
	return 0
}

// IsZero returns whether every entry of v is 0.
func (v *Vector) IsZero() bool {
	return v.LeastNonzero() == 0
}

// Code returns the number whose base q digits, least significant first,
// are the entries of v.
func (v *Vector) Code() uint64 {
	var c uint64
	for i := len(v.F) - 1; i >= 0; i-- {
		c = c*uint64(v.Q) + uint64(v.F[i])
	}
	return c
}

// String gives the entries of v, entry 0 first.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.Grow(len(v.F))
	for _, c := range v.F {
		sb.WriteByte('0' + byte(c))
	}
	return sb.String()
}

// Parse reads a vector in the format of String.  The rank is determined
// by the length of s, which must be a power of q.
func Parse(q z.Q, s string) (*Vector, error) {
	if !q.Valid() {
		return nil, fmt.Errorf("unsupported alphabet %s", q)
	}
	rank, exact := q.Log(len(s))
	if !exact || rank < 1 {
		return nil, fmt.Errorf("length %d of %q is not a power of %d", len(s), s, int8(q))
	}
	v := New(q, rank)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c >= '0'+byte(q) {
			return nil, fmt.Errorf("invalid %s digit %q at %d", q, c, i)
		}
		v.F[i] = int8(c - '0')
	}
	return v, nil
}
