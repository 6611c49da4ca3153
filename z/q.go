// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Q is the size of the residue alphabet Z/qZ.
type Q int8

const (
	Binary  Q = 2
	Ternary Q = 3
)

// Valid returns whether q is a supported alphabet size.
func (q Q) Valid() bool {
	return q == Binary || q == Ternary
}

// Mod reduces x to a residue in [0,q), also for negative x.
func (q Q) Mod(x int) int8 {
	r := x % int(q)
	if r < 0 {
		r += int(q)
	}
	return int8(r)
}

// Sub returns a - b mod q.
func (q Q) Sub(a, b int8) int8 {
	return q.Mod(int(a) - int(b))
}

// Pow returns q**k.
func (q Q) Pow(k int) int {
	p := 1
	for i := 0; i < k; i++ {
		p *= int(q)
	}
	return p
}

// Log returns the least k with q**k >= n and whether q**k == n.
func (q Q) Log(n int) (k int, exact bool) {
	p := 1
	for p < n {
		p *= int(q)
		k++
	}
	return k, p == n
}

// Digits writes the len(dst) least significant base q digits of n into dst,
// little-endian, and returns dst.
func (q Q) Digits(dst []int8, n int) []int8 {
	for i := range dst {
		dst[i] = int8(n % int(q))
		n /= int(q)
	}
	return dst
}

// Index returns the number whose little-endian base q digits are ds.
func (q Q) Index(ds []int8) int {
	k := 0
	for i := len(ds) - 1; i >= 0; i-- {
		k = k*int(q) + int(ds[i])
	}
	return k
}

// Pairs returns all digit pairs (i,j) in [0,q)^2, with i != j when
// distinct is true.
func (q Q) Pairs(distinct bool) [][2]int8 {
	res := make([][2]int8, 0, int(q)*int(q))
	for i := int8(0); i < int8(q); i++ {
		for j := int8(0); j < int8(q); j++ {
			if distinct && i == j {
				continue
			}
			res = append(res, [2]int8{i, j})
		}
	}
	return res
}

func (q Q) String() string {
	switch q {
	case Binary:
		return "binary"
	case Ternary:
		return "ternary"
	default:
		return fmt.Sprintf("q%d", int8(q))
	}
}
