// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package param represents block functions as parameter vectors and
// enumerates them.
//
// A block function of rank r over Z/qZ maps r consecutive digits to a
// residue.  Its Vector stores, at index k, the value of the function on the
// little-endian base q digits of k.
//
// Enumeration is canonical: entry 0 and the projection entries (those of
// the tuples with a single nonzero digit) are held at 0, and for q = 3 only
// vectors whose least nonzero entry is 1 are visited, so that no two
// enumerated vectors are nonzero multiples of each other.
package param
