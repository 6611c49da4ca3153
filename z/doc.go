// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package z contains the basic value types of uncorr: the size of a residue
// alphabet and the digit expansions of indices in that base.
//
// Residues and digits are int8 values in [0,q).  Every other package
// works in terms of these.
package z
