// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen contains generators for block functions and synthetic
// sequences.
//
// Random generators share one seedable source, so runs are reproducible
// after Seed.
package gen
