// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"testing"

	"github.com/go-air/uncorr/inter"
	"github.com/go-air/uncorr/param"
	"github.com/go-air/uncorr/z"
)

func TestRandStandard(t *testing.T) {
	Seed(44)
	for i := 0; i < 100; i++ {
		v := RandStandard(z.Ternary, 3)
		if v.F[0] != 0 {
			t.Errorf("entry 0 is %d", v.F[0])
		}
		for _, k := range param.Projections(z.Ternary, 3) {
			if v.F[k] != 0 {
				t.Errorf("projection entry %d is %d", k, v.F[k])
			}
		}
		if c := v.LeastNonzero(); c > 1 {
			t.Errorf("%s is not canonical", v)
		}
	}
}

func TestSeed(t *testing.T) {
	Seed(7)
	a := RandSequence(z.Binary, 64)
	Seed(7)
	b := RandSequence(z.Binary, 64)
	for n := 0; n < 128; n++ {
		if a.Term(n) != b.Term(n) {
			t.Fatalf("term %d differs after reseeding", n)
		}
	}
}

func TestCycle(t *testing.T) {
	c := Cycle(z.Ternary, 0, 2, 1)
	if c.Q() != z.Ternary {
		t.Errorf("alphabet %s", c.Q())
	}
	for n, want := range []int8{0, 2, 1, 0, 2, 1, 0} {
		if got := c.Term(n); got != want {
			t.Errorf("term %d: got %d want %d", n, got, want)
		}
	}
}

func TestSample(t *testing.T) {
	var cands inter.Candidates = Sample(z.Binary, 4, 5)
	n := 0
	for cands.Next() {
		n++
		if cands.Vector().Rank != 4 {
			t.Errorf("rank %d", cands.Vector().Rank)
		}
	}
	if n != 5 {
		t.Errorf("got %d samples, want 5", n)
	}
	if cands.Next() {
		t.Errorf("stream restarted")
	}
}
