// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package stats

import (
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Candidates.Add(1)
				s.Patterns.Add(3)
			}
		}()
	}
	wg.Wait()
	s.Good.Add(2)

	snap := s.Snapshot()
	assert.Equal(t, Snapshot{Candidates: 800, Good: 2, Patterns: 2400}, snap)

	s.Read(&snap)
	assert.EqualValues(t, 1600, snap.Candidates)
	assert.EqualValues(t, 800, s.Candidates.Load())
	assert.True(t, strings.Contains(snap.String(), "c good"))
}

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := New()
	require.NoError(t, s.Register(reg))

	s.Witnesses.Add(5)
	s.Violations.Add(1)

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	want := `
# HELP uncorr_witnesses_total Correlation witnesses found.
# TYPE uncorr_witnesses_total counter
uncorr_witnesses_total 5
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "uncorr_witnesses_total"))

	// a second registration of the same names fails
	assert.Error(t, New().Register(reg))
}
