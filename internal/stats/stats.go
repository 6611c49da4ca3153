// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package stats holds the counters of a verification run and exports them
// to Prometheus.
//
// Counters are updated by the classification loop and may be read
// concurrently, for example by the metrics listener.
package stats

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "uncorr"

// Stats is a set of cumulative counters.
type Stats struct {
	Candidates  atomic.Int64
	Good        atomic.Int64
	Correlated  atomic.Int64
	Violations  atomic.Int64
	Patterns    atomic.Int64
	Families    atomic.Int64
	Completions atomic.Int64
	Searches    atomic.Int64
	Scans       atomic.Int64
	Witnesses   atomic.Int64
}

// New creates a zeroed Stats.
func New() *Stats {
	return &Stats{}
}

// Snapshot is a copy of the counters at one point in time.
type Snapshot struct {
	Candidates  int64
	Good        int64
	Correlated  int64
	Violations  int64
	Patterns    int64
	Families    int64
	Completions int64
	Searches    int64
	Scans       int64
	Witnesses   int64
}

// Read adds the counters of s into dst.  The counters of s are not reset.
func (s *Stats) Read(dst *Snapshot) {
	for _, c := range s.counters() {
		*c.dst(dst) += c.v.Load()
	}
}

// Snapshot returns the current counters.
func (s *Stats) Snapshot() Snapshot {
	var snap Snapshot
	s.Read(&snap)
	return snap
}

func (st Snapshot) String() string {
	var sb strings.Builder
	for _, c := range (&Stats{}).counters() {
		fmt.Fprintf(&sb, "c %-12s %d\n", c.name, *c.dst(&st))
	}
	return sb.String()
}

type counter struct {
	name string
	help string
	v    *atomic.Int64
	dst  func(*Snapshot) *int64
}

func (s *Stats) counters() []counter {
	return []counter{
		{"candidates", "Enumerated candidate functions.", &s.Candidates, func(x *Snapshot) *int64 { return &x.Candidates }},
		{"good", "Strongly uncorrelated candidates.", &s.Good, func(x *Snapshot) *int64 { return &x.Good }},
		{"correlated", "Candidates with a correlation witness.", &s.Correlated, func(x *Snapshot) *int64 { return &x.Correlated }},
		{"violations", "Candidates neither check could classify.", &s.Violations, func(x *Snapshot) *int64 { return &x.Violations }},
		{"patterns", "Equality patterns examined.", &s.Patterns, func(x *Snapshot) *int64 { return &x.Patterns }},
		{"families", "Digit pair families examined.", &s.Families, func(x *Snapshot) *int64 { return &x.Families }},
		{"completions", "Family completions tallied.", &s.Completions, func(x *Snapshot) *int64 { return &x.Completions }},
		{"searches", "Witness searches started.", &s.Searches, func(x *Snapshot) *int64 { return &x.Searches }},
		{"scans", "Prefix scans, one per size and shift tuple.", &s.Scans, func(x *Snapshot) *int64 { return &x.Scans }},
		{"witnesses", "Correlation witnesses found.", &s.Witnesses, func(x *Snapshot) *int64 { return &x.Witnesses }},
	}
}

// Register registers one counter per field of s with reg, named
// uncorr_<field>_total.
func (s *Stats) Register(reg prometheus.Registerer) error {
	for _, c := range s.counters() {
		v := c.v
		f := prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      c.name + "_total",
			Help:      c.help,
		}, func() float64 {
			return float64(v.Load())
		})
		if err := reg.Register(f); err != nil {
			return fmt.Errorf("registering %s: %w", c.name, err)
		}
	}
	return nil
}
