// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package uncorr

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/go-air/uncorr/corr"
	"github.com/go-air/uncorr/family"
	"github.com/go-air/uncorr/inter"
	"github.com/go-air/uncorr/internal/stats"
	"github.com/go-air/uncorr/param"
	"github.com/go-air/uncorr/seq"
	"github.com/go-air/uncorr/z"
)

// Class is the outcome of classifying one function.
type Class int

const (
	Unclassified Class = iota
	Good
	Correlated
)

func (c Class) String() string {
	switch c {
	case Good:
		return "good"
	case Correlated:
		return "correlated"
	}
	return "unclassified"
}

// progressEvery is the number of candidates between progress log lines.
const progressEvery = 1 << 20

// Verifier runs cases.  A Verifier may run several cases concurrently;
// they share its logger and its atomic counters.
type Verifier struct {
	log *zap.Logger
	st  *stats.Stats
}

// VerifierOption configures a Verifier.
type VerifierOption func(v *Verifier)

// WithLogger sets the logger, zap.NewNop() by default.
func WithLogger(l *zap.Logger) VerifierOption {
	return func(v *Verifier) { v.log = l }
}

// WithStats makes the Verifier accumulate its counters in st.
func WithStats(st *stats.Stats) VerifierOption {
	return func(v *Verifier) { v.st = st }
}

// NewVerifier creates a Verifier.
func NewVerifier(opts ...VerifierOption) *Verifier {
	v := &Verifier{log: zap.NewNop(), st: stats.New()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Stats returns the counters of v.
func (vf *Verifier) Stats() *stats.Stats {
	return vf.st
}

// Result summarizes a run.
type Result struct {
	Case       string
	Q          z.Q
	Rank       int
	Candidates int64
	Good       int64
	Correlated int64
	// LowParts counts the high and low part sums searched by a triple
	// run.
	LowParts int64
	// Count is the number of good functions, all multiples and
	// projection variants included.  It is 0 unless the run completed.
	Count int64
	// Partial is set when the run stopped before the end of the
	// enumeration, and Violated when it stopped at a function which could
	// not be classified.
	Partial  bool
	Violated bool
	Dur      time.Duration
}

func (r *Result) String() string {
	partial := ""
	switch {
	case r.Violated:
		partial = " (violated)"
	case r.Partial:
		partial = " (partial)"
	}
	return fmt.Sprintf("%s: %d candidates, %d good, %d correlated, count %d in %s%s",
		r.Case, r.Candidates, r.Good, r.Correlated, r.Count, r.Dur.Round(time.Millisecond), partial)
}

// Classify classifies v in case c.  A function is Good if it is strongly
// uncorrelated, and then each of its projection variants must have a
// c.Variants witness.  Otherwise it is Correlated if one of the c.Pair
// searches finds a witness.  Any other outcome is a *ClassificationError.
func (vf *Verifier) Classify(c *Case, v *param.Vector) (Class, error) {
	log := vf.log.With(zap.Stringer("vector", v))
	ch := family.New(v, family.ShapeFor(c.Q, c.Before, c.After))
	strong := ch.Check()
	vf.st.Patterns.Add(ch.Patterns)
	vf.st.Families.Add(ch.Families)
	vf.st.Completions.Add(ch.Completions)
	if strong {
		if c.Variants != nil {
			for _, shift := range param.ProjectionShifts(c.Q, c.Rank) {
				u := v.Add(shift)
				w, ok := vf.search(corr.New(seq.Block{V: u, Width: c.Width}), *c.Variants)
				if !ok {
					return Unclassified, &ClassificationError{
						Case:    c.Name,
						Vector:  v.Copy(),
						Variant: u,
						Reason:  "variant of a good function has no witness"}
				}
				log.Debug("variant witness", zap.Stringer("variant", u), zap.Stringer("witness", w))
			}
		}
		log.Debug("good")
		return Good, nil
	}
	log.Debug("not strongly uncorrelated", zap.Stringer("family", ch.Failed()))
	s := corr.New(seq.Block{V: v, Width: c.Width})
	for _, b := range c.Pair {
		if w, ok := vf.search(s, b); ok {
			log.Debug("correlated", zap.Stringer("witness", w))
			return Correlated, nil
		}
	}
	return Unclassified, &ClassificationError{
		Case:   c.Name,
		Vector: v.Copy(),
		Reason: "neither strongly uncorrelated nor correlated"}
}

func (vf *Verifier) search(s *corr.Searcher, b corr.Bounds) (corr.Witness, bool) {
	scans := s.Scans
	w, ok := s.Find(b)
	vf.st.Searches.Add(1)
	vf.st.Scans.Add(s.Scans - scans)
	if ok {
		vf.st.Witnesses.Add(1)
	}
	return w, ok
}

// Run classifies every canonical function of c, in the order of
// param.NewStandard.  It stops at the first *ClassificationError, when ctx
// is done, or after c.Limit candidates; in the last two cases the result is
// Partial.
func (vf *Verifier) Run(ctx context.Context, c Case) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return vf.run(ctx, c, param.NewStandard(c.Q, c.Rank))
}

// RunCandidates is like Run but classifies the functions of cands in
// place of the full enumeration.  Count is only meaningful when cands
// enumerates the canonical functions of c exactly once.
func (vf *Verifier) RunCandidates(ctx context.Context, c Case, cands inter.Candidates) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return vf.run(ctx, c, cands)
}

func (vf *Verifier) run(ctx context.Context, c Case, e inter.Candidates) (*Result, error) {
	start := time.Now()
	res := &Result{Case: c.Name, Q: c.Q, Rank: c.Rank}
	log := vf.log.With(zap.String("case", c.Name))
	fields := []zap.Field{zap.Int64("limit", c.Limit)}
	if x, ok := e.(interface{ Expected() int64 }); ok {
		fields = append(fields, zap.Int64("candidates", x.Expected()))
	}
	log.Info("case started", fields...)
	defer func() {
		if !res.Partial {
			res.Count = res.Good * c.Multiplier()
		}
		res.Dur = time.Since(start)
	}()
	for e.Next() {
		if err := ctx.Err(); err != nil {
			res.Partial = true
			log.Warn("case interrupted", zap.Int64("candidates", res.Candidates))
			return res, err
		}
		if c.Limit > 0 && res.Candidates >= c.Limit {
			res.Partial = true
			break
		}
		res.Candidates++
		vf.st.Candidates.Add(1)
		cls, err := vf.Classify(&c, e.Vector())
		switch {
		case err != nil:
			res.Partial, res.Violated = true, true
			vf.st.Violations.Add(1)
			log.Error("classification problem", zap.Error(err))
			return res, fmt.Errorf("run %s: %w", c.Name, err)
		case cls == Good:
			res.Good++
			vf.st.Good.Add(1)
		default:
			res.Correlated++
			vf.st.Correlated.Add(1)
		}
		if res.Candidates%progressEvery == 0 {
			log.Info("progress",
				zap.Int64("candidates", res.Candidates),
				zap.Int64("good", res.Good))
		}
	}
	log.Info("case finished",
		zap.Int64("candidates", res.Candidates),
		zap.Int64("good", res.Good),
		zap.Int64("count", res.Good*c.Multiplier()),
		zap.Bool("partial", res.Partial),
		zap.Duration("dur", time.Since(start)))
	return res, nil
}

// RunTriple checks that every high part of t has a t.High witness or,
// failing that, that its sum with every low part has a t.Low witness.
// Stopping conditions are those of Run.
func (vf *Verifier) RunTriple(ctx context.Context, t Triple) (*Result, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	res := &Result{Case: t.Name, Q: z.Ternary, Rank: 3}
	defer func() { res.Dur = time.Since(start) }()
	e := HighEnumerator()
	log := vf.log.With(zap.String("case", t.Name))
	log.Info("case started",
		zap.Int64("candidates", e.Expected()),
		zap.Int64("limit", t.Limit))
	for e.Next() {
		if err := ctx.Err(); err != nil {
			res.Partial = true
			log.Warn("case interrupted", zap.Int64("candidates", res.Candidates))
			return res, err
		}
		if t.Limit > 0 && res.Candidates >= t.Limit {
			res.Partial = true
			break
		}
		res.Candidates++
		vf.st.Candidates.Add(1)
		high := seq.NewPrefix(seq.Block{V: e.Vector(), Width: t.Width})
		if w, ok := vf.search(corr.NewPrefix(high), t.High); ok {
			res.Correlated++
			vf.st.Correlated.Add(1)
			log.Debug("high witness", zap.Stringer("vector", e.Vector()), zap.Stringer("witness", w))
			continue
		}
		err := vf.lowParts(ctx, t, e.Vector(), high, res)
		var ce *ClassificationError
		switch {
		case errors.As(err, &ce):
			res.Partial, res.Violated = true, true
			vf.st.Violations.Add(1)
			log.Error("classification problem", zap.Error(err))
			return res, fmt.Errorf("run %s: %w", t.Name, err)
		case err != nil:
			res.Partial = true
			log.Warn("case interrupted", zap.Int64("candidates", res.Candidates))
			return res, err
		}
		res.Correlated++
		vf.st.Correlated.Add(1)
	}
	log.Info("case finished",
		zap.Int64("candidates", res.Candidates),
		zap.Int64("low_parts", res.LowParts),
		zap.Bool("partial", res.Partial),
		zap.Duration("dur", time.Since(start)))
	return res, nil
}

func (vf *Verifier) lowParts(ctx context.Context, t Triple, hv *param.Vector, high *seq.Prefix, res *Result) error {
	lows := LowEnumerator()
	for lows.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		res.LowParts++
		low := lows.Vector()
		s := corr.New(seq.Sum{high, seq.Low{V: low}})
		if _, ok := vf.search(s, t.Low); !ok {
			return &ClassificationError{
				Case:    t.Name,
				Vector:  hv.Copy(),
				Variant: low.Copy(),
				Reason:  "no witness for high part or its sum with low part"}
		}
	}
	vf.log.Debug("low part witnesses", zap.Stringer("vector", hv))
	return nil
}
