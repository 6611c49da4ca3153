// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/go-air/uncorr"
	"github.com/go-air/uncorr/internal/stats"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func runArgs(t *testing.T, ctx context.Context, args ...string) (int, string) {
	t.Helper()
	t.Setenv("UNCORR_LOG_LEVEL", "error")
	t.Setenv("UNCORR_METRICS_ADDR", "")
	var out, errOut bytes.Buffer
	code := run(ctx, newApp(&out, &errOut, stats.New()), args)
	return code, out.String()
}

func TestVerifyBinary(t *testing.T) {
	code, out := runArgs(t, context.Background(), "verify", "binary", "--ranks", "2,3")
	require.Equal(t, exitOK, code, out)
	assert.Contains(t, out, "There are 4 binary block-additive sequences of rank 2.")
	assert.Contains(t, out, "There are 40 binary block-additive sequences of rank 3.")
}

func TestVerifyJobs(t *testing.T) {
	code, out := runArgs(t, context.Background(), "verify", "binary", "--ranks", "2,3", "-j", "2")
	require.Equal(t, exitOK, code, out)
	two := strings.Index(out, "rank 2.")
	three := strings.Index(out, "rank 3.")
	require.True(t, two >= 0 && three >= 0, out)
	assert.Less(t, two, three, "reports follow the case order")

	code, _ = runArgs(t, context.Background(), "verify", "binary", "-j", "0")
	assert.Equal(t, exitUsage, code)
}

func TestVerifyLimit(t *testing.T) {
	code, out := runArgs(t, context.Background(), "verify", "ternary", "--limit", "5")
	require.Equal(t, exitOK, code, out)
	assert.Contains(t, out, "c ternary-3: 5 candidates, 0 good, 5 correlated")
	assert.Contains(t, out, "partial run")

	code, out = runArgs(t, context.Background(), "verify", "triple", "--limit", "2")
	require.Equal(t, exitOK, code, out)
	assert.Contains(t, out, "c triple: 2 high parts, 0 low parts")
}

func TestVerifyBadArgs(t *testing.T) {
	code, _ := runArgs(t, context.Background(), "verify", "quaternary")
	assert.Equal(t, exitUsage, code)
	code, _ = runArgs(t, context.Background(), "verify", "binary", "--ranks", "9")
	assert.Equal(t, exitUsage, code)
	code, _ = runArgs(t, context.Background(), "frobnicate")
	assert.Equal(t, exitUsage, code)
}

func TestCheck(t *testing.T) {
	code, out := runArgs(t, context.Background(), "check", "binary", "0001")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "binary-2 0001 good\n", out)

	code, out = runArgs(t, context.Background(), "check", "2", "0000")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "binary-2 0000 correlated\n", out)

	code, out = runArgs(t, context.Background(), "check", "ternary", "000000000012012012021021021")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "ternary-3 000000000012012012021021021 good\n", out)

	code, _ = runArgs(t, context.Background(), "check", "binary", "000")
	assert.Equal(t, exitUsage, code)
	code, _ = runArgs(t, context.Background(), "check", "5", "00000")
	assert.Equal(t, exitUsage, code)
}

func TestSample(t *testing.T) {
	code, out := runArgs(t, context.Background(), "sample", "binary", "--rank", "3", "--count", "20", "--seed", "5")
	require.Equal(t, exitOK, code, out)
	assert.Contains(t, out, "c binary-3: 20 sampled")
}

func TestCases(t *testing.T) {
	code, out := runArgs(t, context.Background(), "cases")
	require.Equal(t, exitOK, code)
	for _, name := range []string{"binary-2", "binary-5", "ternary-3", "triple"} {
		assert.Contains(t, out, name)
	}
	// thousands separators
	assert.Contains(t, out, "193,710,244")
}

func TestViolationExitCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uncorr.yaml")
	conf := `
ternary:
  pair:
    - sizes: {lo: 2, hi: 2}
      shifts: {lo: 1, hi: 7}
      order: 1
      scale: 1
      blocks: 27
      share: 3
`
	require.NoError(t, os.WriteFile(path, []byte(conf), 0644))
	code, out := runArgs(t, context.Background(), "--config", path, "verify", "ternary", "--limit", "1")
	assert.Equal(t, exitViolation, code)
	assert.Contains(t, out, "c ternary-3: unclassified function after 1 candidates, no count")
	assert.NotContains(t, out, "There are")

	code, _ = runArgs(t, context.Background(), "--config", filepath.Join(t.TempDir(), "missing", "x.yaml"), "cases")
	assert.Equal(t, exitOK, code, "a missing file means defaults")
}

func TestViolationHasNoVerdict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uncorr.yaml")
	conf := `
binary:
  pair: []
triple:
  high:
    sizes: {lo: 6, hi: 6}
  low:
    sizes: {lo: 4, hi: 4}
`
	require.NoError(t, os.WriteFile(path, []byte(conf), 0644))
	code, out := runArgs(t, context.Background(), "--config", path, "verify", "binary", "--ranks", "3")
	assert.Equal(t, exitViolation, code)
	assert.Contains(t, out, "c binary-3: unclassified function")
	assert.NotContains(t, out, "There are")

	code, out = runArgs(t, context.Background(), "--config", path, "verify", "triple")
	assert.Equal(t, exitViolation, code)
	assert.Contains(t, out, "c triple: unclassified function after 1 candidates")
	assert.NotContains(t, out, "3-correlated")
}

func TestInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	code, _ := runArgs(t, ctx, "verify", "binary", "--ranks", "4")
	assert.Equal(t, exitInterrupted, code)
}

func TestExitCode(t *testing.T) {
	ce := &uncorr.ClassificationError{Case: "x", Reason: "y"}
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitViolation, exitCode(fmt.Errorf("run: %w", ce)))
	assert.Equal(t, exitInterrupted, exitCode(context.Canceled))
	assert.Equal(t, exitUsage, exitCode(errors.New("bad flag")))
}

func TestMetricsFlag(t *testing.T) {
	code, out := runArgs(t, context.Background(), "--metrics-addr", "127.0.0.1:0", "check", "binary", "0001")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "good")
}

func TestServeMetrics(t *testing.T) {
	st := stats.New()
	st.Candidates.Add(7)
	addr, stop, err := serveMetrics("127.0.0.1:0", st, zap.NewNop())
	require.NoError(t, err)
	defer stop()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get(fmt.Sprintf("http://%s/metrics", addr))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "uncorr_candidates_total 7")

	resp, err = client.Get(fmt.Sprintf("http://%s/debug/pprof/", addr))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

type lockedBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (l *lockedBuffer) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func (l *lockedBuffer) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.String()
}

func TestSignals(t *testing.T) {
	st := stats.New()
	st.Good.Add(3)
	var w lockedBuffer
	ctx, stop := withSignals(context.Background(), st, &w)
	defer stop()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGUSR1))
	assert.Eventually(t, func() bool {
		return bytes.Contains([]byte(w.String()), []byte("c good"))
	}, 5*time.Second, 10*time.Millisecond)
	assert.NoError(t, ctx.Err())

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))
	assert.Eventually(t, func() bool {
		return ctx.Err() != nil
	}, 5*time.Second, 10*time.Millisecond)
}

func TestReport(t *testing.T) {
	var b bytes.Buffer
	reportTriple(&b, &uncorr.Result{Case: "triple", Candidates: 1234})
	assert.Contains(t, b.String(), "All 1,234 canonical high parts of the triple case are 3-correlated.")

	b.Reset()
	report(&b, &uncorr.Result{Case: "binary-4", Q: 2, Rank: 4, Candidates: 2048, Good: 142, Count: 2272})
	assert.Contains(t, b.String(), "There are 2,272 binary block-additive sequences of rank 4.")

	b.Reset()
	report(&b, &uncorr.Result{Case: "binary-4", Q: 2, Rank: 4, Candidates: 7, Partial: true, Violated: true})
	assert.Contains(t, b.String(), "c binary-4: unclassified function after 7 candidates, no count")
	assert.NotContains(t, b.String(), "There are")
}
