// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package config holds the YAML configuration of the uncorr command.
//
// Every field has a default, and the defaults reproduce the literal bounds
// of the cases in package uncorr, so a configuration file is only needed to
// change them.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-air/uncorr"
	"github.com/go-air/uncorr/corr"
	"github.com/go-air/uncorr/internal/logging"
	"github.com/go-air/uncorr/z"
)

// Environment variables overriding the configuration.
const (
	EnvLogLevel    = "UNCORR_LOG_LEVEL"
	EnvMetricsAddr = "UNCORR_METRICS_ADDR"
)

// ErrInvalid is wrapped by the errors of Validate.
var ErrInvalid = errors.New("invalid configuration")

// Config is the configuration of the uncorr command.  Its zero sections
// are not meaningful; start from DefaultConfig or Load.
type Config struct {
	Logging logging.Config `yaml:"logging"`
	Metrics MetricsConfig  `yaml:"metrics"`
	Binary  BinaryConfig   `yaml:"binary"`
	Ternary CaseConfig     `yaml:"ternary"`
	Triple  TripleConfig   `yaml:"triple"`
	Sample  SampleConfig   `yaml:"sample"`
}

// MetricsConfig configures the HTTP listener serving /metrics and
// /debug/pprof.  An empty address disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// CaseConfig holds the bounds of one case.
type CaseConfig struct {
	Width    int           `yaml:"width"`
	Limit    int64         `yaml:"limit"`
	Pair     []corr.Bounds `yaml:"pair"`
	Variants *corr.Bounds  `yaml:"variants,omitempty"`
}

// BinaryConfig holds the bounds shared by the binary cases.
type BinaryConfig struct {
	Ranks      []int `yaml:"ranks"`
	CaseConfig `yaml:",inline"`
}

// TripleConfig holds the bounds of the triple correlation case.
type TripleConfig struct {
	Width int         `yaml:"width"`
	Limit int64       `yaml:"limit"`
	High  corr.Bounds `yaml:"high"`
	Low   corr.Bounds `yaml:"low"`
}

// SampleConfig configures the sample command.
type SampleConfig struct {
	Seed  int64 `yaml:"seed"`
	Count int   `yaml:"count"`
}

func caseConfig(c uncorr.Case) CaseConfig {
	return CaseConfig{
		Width:    c.Width,
		Limit:    c.Limit,
		Pair:     c.Pair,
		Variants: c.Variants}
}

// DefaultConfig returns the configuration of the literal cases.
func DefaultConfig() *Config {
	tc := uncorr.TripleCase()
	return &Config{
		Logging: logging.DefaultConfig(),
		Binary: BinaryConfig{
			Ranks:      []int{2, 3, 4, 5},
			CaseConfig: caseConfig(uncorr.BinaryCase(2))},
		Ternary: caseConfig(uncorr.TernaryCase()),
		Triple: TripleConfig{
			Width: tc.Width,
			Limit: tc.Limit,
			High:  tc.High,
			Low:   tc.Low},
		Sample: SampleConfig{Seed: 33, Count: 100}}
}

// Load reads path over the defaults and applies the environment
// overrides.  A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes c to path as YAML, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v, ok := os.LookupEnv(EnvMetricsAddr); ok {
		c.Metrics.Addr = v
	}
}

// Validate checks every section of c.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("%w: logging: %w", ErrInvalid, err)
	}
	if c.Metrics.Addr != "" {
		if _, _, err := net.SplitHostPort(c.Metrics.Addr); err != nil {
			return fmt.Errorf("%w: metrics addr: %w", ErrInvalid, err)
		}
	}
	if len(c.Binary.Ranks) == 0 {
		return fmt.Errorf("%w: no binary ranks", ErrInvalid)
	}
	for _, bc := range c.BinaryCases() {
		if err := bc.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	tc := c.TernaryCase()
	if err := tc.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	tr := c.TripleCase()
	if err := tr.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Sample.Count < 0 {
		return fmt.Errorf("%w: sample count %d", ErrInvalid, c.Sample.Count)
	}
	return nil
}

func (cc *CaseConfig) apply(c *uncorr.Case) {
	c.Width = cc.Width
	c.Limit = cc.Limit
	c.Pair = append([]corr.Bounds(nil), cc.Pair...)
	c.Variants = nil
	if cc.Variants != nil {
		b := *cc.Variants
		c.Variants = &b
	}
}

// BinaryCases returns the configured binary cases.
func (c *Config) BinaryCases() []uncorr.Case {
	cs := make([]uncorr.Case, 0, len(c.Binary.Ranks))
	for _, r := range c.Binary.Ranks {
		cs = append(cs, c.BinaryCase(r))
	}
	return cs
}

// BinaryCase returns the binary case of the given rank with the
// configured bounds, whether or not rank is among the configured ranks.
func (c *Config) BinaryCase(rank int) uncorr.Case {
	bc := uncorr.BinaryCase(rank)
	c.Binary.apply(&bc)
	return bc
}

// CaseFor returns the configured case of functions of the given rank over
// q.  Ternary ranks other than 3 reuse the bounds of the ternary case.
func (c *Config) CaseFor(q z.Q, rank int) (uncorr.Case, error) {
	switch q {
	case z.Binary:
		return c.BinaryCase(rank), nil
	case z.Ternary:
		tc := c.TernaryCase()
		if rank != tc.Rank {
			tc.Rank = rank
			tc.Name = fmt.Sprintf("ternary-%d", rank)
		}
		return tc, nil
	}
	return uncorr.Case{}, fmt.Errorf("%w: alphabet %s", ErrInvalid, q)
}

// TernaryCase returns the configured ternary case.
func (c *Config) TernaryCase() uncorr.Case {
	tc := uncorr.TernaryCase()
	c.Ternary.apply(&tc)
	return tc
}

// TripleCase returns the configured triple correlation case.
func (c *Config) TripleCase() uncorr.Triple {
	tc := uncorr.TripleCase()
	tc.Width = c.Triple.Width
	tc.Limit = c.Triple.Limit
	tc.High = c.Triple.High
	tc.Low = c.Triple.Low
	return tc
}
