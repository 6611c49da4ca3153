// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package logging builds the zap loggers used by the command line.
package logging

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Formats accepted by Config.Format.
const (
	FormatAuto    = "auto"
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config selects the level and encoding of a logger.
type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig logs at info level, as text on a terminal and as JSON
// otherwise.
func DefaultConfig() Config {
	return Config{Level: "info", Format: FormatAuto}
}

// Validate checks the level and format names.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return err
	}
	switch c.Format {
	case FormatAuto, FormatJSON, FormatConsole, "":
		return nil
	}
	return fmt.Errorf("unknown log format %q", c.Format)
}

// Encoding returns the zap encoding for format when logging to the file
// descriptor fd.
func Encoding(format string, fd uintptr) string {
	switch format {
	case FormatJSON:
		return "json"
	case FormatConsole:
		return "console"
	}
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return "console"
	}
	return "json"
}

// New builds a logger writing to stderr.  If verbose is set the level is
// lowered to debug whatever cfg says.
func New(cfg Config, verbose bool) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lvl, _ := zapcore.ParseLevel(cfg.Level)
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = Encoding(cfg.Format, os.Stderr.Fd())
	if zc.Encoding == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.DisableStacktrace = !verbose
	return zc.Build()
}
