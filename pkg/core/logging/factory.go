// ============================================================================
// trinom - Études de fonctions trinômes du second degré
// ============================================================================
//
// Package:     logging
// Description: Factory for the application logger
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"path/filepath"

	qerr "github.com/msto63/trinom/pkg/core/error"
	qlog "github.com/msto63/trinom/pkg/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	Name   string
	Level  string // trace, debug, info, warn, error
	Format string // json, text, console, logfmt

	// File receives the log when set. The interactive menu owns the
	// terminal, so without a file the logger is silent unless Verbose
	// routes it to Stderr.
	File    string
	Verbose bool
	Stderr  io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "text",
		Stderr: os.Stderr,
	}
}

// NewLogger builds a logger and returns a close function for its file, if any
func NewLogger(cfg LoggerConfig) (*qlog.Logger, func() error, error) {
	noop := func() error { return nil }

	level, err := qlog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, noop, qerr.Wrap(err, "invalid log level").WithCode(qerr.CodeInvalidConfig).WithDetail("level", cfg.Level)
	}
	format, err := qlog.ParseFormat(cfg.Format)
	if err != nil {
		return nil, noop, qerr.Wrap(err, "invalid log format").WithCode(qerr.CodeInvalidConfig).WithDetail("format", cfg.Format)
	}

	var outputs []io.Writer
	closer := noop

	if cfg.File != "" {
		if dir := filepath.Dir(cfg.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, noop, qerr.Wrap(err, "cannot create log directory").WithCode(qerr.CodeConfigError).WithDetail("file", cfg.File)
			}
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, noop, qerr.Wrap(err, "cannot open log file").WithCode(qerr.CodeConfigError).WithDetail("file", cfg.File)
		}
		outputs = append(outputs, f)
		closer = f.Close
	}

	if cfg.Verbose {
		stderr := cfg.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		outputs = append(outputs, stderr)
		if level > qlog.LevelDebug {
			level = qlog.LevelDebug
		}
	}

	if len(outputs) == 0 {
		return qlog.Discard().WithName(cfg.Name), closer, nil
	}

	logger := qlog.NewWithConfig(qlog.Config{
		Level:  level,
		Format: format,
		Output: io.MultiWriter(outputs...),
		Name:   cfg.Name,
	})
	return logger, closer, nil
}
