// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package logging provides structured logging for service components.
//
// The package is a thin layer over Go's standard library slog: JSON output
// to stdout for container log collection, with an optional file destination
// for bare-metal deployments.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//	    Level:   logging.LevelInfo,
//	    Service: "generation",
//	})
//	defer logger.Close()
//	logger.SetAsDefault()
//
// # Log Levels
//
// Four levels are supported, matching slog conventions:
//
//   - Debug: Development troubleshooting, verbose output
//   - Info: Normal operations (request start/end, state changes)
//   - Warn: Recoverable issues (retry attempts, degraded mode)
//   - Error: Operation failures (but system continues)
//
// # Thread Safety
//
// Logger is safe for concurrent use. The underlying slog.Logger is
// thread-safe and the file handle is written through slog only.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Level is the minimum severity a record needs to be emitted.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// slogLevel maps a Level onto slog's numeric levels. Unknown values fall
// back to info rather than failing startup.
func (l Level) slogLevel() slog.Level {
	switch Level(strings.ToLower(string(l))) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config controls logger construction.
type Config struct {
	// Level is the minimum level to emit. Defaults to info.
	Level Level

	// Service is stamped on every record and used in log file names.
	Service string

	// LogDir enables file logging when non-empty. The directory is
	// created if needed; files are named {service}_{date}.log.
	LogDir string
}

// Logger wraps slog.Logger with lifecycle handling for the optional file
// destination.
type Logger struct {
	*slog.Logger
	file *os.File
}

// New builds a Logger per cfg. File logging failures degrade to
// stdout-only logging; they never fail startup.
func New(cfg Config) *Logger {
	service := cfg.Service
	if service == "" {
		service = "service"
	}

	var out io.Writer = os.Stdout
	var file *os.File

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, 0o755); err == nil {
			name := fmt.Sprintf("%s_%s.log", service, time.Now().Format("2006-01-02"))
			f, err := os.OpenFile(filepath.Join(cfg.LogDir, name),
				os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err == nil {
				file = f
				out = io.MultiWriter(os.Stdout, f)
			}
		}
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: cfg.Level.slogLevel(),
	})
	logger := slog.New(handler).With("service", service)

	return &Logger{Logger: logger, file: file}
}

// Default builds a stdout-only logger, reading the level from the
// LOG_LEVEL environment variable when set.
func Default(service string) *Logger {
	return New(Config{
		Level:   Level(os.Getenv("LOG_LEVEL")),
		Service: service,
	})
}

// SetAsDefault installs this logger as the process-wide slog default.
func (l *Logger) SetAsDefault() {
	slog.SetDefault(l.Logger)
}

// Close releases the file destination, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
