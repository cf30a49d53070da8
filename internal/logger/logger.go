// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TrueNamePath Authors

// Package logger wraps zerolog.Logger with the constructors and
// context-aware helpers used throughout TrueNamePath.
//
// Logger embeds zerolog.Logger, so the full zerolog API (Debug, Info, Warn,
// Error, Fatal, etc.) is available directly. Application code passes *Logger
// by pointer and obtains request-scoped loggers via FromContext or
// FromRequest.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// levelEnvVar overrides the default Debug level. Any value accepted by
// zerolog.ParseLevel works; unparseable values are ignored.
const levelEnvVar = "TRUENAMEPATH_LOG_LEVEL"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds the process-wide JSON logger writing to os.Stdout.
//
// Every entry carries a "service" field with the given name, a timestamp,
// and an "fn" field holding the package-qualified caller. The global level
// defaults to Debug and can be lowered via TRUENAMEPATH_LOG_LEVEL.
func NewLogger(service string) *Logger {
	zerolog.SetGlobalLevel(resolveLevel())
	zerolog.CallerFieldName = "fn"
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return shortFuncName(pc)
	}

	l := zerolog.New(os.Stdout).With().
		Str("service", service).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

func resolveLevel() zerolog.Level {
	if raw := os.Getenv(levelEnvVar); raw != "" {
		if level, err := zerolog.ParseLevel(raw); err == nil {
			return level
		}
	}
	return zerolog.DebugLevel
}

// shortFuncName trims the module path prefix from a fully-qualified function
// name, keeping the final path element (e.g. "http.(*Handler).resolve").
func shortFuncName(pc uintptr) string {
	name := runtime.FuncForPC(pc).Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Nop returns a *Logger that discards all output. Meant for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child can be enriched with additional context fields without
// affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext returns the logger stored in ctx by zerolog's WithContext.
// zerolog falls back to its global logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// FromRequest is FromContext applied to the request's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}
