// Copyright (C) 2026 The AndResGuard Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log provides severity-filtered logging keyed off a
// context.Context, in the spirit of gapid's core/log package: call sites
// pass the ambient context and a severity-shorthand function (D, I, W, E)
// rather than holding on to a *Logger value. This package condenses that
// teacher package's context/severity/handler/style/trace machinery — built
// for an interactive GUI and multi-process trace tool — down to the single
// mechanism this codec and CLI actually need: a process-wide handler, a
// minimum severity filter, and four call shorthands.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

// Severity defines the severity of a logging message, ordered from least
// to most severe.
type Severity int32

const (
	Debug Severity = iota
	Info
	Warning
	Error
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Debug:
		return "D"
	case Info:
		return "I"
	case Warning:
		return "W"
	case Error:
		return "E"
	case Fatal:
		return "F"
	default:
		return "?"
	}
}

// Handler receives formatted log messages at or above the configured
// minimum severity.
type Handler interface {
	Handle(sev Severity, msg string)
}

// WriterHandler adapts an io.Writer (typically os.Stderr) into a Handler.
type WriterHandler struct {
	W io.Writer
}

// Handle implements Handler.
func (h WriterHandler) Handle(sev Severity, msg string) {
	fmt.Fprintf(h.W, "%s: %s\n", sev, msg)
}

var (
	mu          sync.Mutex
	handler     Handler = WriterHandler{W: os.Stderr}
	minSeverity         = Info
)

// SetHandler replaces the process-wide log handler.
func SetHandler(h Handler) {
	mu.Lock()
	defer mu.Unlock()
	handler = h
}

// SetMinSeverity sets the minimum severity that reaches the handler.
// Messages below this level are dropped before formatting.
func SetMinSeverity(s Severity) {
	mu.Lock()
	defer mu.Unlock()
	minSeverity = s
}

func emit(ctx context.Context, sev Severity, format string, args []interface{}) {
	mu.Lock()
	h, min := handler, minSeverity
	mu.Unlock()
	if sev < min || h == nil {
		return
	}
	h.Handle(sev, fmt.Sprintf(format, args...))
}

// D logs a debug-severity message.
func D(ctx context.Context, format string, args ...interface{}) { emit(ctx, Debug, format, args) }

// I logs an info-severity message.
func I(ctx context.Context, format string, args ...interface{}) { emit(ctx, Info, format, args) }

// W logs a warning-severity message. Per spec.md's error handling design,
// this is what a recoverable single-entry decode failure logs at, so the
// caller can survive a corrupt entry during an exploratory read.
func W(ctx context.Context, format string, args ...interface{}) { emit(ctx, Warning, format, args) }

// E logs an error-severity message.
func E(ctx context.Context, format string, args ...interface{}) { emit(ctx, Error, format, args) }
