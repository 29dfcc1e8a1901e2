// Copyright 2025 Palantir Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package selflog is an internal diagnostic channel for reporting failures
// that this library's own components hit but can't surface any other way:
// a Sink whose Write call fails, an MDC value that won't serialize, a
// directive file that doesn't parse. It is off by default and carries no
// cost when disabled.
package selflog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

var (
	outputWriter atomic.Pointer[io.Writer]
	outputFunc   atomic.Pointer[func(string)]
)

// Enable activates self-logging to w. The writer should be safe for
// concurrent use, or wrapped with Sync.
func Enable(w io.Writer) {
	if w == nil {
		return
	}
	outputFunc.Store(nil)
	outputWriter.Store(&w)
}

// EnableFunc activates self-logging via a callback invoked with each
// formatted line.
func EnableFunc(fn func(string)) {
	if fn == nil {
		return
	}
	outputWriter.Store(nil)
	outputFunc.Store(&fn)
}

// Disable turns self-logging off.
func Disable() {
	outputWriter.Store(nil)
	outputFunc.Store(nil)
}

// IsEnabled reports whether self-logging is currently active, so a caller
// can skip formatting work on the common disabled path.
func IsEnabled() bool {
	return outputWriter.Load() != nil || outputFunc.Load() != nil
}

// Printf reports an internal diagnostic message. Safe to call whether or
// not self-logging is enabled.
func Printf(format string, args ...interface{}) {
	w := outputWriter.Load()
	fn := outputFunc.Load()
	if w == nil && fn == nil {
		return
	}

	msg := fmt.Sprintf(format, args...)
	line := time.Now().UTC().Format(time.RFC3339) + " " + msg

	if w != nil {
		fmt.Fprintln(*w, line)
	} else if fn != nil {
		(*fn)(line)
	}
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Sync wraps w so concurrent Printf calls never interleave partial writes.
func Sync(w io.Writer) io.Writer {
	return &syncWriter{w: w}
}

// WLOG_SELFLOG enables self-logging at process startup: "stderr", "stdout",
// or a file path.
func init() {
	dest := os.Getenv("WLOG_SELFLOG")
	if dest == "" {
		return
	}
	switch dest {
	case "stderr":
		Enable(os.Stderr)
	case "stdout":
		Enable(os.Stdout)
	default:
		if f, err := os.OpenFile(dest, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			Enable(Sync(f))
		}
	}
}
