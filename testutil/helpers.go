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

// Package testutil collects small helpers shared across this module's own
// test suites: polling for asynchronous conditions, and building/asserting
// against records without each package re-deriving the same boilerplate.
package testutil

import (
	"testing"
	"time"

	"github.com/palantir/witchcraft-go-logging/core"
	"github.com/palantir/witchcraft-go-logging/mdc"
	"github.com/palantir/witchcraft-go-logging/wlog"
)

// Eventually polls condition every 10ms until it returns true or timeout
// elapses, failing the test with message otherwise. Useful for asserting on
// the result of background work such as sinks.AsyncSink's worker goroutine.
func Eventually(t *testing.T, condition func() bool, timeout time.Duration, message string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	if message == "" {
		message = "condition not met within timeout"
	}
	t.Fatal(message)
}

// RecordingSink is a core.Sink that appends every record it receives,
// for tests that want to drive a logger through wlog.Check/Write and
// inspect what reached the sink.
type RecordingSink struct {
	Records []*core.Record
}

func (s *RecordingSink) Enabled(core.Metadata) bool { return true }
func (s *RecordingSink) Log(r *core.Record)         { s.Records = append(s.Records, r) }
func (s *RecordingSink) Flush()                     {}

// WithLogger installs sink as the process-wide logger at maxLevel for the
// duration of fn, then resets wlog's installer state so the next test
// starts clean. Tests using this helper must not run in parallel with each
// other, since wlog's installer is a single process-wide value.
func WithLogger(t *testing.T, sink core.Sink, maxLevel core.LevelFilter, fn func()) {
	t.Helper()
	wlog.Reset()
	defer wlog.Reset()

	if err := wlog.SetLogger(sink); err != nil {
		t.Fatalf("installing test logger: %v", err)
	}
	wlog.SetMaxLevel(maxLevel)
	fn()
}

// WithMDCScope runs fn inside a fresh mdc.Scope, guaranteeing the scope is
// released afterward even if fn fails the test via t.Fatal.
func WithMDCScope(t *testing.T, fn func()) {
	t.Helper()
	guard := mdc.Scope()
	defer guard.Close()
	fn()
}
