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

// Package wlog is the process-wide Structured Logging Facade: a one-shot
// sink installer, an atomic max-level gate, and the Check/Write emission
// fast path.
package wlog

import (
	"sync/atomic"

	"github.com/palantir/witchcraft-go-logging/core"
	"github.com/palantir/witchcraft-go-logging/wlogerr"
)

type sinkBox struct {
	sink core.Sink
}

var (
	installed int32
	sinkPtr   atomic.Pointer[sinkBox]
	maxLevel  atomic.Int32
)

// SetLogger installs sink as the process-wide sink. It may be called at
// most once for the lifetime of the process; a second call returns
// wlogerr.ErrAlreadyInstalled and leaves the first sink active.
func SetLogger(sink core.Sink) error {
	if !atomic.CompareAndSwapInt32(&installed, 0, 1) {
		return wlogerr.ErrAlreadyInstalled
	}
	sinkPtr.Store(&sinkBox{sink: sink})
	return nil
}

// Logger returns the installed sink, or a no-op sink (Enabled always false)
// if none has been installed yet. It is constant-time and safe to call from
// any goroutine.
func Logger() core.Sink {
	b := sinkPtr.Load()
	if b == nil {
		return core.NopSink{}
	}
	return b.sink
}

// SetMaxLevel stores f as the process-wide fast-path gate, consulted by
// every emission call site before any parameter expression is evaluated.
func SetMaxLevel(f core.LevelFilter) {
	maxLevel.Store(int32(f))
}

// MaxLevel returns the current fast-path gate.
func MaxLevel() core.LevelFilter {
	return core.LevelFilter(maxLevel.Load())
}

// Reset un-installs the sink and resets the max level to Off. It exists
// solely for tests that need a clean process-wide state between cases; a
// production program should never call it, since the spec's installer is
// documented as exactly-once.
func Reset() {
	atomic.StoreInt32(&installed, 0)
	sinkPtr.Store(nil)
	maxLevel.Store(0)
}
