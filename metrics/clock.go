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

// Package metrics implements the Metrics Registry: Counter, Gauge,
// Histogram, Meter, Timer, an exponentially decaying reservoir, and the
// concurrent MetricRegistry that owns them.
package metrics

import (
	"sync"
	"time"
)

// Clock is an injectable producer of monotonic instants. All time-dependent
// components (Meter, Timer, Reservoir) consult a Clock rather than the OS
// directly, so tests can drive time deterministically.
type Clock interface {
	Now() time.Time
}

// systemClock is the process-wide default Clock, backed by time.Now.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the shared real-time Clock.
var SystemClock Clock = systemClock{}

// TestClock is a Clock that only advances under explicit Advance calls,
// for deterministic tests of Meter/Timer/Reservoir behavior.
type TestClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewTestClock returns a TestClock starting at now.
func NewTestClock(now time.Time) *TestClock {
	return &TestClock{now: now}
}

func (c *TestClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *TestClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
