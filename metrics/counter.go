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

package metrics

import "sync/atomic"

// Counter is a lock-free signed 64-bit counter. Add wraps on overflow rather
// than panicking; no ordering is promised across distinct counters.
type Counter struct {
	value atomic.Int64
}

// NewCounter returns a counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Add adds n to the counter, wrapping on overflow.
func (c *Counter) Add(n int64) {
	c.value.Add(n)
}

// Inc increments the counter by one.
func (c *Counter) Inc() { c.Add(1) }

// Dec decrements the counter by one.
func (c *Counter) Dec() { c.Add(-1) }

// Count returns the current value.
func (c *Counter) Count() int64 {
	return c.value.Load()
}

// Clear resets the counter to zero.
func (c *Counter) Clear() {
	c.value.Store(0)
}
