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

// Histogram tracks the distribution of a stream of int64 values, recording
// a running count alongside a statistically representative Reservoir
// sample.
type Histogram struct {
	count     atomic.Int64
	reservoir Reservoir
}

// NewHistogram returns a histogram backed by reservoir. Passing a fresh
// ExponentiallyDecayingReservoir is the common case.
func NewHistogram(reservoir Reservoir) *Histogram {
	return &Histogram{reservoir: reservoir}
}

// Update records a new observation.
func (h *Histogram) Update(value int64) {
	h.count.Add(1)
	h.reservoir.Update(value)
}

// Count returns the total number of observations recorded.
func (h *Histogram) Count() int64 {
	return h.count.Load()
}

// Snapshot returns a point-in-time view of the underlying reservoir.
func (h *Histogram) Snapshot() *Snapshot {
	return h.reservoir.Snapshot()
}
