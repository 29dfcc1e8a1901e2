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

import "time"

// Timer is a combined Meter and Histogram measuring the rate and
// distribution of durations, stored internally in nanoseconds.
type Timer struct {
	clock     Clock
	meter     *Meter
	histogram *Histogram
}

// NewTimer returns a timer whose rate tracking and elapsed-time
// measurements use clock and whose duration distribution is backed by
// reservoir.
func NewTimer(clock Clock, reservoir Reservoir) *Timer {
	return &Timer{
		clock:     clock,
		meter:     NewMeter(clock),
		histogram: NewHistogram(reservoir),
	}
}

// Update records a single duration observation.
func (t *Timer) Update(d time.Duration) {
	if d < 0 {
		d = 0
	}
	t.histogram.Update(d.Nanoseconds())
	t.meter.Mark(1)
}

// Time starts timing a unit of work and returns a function that records
// the elapsed duration when called. Both endpoints are read from the
// timer's own clock rather than the OS clock, so a Timer built on a
// TestClock produces deterministic elapsed durations. Go has no
// destructors, so callers must invoke the returned function themselves,
// typically via defer:
//
//	stop := timer.Time()
//	defer stop()
func (t *Timer) Time() func() {
	start := t.clock.Now()
	return func() {
		t.Update(t.clock.Now().Sub(start))
	}
}

// Meter returns the timer's underlying rate meter, for consumers (such as
// metricsprom) that want to export it alongside the duration distribution.
func (t *Timer) Meter() *Meter { return t.meter }

// Count returns the total number of durations recorded.
func (t *Timer) Count() int64 { return t.histogram.Count() }

// Snapshot returns a point-in-time view of the duration distribution, in
// nanoseconds.
func (t *Timer) Snapshot() *Snapshot { return t.histogram.Snapshot() }

// MeanRate returns the average rate of updates, in events/second.
func (t *Timer) MeanRate() float64 { return t.meter.MeanRate() }

// Rate1 returns the 1-minute EWMA rate of updates, in events/second.
func (t *Timer) Rate1() float64 { return t.meter.Rate1() }

// Rate5 returns the 5-minute EWMA rate of updates, in events/second.
func (t *Timer) Rate5() float64 { return t.meter.Rate5() }

// Rate15 returns the 15-minute EWMA rate of updates, in events/second.
func (t *Timer) Rate15() float64 { return t.meter.Rate15() }
