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

import (
	"math"
	"sync"
	"sync/atomic"
	"time"
)

const tickIntervalSeconds = 5

// ewma is a single exponentially weighted moving average, modeled on the
// Linux load average: a rate is computed once per tickIntervalSeconds
// window and smoothed into the running average with a half-life-derived
// alpha.
type ewma struct {
	rate        float64
	alpha       float64
	initialized bool
}

func newEWMA(halfLifeMinutes float64) ewma {
	return ewma{alpha: 1 - math.Exp(-tickIntervalSeconds/(60*halfLifeMinutes))}
}

func (e *ewma) tick(countInInterval int64) {
	instantRate := float64(countInInterval) / tickIntervalSeconds
	if e.initialized {
		e.rate += e.alpha * (instantRate - e.rate)
	} else {
		e.rate = instantRate
		e.initialized = true
	}
}

// maxDecaySteps bounds k in decay(k) so math.Pow never has to contend with a
// pathologically large exponent after a very long idle period; beyond this
// many ticks the rate has decayed to zero in any representable float64.
const maxDecaySteps = 1 << 20

func (e *ewma) decay(k int64) {
	if k <= 0 {
		return
	}
	if k > maxDecaySteps {
		e.rate = 0
		return
	}
	e.rate *= math.Pow(1-e.alpha, float64(k))
}

// Meter tracks an event count plus 1-, 5-, and 15-minute EWMA rates, ticked
// lazily (coalesced) rather than by a background timer: a CAS on the tick
// index elects a single advancing goroutine per 5-second interval boundary,
// amortizing the cost across concurrent callers.
type Meter struct {
	clock     Clock
	startTime time.Time

	lastTick  atomic.Int64
	uncounted atomic.Int64

	mu     sync.Mutex
	count  int64
	ewma1  ewma
	ewma5  ewma
	ewma15 ewma
}

// NewMeter returns a meter whose start time is clock.Now().
func NewMeter(clock Clock) *Meter {
	return &Meter{
		clock:     clock,
		startTime: clock.Now(),
		ewma1:     newEWMA(1),
		ewma5:     newEWMA(5),
		ewma15:    newEWMA(15),
	}
}

// Mark records n events at the current time.
func (m *Meter) Mark(n int64) {
	m.tickIfNecessary(m.clock.Now())
	m.uncounted.Add(n)
}

func (m *Meter) tickIfNecessary(now time.Time) {
	newTick := int64(math.Floor(now.Sub(m.startTime).Seconds()))
	oldTick := m.lastTick.Load()
	age := newTick - oldTick
	if age < tickIntervalSeconds {
		return
	}
	newIntervalStart := newTick - age%tickIntervalSeconds
	if !m.lastTick.CompareAndSwap(oldTick, newIntervalStart) {
		// Another goroutine already ticked this interval.
		return
	}

	u := m.uncounted.Swap(0)
	k := age/tickIntervalSeconds - 1

	m.mu.Lock()
	defer m.mu.Unlock()
	m.count += u
	m.ewma1.tick(u)
	m.ewma1.decay(k)
	m.ewma5.tick(u)
	m.ewma5.decay(k)
	m.ewma15.tick(u)
	m.ewma15.decay(k)
}

// Count returns the total number of events marked so far.
func (m *Meter) Count() int64 {
	m.tickIfNecessary(m.clock.Now())
	m.mu.Lock()
	c := m.count
	m.mu.Unlock()
	return c + m.uncounted.Load()
}

// MeanRate returns the average rate in events/second since creation, or 0
// if no events have been marked.
func (m *Meter) MeanRate() float64 {
	count := m.Count()
	if count == 0 {
		return 0
	}
	elapsed := m.clock.Now().Sub(m.startTime).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(count) / elapsed
}

// Rate1 returns the 1-minute EWMA rate in events/second.
func (m *Meter) Rate1() float64 { return m.rate(func() *ewma { return &m.ewma1 }) }

// Rate5 returns the 5-minute EWMA rate in events/second.
func (m *Meter) Rate5() float64 { return m.rate(func() *ewma { return &m.ewma5 }) }

// Rate15 returns the 15-minute EWMA rate in events/second.
func (m *Meter) Rate15() float64 { return m.rate(func() *ewma { return &m.ewma15 }) }

func (m *Meter) rate(pick func() *ewma) float64 {
	m.tickIfNecessary(m.clock.Now())
	m.mu.Lock()
	defer m.mu.Unlock()
	return pick().rate
}
