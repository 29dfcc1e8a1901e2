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
	"math/rand"
	"sync"
	"time"
)

// Reservoir is a statistically representative sample of a stream of
// measurements, backing a Histogram or Timer.
type Reservoir interface {
	Update(value int64)
	Snapshot() *Snapshot
}

const (
	reservoirSize        = 1028
	reservoirAlpha       = 0.015
	reservoirRescaleEach = time.Hour
)

type weightedSample struct {
	value    int64
	weight   float64
	exemplar Exemplar
}

// ExponentiallyDecayingReservoir is a Reservoir that weights recent
// observations more heavily than old ones using the forward-decaying
// priority sampling scheme of Cormode & Johnson, "Facilitating Time Series
// Analysis by Release of Deterministic Compressed Data" - the same
// algorithm Dropwizard Metrics' ExponentiallyDecayingReservoir implements.
// Every sample is assigned a priority of exp(alpha*t)/u for a fresh random
// u, so newer samples are, in expectation, more likely to survive eviction
// once the reservoir fills; priorities are periodically rescaled so very
// old samples eventually decay out even under a constant-rate stream.
type ExponentiallyDecayingReservoir struct {
	clock            Clock
	exemplarProvider ExemplarProvider

	mu            sync.Mutex
	values        map[float64]weightedSample
	count         int64
	startTime     time.Time
	nextScaleTime time.Time
}

// ReservoirBuilder configures an ExponentiallyDecayingReservoir.
type ReservoirBuilder struct {
	clock            Clock
	exemplarProvider ExemplarProvider
}

// NewReservoirBuilder returns a builder defaulting to SystemClock and no
// exemplar provider.
func NewReservoirBuilder() *ReservoirBuilder {
	return &ReservoirBuilder{clock: SystemClock}
}

// Clock sets the reservoir's time source.
func (b *ReservoirBuilder) Clock(clock Clock) *ReservoirBuilder {
	b.clock = clock
	return b
}

// ExemplarProvider sets the function consulted on every update to attach an
// optional Exemplar to the stored sample.
func (b *ReservoirBuilder) ExemplarProvider(p ExemplarProvider) *ReservoirBuilder {
	b.exemplarProvider = p
	return b
}

// Build constructs the reservoir.
func (b *ReservoirBuilder) Build() *ExponentiallyDecayingReservoir {
	clock := b.clock
	if clock == nil {
		clock = SystemClock
	}
	now := clock.Now()
	return &ExponentiallyDecayingReservoir{
		clock:            clock,
		exemplarProvider: b.exemplarProvider,
		values:           make(map[float64]weightedSample),
		startTime:        now,
		nextScaleTime:    now.Add(reservoirRescaleEach),
	}
}

// NewExponentiallyDecayingReservoir returns a reservoir using the system
// clock and no exemplar provider.
func NewExponentiallyDecayingReservoir() *ExponentiallyDecayingReservoir {
	return NewReservoirBuilder().Build()
}

func weight(secondsSinceStart float64) float64 {
	return math.Exp(reservoirAlpha * secondsSinceStart)
}

// Update records a new observation, possibly evicting the lowest-priority
// existing sample once the reservoir is full.
func (r *ExponentiallyDecayingReservoir) Update(value int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	r.rescaleIfNeededLocked(now)

	var exemplar Exemplar
	if r.exemplarProvider != nil {
		exemplar, _ = r.exemplarProvider()
	}

	itemWeight := weight(now.Sub(r.startTime).Seconds())
	priority := itemWeight / rand.Float64()
	sample := weightedSample{value: value, weight: itemWeight, exemplar: exemplar}

	r.count++
	if r.count <= reservoirSize {
		r.values[priority] = sample
		return
	}

	first := r.firstKeyLocked()
	if first < priority {
		if _, exists := r.values[priority]; !exists {
			r.values[priority] = sample
			delete(r.values, first)
		}
	}
}

func (r *ExponentiallyDecayingReservoir) firstKeyLocked() float64 {
	first := math.Inf(1)
	for k := range r.values {
		if k < first {
			first = k
		}
	}
	return first
}

func (r *ExponentiallyDecayingReservoir) rescaleIfNeededLocked(now time.Time) {
	if now.Before(r.nextScaleTime) {
		return
	}
	r.rescaleLocked(now)
}

// rescaleLocked re-keys every stored sample against a fresh start time so
// priorities computed hours ago don't dominate forever; count is left
// untouched, matching the reference implementation's behavior of only
// resetting the clock, not the logical sample count.
func (r *ExponentiallyDecayingReservoir) rescaleLocked(now time.Time) {
	oldStartTime := r.startTime
	r.startTime = now
	r.nextScaleTime = now.Add(reservoirRescaleEach)

	factor := math.Exp(-reservoirAlpha * now.Sub(oldStartTime).Seconds())
	rescaled := make(map[float64]weightedSample, len(r.values))
	for k, sample := range r.values {
		rescaled[k*factor] = weightedSample{
			value:    sample.value,
			weight:   sample.weight * factor,
			exemplar: sample.exemplar,
		}
	}
	r.values = rescaled
}

// Snapshot returns a point-in-time, immutable view of the reservoir's
// current samples.
func (r *ExponentiallyDecayingReservoir) Snapshot() *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	samples := make([]weightedSample, 0, len(r.values))
	for _, s := range r.values {
		samples = append(samples, s)
	}
	return newSnapshot(samples)
}
