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
	"sync"

	"github.com/palantir/witchcraft-go-logging/wlogerr"
	"golang.org/x/sync/singleflight"
)

type registryEntry struct {
	id     MetricID
	kind   string
	metric any
}

// MetricRegistry is a concurrent collection of named metrics. The first
// caller to ask for a given MetricID wins: later callers requesting the
// same ID as a different kind get a panic rather than a silently wrong
// metric, and callers requesting it as the same kind get the original
// instance back.
//
// A single mutex guards the backing map, matching the reference
// implementation. A singleflight.Group sits in front of it so that N
// goroutines racing to create the same new metric collapse into one
// constructor call and one map insert instead of serializing on the mutex
// one at a time.
type MetricRegistry struct {
	mu      sync.RWMutex
	sf      singleflight.Group
	metrics map[string]registryEntry
}

// NewMetricRegistry returns a new, empty registry.
func NewMetricRegistry() *MetricRegistry {
	return &MetricRegistry{metrics: make(map[string]registryEntry)}
}

func (r *MetricRegistry) getOrCreate(id MetricID, kind string, create func() any) any {
	key := id.key()

	r.mu.RLock()
	existing, ok := r.metrics[key]
	r.mu.RUnlock()
	if ok {
		return checkKind(existing, kind)
	}

	v, _, _ := r.sf.Do(key, func() (interface{}, error) {
		r.mu.Lock()
		defer r.mu.Unlock()
		if existing, ok := r.metrics[key]; ok {
			return existing, nil
		}
		entry := registryEntry{id: id, kind: kind, metric: create()}
		r.metrics[key] = entry
		return entry, nil
	})
	return checkKind(v.(registryEntry), kind)
}

func checkKind(entry registryEntry, wantKind string) any {
	if entry.kind != wantKind {
		panic(&wlogerr.KindMismatchError{ID: entry.id.key(), Expected: wantKind, Actual: entry.kind})
	}
	return entry.metric
}

// CounterWith returns the counter registered under id, using makeCounter to
// construct it if this is the first request for id.
func (r *MetricRegistry) CounterWith(id MetricID, makeCounter func() *Counter) *Counter {
	return r.getOrCreate(id, "counter", func() any { return makeCounter() }).(*Counter)
}

// Counter returns the counter registered under id, creating a
// zero-valued one if absent.
func (r *MetricRegistry) Counter(id MetricID) *Counter {
	return r.CounterWith(id, NewCounter)
}

// MeterWith returns the meter registered under id, using makeMeter to
// construct it if this is the first request for id.
func (r *MetricRegistry) MeterWith(id MetricID, makeMeter func() *Meter) *Meter {
	return r.getOrCreate(id, "meter", func() any { return makeMeter() }).(*Meter)
}

// Meter returns the meter registered under id, creating one backed by the
// system clock if absent.
func (r *MetricRegistry) Meter(id MetricID) *Meter {
	return r.MeterWith(id, func() *Meter { return NewMeter(SystemClock) })
}

// Gauge returns the gauge registered under id, registering gauge as the
// value if this is the first request for id.
func (r *MetricRegistry) Gauge(id MetricID, gauge Gauge) Gauge {
	return r.getOrCreate(id, "gauge", func() any { return gauge }).(Gauge)
}

// HistogramWith returns the histogram registered under id, using
// makeHistogram to construct it if this is the first request for id.
func (r *MetricRegistry) HistogramWith(id MetricID, makeHistogram func() *Histogram) *Histogram {
	return r.getOrCreate(id, "histogram", func() any { return makeHistogram() }).(*Histogram)
}

// Histogram returns the histogram registered under id, creating one backed
// by a fresh ExponentiallyDecayingReservoir if absent.
func (r *MetricRegistry) Histogram(id MetricID) *Histogram {
	return r.HistogramWith(id, func() *Histogram { return NewHistogram(NewExponentiallyDecayingReservoir()) })
}

// TimerWith returns the timer registered under id, using makeTimer to
// construct it if this is the first request for id.
func (r *MetricRegistry) TimerWith(id MetricID, makeTimer func() *Timer) *Timer {
	return r.getOrCreate(id, "timer", func() any { return makeTimer() }).(*Timer)
}

// Timer returns the timer registered under id, creating one backed by the
// system clock and a fresh ExponentiallyDecayingReservoir if absent.
func (r *MetricRegistry) Timer(id MetricID) *Timer {
	return r.TimerWith(id, func() *Timer { return NewTimer(SystemClock, NewExponentiallyDecayingReservoir()) })
}

// Remove deletes the metric registered under id, if any.
func (r *MetricRegistry) Remove(id MetricID) {
	r.mu.Lock()
	delete(r.metrics, id.key())
	r.mu.Unlock()
}

// Metrics returns a point-in-time, isolated view of the registry's
// contents: later registrations or removals are not reflected in it.
func (r *MetricRegistry) Metrics() Metrics {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make(map[string]registryEntry, len(r.metrics))
	for k, v := range r.metrics {
		snapshot[k] = v
	}
	return Metrics{entries: snapshot}
}

// Metrics is an immutable snapshot of a registry's contents.
type Metrics struct {
	entries map[string]registryEntry
}

// Len returns the number of metrics in the snapshot.
func (m Metrics) Len() int { return len(m.entries) }

// Range calls fn for every (id, kind, metric) triple in the snapshot,
// stopping early if fn returns false. kind is one of "counter", "meter",
// "gauge", "histogram", or "timer".
func (m Metrics) Range(fn func(id MetricID, kind string, metric any) bool) {
	for _, e := range m.entries {
		if !fn(e.id, e.kind, e.metric) {
			return
		}
	}
}
