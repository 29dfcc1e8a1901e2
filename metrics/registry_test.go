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

package metrics_test

import (
	"sync"
	"testing"
	"time"

	"github.com/palantir/witchcraft-go-logging/metrics"
	"github.com/palantir/witchcraft-go-logging/wlogerr"
	"github.com/stretchr/testify/assert"
)

type constGauge int

func (g constGauge) Value() any { return int(g) }

func TestRegistryFirstMetricWins(t *testing.T) {
	registry := metrics.NewMetricRegistry()

	a := registry.Counter(metrics.ID("counter"))
	b := registry.Counter(metrics.ID("counter"))
	a.Add(1)
	assert.Equal(t, int64(1), b.Count())

	registry.Gauge(metrics.ID("gauge"), constGauge(1))
	g := registry.Gauge(metrics.ID("gauge"), constGauge(2))
	assert.Equal(t, 1, g.Value())

	ha := registry.Histogram(metrics.ID("histogram"))
	hb := registry.Histogram(metrics.ID("histogram"))
	ha.Update(0)
	assert.Equal(t, int64(1), hb.Count())

	ma := registry.Meter(metrics.ID("meter"))
	mb := registry.Meter(metrics.ID("meter"))
	ma.Mark(1)
	assert.Equal(t, int64(1), mb.Count())

	ta := registry.Timer(metrics.ID("timer"))
	tb := registry.Timer(metrics.ID("timer"))
	ta.Update(0)
	assert.Equal(t, int64(1), tb.Count())
}

func TestRegistryMetricsReturnsIsolatedSnapshot(t *testing.T) {
	registry := metrics.NewMetricRegistry()
	registry.Counter(metrics.ID("counter"))

	snap := registry.Metrics()
	registry.Timer(metrics.ID("timer"))

	assert.Equal(t, 1, snap.Len())
	snap.Range(func(id metrics.MetricID, kind string, metric any) bool {
		assert.True(t, id.Equal(metrics.ID("counter")))
		assert.Equal(t, "counter", kind)
		return true
	})
}

func TestRegistryTaggedDistinctFromUntagged(t *testing.T) {
	registry := metrics.NewMetricRegistry()

	a := registry.Counter(metrics.ID("counter"))
	b := registry.Counter(metrics.ID("counter").WithTag("foo", "bar"))
	a.Inc()
	assert.Equal(t, int64(0), b.Count())
}

func TestRegistryKindMismatchPanics(t *testing.T) {
	registry := metrics.NewMetricRegistry()
	registry.Counter(metrics.ID("ambiguous"))

	assert.PanicsWithValue(t, &wlogerr.KindMismatchError{ID: "ambiguous", Expected: "meter", Actual: "counter"}, func() {
		registry.Meter(metrics.ID("ambiguous"))
	})
}

func TestRegistryRemove(t *testing.T) {
	registry := metrics.NewMetricRegistry()
	registry.Counter(metrics.ID("counter"))
	assert.Equal(t, 1, registry.Metrics().Len())

	registry.Remove(metrics.ID("counter"))
	assert.Equal(t, 0, registry.Metrics().Len())
}

func TestRegistryConcurrentFirstAccessConverges(t *testing.T) {
	registry := metrics.NewMetricRegistry()

	const goroutines = 50
	counters := make([]*metrics.Counter, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		i := i
		go func() {
			defer wg.Done()
			counters[i] = registry.Counter(metrics.ID("shared"))
		}()
	}
	wg.Wait()

	first := counters[0]
	for _, c := range counters[1:] {
		assert.Same(t, first, c)
	}
}

func TestRegistryTimerTime(t *testing.T) {
	registry := metrics.NewMetricRegistry()
	tm := registry.Timer(metrics.ID("op"))

	stop := tm.Time()
	time.Sleep(10 * time.Millisecond)
	stop()

	assert.Equal(t, int64(1), tm.Count())
	assert.GreaterOrEqual(t, tm.Snapshot().Max(), int64(10*time.Millisecond))
}
