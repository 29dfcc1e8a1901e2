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

package metricsprom_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palantir/witchcraft-go-logging/metrics"
	"github.com/palantir/witchcraft-go-logging/metricsprom"
)

type constGauge float64

func (g constGauge) Value() any { return float64(g) }

func TestCollectorExportsCounter(t *testing.T) {
	registry := metrics.NewMetricRegistry()
	registry.Counter(metrics.ID("requests")).Add(3)

	c := metricsprom.New(registry, "app")
	prom := prometheus.NewRegistry()
	require.NoError(t, prom.Register(c))

	families, err := prom.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "app_requests_total", families[0].GetName())
	assert.Equal(t, 3.0, families[0].Metric[0].GetCounter().GetValue())
}

func TestCollectorExportsGauge(t *testing.T) {
	registry := metrics.NewMetricRegistry()
	registry.Gauge(metrics.ID("queue_depth"), constGauge(42))

	c := metricsprom.New(registry, "")
	prom := prometheus.NewRegistry()
	require.NoError(t, prom.Register(c))

	families, err := prom.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "queue_depth", families[0].GetName())
	assert.Equal(t, 42.0, families[0].Metric[0].GetGauge().GetValue())
}

func TestCollectorSkipsNonNumericGauge(t *testing.T) {
	registry := metrics.NewMetricRegistry()
	registry.Gauge(metrics.ID("state"), metrics.FuncGauge(func() any { return "up" }))

	c := metricsprom.New(registry, "")
	prom := prometheus.NewRegistry()
	require.NoError(t, prom.Register(c))

	families, err := prom.Gather()
	require.NoError(t, err)
	assert.Empty(t, families)
}

func TestCollectorExportsHistogramSummary(t *testing.T) {
	registry := metrics.NewMetricRegistry()
	h := registry.Histogram(metrics.ID("latency"))
	for i := int64(0); i < 10; i++ {
		h.Update(i)
	}

	c := metricsprom.New(registry, "")
	prom := prometheus.NewRegistry()
	require.NoError(t, prom.Register(c))

	count, err := testutil.GatherAndCount(prom, "latency")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCollectorExportsTaggedMetricLabels(t *testing.T) {
	registry := metrics.NewMetricRegistry()
	registry.Counter(metrics.ID("requests").WithTag("route", "/health")).Add(1)

	c := metricsprom.New(registry, "")
	prom := prometheus.NewRegistry()
	require.NoError(t, prom.Register(c))

	families, err := prom.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	labels := families[0].Metric[0].GetLabel()
	require.Len(t, labels, 1)
	assert.Equal(t, "route", labels[0].GetName())
	assert.Equal(t, "/health", labels[0].GetValue())
}

func TestCollectorSanitizesMetricNames(t *testing.T) {
	registry := metrics.NewMetricRegistry()
	registry.Counter(metrics.ID("http.requests")).Inc()

	c := metricsprom.New(registry, "")
	prom := prometheus.NewRegistry()
	require.NoError(t, prom.Register(c))

	families, err := prom.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.False(t, strings.ContainsAny(families[0].GetName(), "."))
}
