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

// Package metricsprom bridges a metrics.MetricRegistry to
// prometheus.Collector, so a registry can be plugged straight into an
// existing Prometheus /metrics handler instead of requiring its own export
// loop.
package metricsprom

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/palantir/witchcraft-go-logging/metrics"
)

// quantiles are the snapshot quantiles exported for every Histogram and
// Timer, matching the Dropwizard/Prometheus convention of p50/p75/p95/p99.
var quantiles = []float64{0.5, 0.75, 0.95, 0.99}

// Collector adapts a *metrics.MetricRegistry to prometheus.Collector.
// Registering one against a prometheus.Registry causes every metric
// currently in the backing MetricRegistry to be scraped on demand; metrics
// registered after Collector is created are picked up automatically, since
// Collect re-reads the registry's contents on every call.
type Collector struct {
	registry  *metrics.MetricRegistry
	namespace string
}

// New returns a Collector over registry. namespace, if non-empty, is
// prepended to every exported metric name as "namespace_name".
func New(registry *metrics.MetricRegistry, namespace string) *Collector {
	return &Collector{registry: registry, namespace: namespace}
}

// Describe is intentionally a no-op: the registry's metric set is dynamic
// (metrics are created on first access), so this collector is unchecked,
// matching how dynamically-labeled Prometheus collectors commonly opt out
// of upfront description.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {}

// Collect renders every metric currently in the registry as one or more
// prometheus.Metric values.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.registry.Metrics().Range(func(id metrics.MetricID, kind string, metric any) bool {
		name := c.metricName(id.Name)
		labelNames, labelValues := labelPairs(id)

		switch kind {
		case "counter":
			ch <- prometheus.MustNewConstMetric(
				prometheus.NewDesc(name+"_total", "Counter "+id.Name, labelNames, nil),
				prometheus.CounterValue,
				float64(metric.(*metrics.Counter).Count()),
				labelValues...,
			)
		case "gauge":
			if v, ok := numericValue(metric.(metrics.Gauge).Value()); ok {
				ch <- prometheus.MustNewConstMetric(
					prometheus.NewDesc(name, "Gauge "+id.Name, labelNames, nil),
					prometheus.GaugeValue,
					v,
					labelValues...,
				)
			}
		case "meter":
			collectMeter(ch, name, id.Name, labelNames, labelValues, metric.(*metrics.Meter))
		case "histogram":
			collectSnapshot(ch, name, id.Name, labelNames, labelValues, metric.(*metrics.Histogram).Snapshot(), metric.(*metrics.Histogram).Count(), 1)
		case "timer":
			tm := metric.(*metrics.Timer)
			collectMeter(ch, name+"_rate", id.Name, labelNames, labelValues, tm.Meter())
			collectSnapshot(ch, name+"_seconds", id.Name, labelNames, labelValues, tm.Snapshot(), tm.Count(), 1e-9)
		}
		return true
	})
}

func collectMeter(ch chan<- prometheus.Metric, name, doc string, labelNames, labelValues []string, m *metrics.Meter) {
	ch <- prometheus.MustNewConstMetric(
		prometheus.NewDesc(name+"_rate1m", "1-minute EWMA rate for "+doc, labelNames, nil),
		prometheus.GaugeValue, m.Rate1(), labelValues...,
	)
	ch <- prometheus.MustNewConstMetric(
		prometheus.NewDesc(name+"_rate5m", "5-minute EWMA rate for "+doc, labelNames, nil),
		prometheus.GaugeValue, m.Rate5(), labelValues...,
	)
	ch <- prometheus.MustNewConstMetric(
		prometheus.NewDesc(name+"_rate15m", "15-minute EWMA rate for "+doc, labelNames, nil),
		prometheus.GaugeValue, m.Rate15(), labelValues...,
	)
}

// collectSnapshot exports a reservoir snapshot as a Prometheus summary,
// scale converts the reservoir's int64 nanosecond/count units into the
// unit Prometheus should see (1 for histograms, 1e-9 for timers in
// seconds).
func collectSnapshot(ch chan<- prometheus.Metric, name, doc string, labelNames, labelValues []string, snap *metrics.Snapshot, count int64, scale float64) {
	values := make(map[float64]float64, len(quantiles))
	for _, q := range quantiles {
		values[q] = snap.Value(q) * scale
	}
	ch <- prometheus.MustNewConstSummary(
		prometheus.NewDesc(name, "Summary for "+doc, labelNames, nil),
		uint64(count),
		snap.Mean()*scale*float64(count),
		values,
		labelValues...,
	)
}

func (c *Collector) metricName(name string) string {
	sanitized := sanitize(name)
	if c.namespace == "" {
		return sanitized
	}
	return sanitize(c.namespace) + "_" + sanitized
}

// sanitize replaces characters Prometheus metric names disallow with
// underscores; metric ids in this library are free-form strings, so
// anything outside [a-zA-Z0-9_:] needs mapping.
func sanitize(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9', b == '_', b == ':':
			out[i] = b
		default:
			out[i] = '_'
		}
	}
	return string(out)
}

func labelPairs(id metrics.MetricID) (names, values []string) {
	if len(id.Tags) == 0 {
		return nil, nil
	}
	names = make([]string, 0, len(id.Tags))
	for k := range id.Tags {
		names = append(names, k)
	}
	// sort for deterministic Desc identity across calls with the same tag set
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j-1] > names[j]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
	values = make([]string, len(names))
	for i, n := range names {
		values[i] = id.Tags[n]
	}
	return names, values
}

// numericValue converts a Gauge's Value() result to float64 if it is a
// recognized numeric type. Non-numeric gauge values (strings, structs) have
// no Prometheus representation and are skipped.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
