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
	"testing"

	"github.com/palantir/witchcraft-go-logging/metrics"
	"github.com/stretchr/testify/assert"
)

func TestExponentiallyDecayingReservoirBasic(t *testing.T) {
	r := metrics.NewExponentiallyDecayingReservoir()

	for i := 0; i < 15; i++ {
		r.Update(0)
	}
	for i := 0; i < 5; i++ {
		r.Update(5)
	}

	snap := r.Snapshot()
	assert.Equal(t, 0.0, snap.Value(0.5))
	assert.Equal(t, 5.0, snap.Value(0.8))
	assert.Equal(t, int64(5), snap.Max())
	assert.Equal(t, int64(0), snap.Min())
	assert.Equal(t, 1.25, snap.Mean())
	withinTolerance(t, 2.165, snap.StdDev(), 0.0001, "stddev")
	assert.Equal(t, 20, snap.Size())
}

func TestReservoirEmptySnapshot(t *testing.T) {
	r := metrics.NewExponentiallyDecayingReservoir()
	snap := r.Snapshot()

	assert.Equal(t, 0, snap.Size())
	assert.Equal(t, int64(0), snap.Max())
	assert.Equal(t, int64(0), snap.Min())
	assert.Equal(t, 0.0, snap.Mean())
	assert.Equal(t, 0.0, snap.StdDev())
	assert.Equal(t, 0.0, snap.Value(0.5))
}

func TestReservoirExemplarProvider(t *testing.T) {
	type traceExemplar string

	calls := 0
	r := metrics.NewReservoirBuilder().
		ExemplarProvider(func() (metrics.Exemplar, bool) {
			calls++
			return traceExemplar("trace-1"), true
		}).
		Build()

	r.Update(42)

	snap := r.Snapshot()
	assert.Equal(t, 1, calls)

	var seen []int64
	snap.Exemplars(func(value int64, exemplar metrics.Exemplar) bool {
		seen = append(seen, value)
		te, ok := metrics.ExemplarAs[traceExemplar](exemplar)
		assert.True(t, ok)
		assert.Equal(t, traceExemplar("trace-1"), te)
		return true
	})
	assert.Equal(t, []int64{42}, seen)
}

func TestReservoirRespectsCapacity(t *testing.T) {
	r := metrics.NewExponentiallyDecayingReservoir()
	for i := int64(0); i < 2000; i++ {
		r.Update(i)
	}
	snap := r.Snapshot()
	assert.LessOrEqual(t, snap.Size(), 1028)
}
