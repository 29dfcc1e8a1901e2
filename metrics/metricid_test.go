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

	"github.com/stretchr/testify/assert"

	"github.com/palantir/witchcraft-go-logging/metrics"
)

func TestMetricIDEqualIgnoresTagInsertionOrder(t *testing.T) {
	a := metrics.ID("requests").WithTag("route", "/a").WithTag("method", "GET")
	b := metrics.ID("requests").WithTag("method", "GET").WithTag("route", "/a")

	assert.True(t, a.Equal(b))
}

func TestMetricIDNotEqualOnDifferentTagValue(t *testing.T) {
	a := metrics.ID("requests").WithTag("route", "/a")
	b := metrics.ID("requests").WithTag("route", "/b")

	assert.False(t, a.Equal(b))
}

func TestMetricIDWithTagDoesNotMutateOriginal(t *testing.T) {
	base := metrics.ID("requests")
	tagged := base.WithTag("route", "/a")

	assert.True(t, base.Equal(metrics.ID("requests")))
	assert.False(t, base.Equal(tagged))
}

func TestMetricIDBareNameHasNoTags(t *testing.T) {
	id := metrics.ID("requests")
	assert.Empty(t, id.Tags)
}
