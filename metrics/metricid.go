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
	"sort"
	"strings"
)

// MetricID identifies a metric by name plus an (unordered, for equality
// purposes) set of tags. Two IDs built by inserting the same tags in a
// different order compare equal.
type MetricID struct {
	Name string
	Tags map[string]string
}

// NewMetricID returns an id with no tags.
func NewMetricID(name string) MetricID {
	return MetricID{Name: name, Tags: map[string]string{}}
}

// ID is a short alias for NewMetricID, convenient at registry call sites
// that only need a bare name: registry.Counter(metrics.ID("requests")).
func ID(name string) MetricID {
	return NewMetricID(name)
}

// WithTag returns a copy of id with key=value added (or overwritten).
func (id MetricID) WithTag(key, value string) MetricID {
	tags := make(map[string]string, len(id.Tags)+1)
	for k, v := range id.Tags {
		tags[k] = v
	}
	tags[key] = value
	return MetricID{Name: id.Name, Tags: tags}
}

// key is the canonical string form used as the registry's internal map key:
// name followed by tags in sorted order, so insertion order never affects
// equality.
func (id MetricID) key() string {
	if len(id.Tags) == 0 {
		return id.Name
	}
	keys := make([]string, 0, len(id.Tags))
	for k := range id.Tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(id.Name)
	for _, k := range keys {
		b.WriteByte('\x1f')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(id.Tags[k])
	}
	return b.String()
}

// Equal reports whether id and other identify the same metric.
func (id MetricID) Equal(other MetricID) bool {
	return id.key() == other.key()
}
