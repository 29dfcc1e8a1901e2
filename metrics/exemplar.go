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

// Exemplar is an opaque contextual token optionally attached to an
// observation retained in a Reservoir, e.g. a trace id that produced an
// outlier latency sample. It carries no required methods; concrete
// implementations are recovered with ExemplarAs, Go's type-assertion
// analogue of the spec's sealed downcast (see Gauge for the same note).
type Exemplar interface{}

// ExemplarAs attempts to recover a concrete Exemplar implementation.
func ExemplarAs[T Exemplar](e Exemplar) (T, bool) {
	t, ok := e.(T)
	return t, ok
}

// ExemplarProvider is a thread-safe producer of an optional Exemplar,
// consulted by a Reservoir on every update.
type ExemplarProvider func() (Exemplar, bool)
