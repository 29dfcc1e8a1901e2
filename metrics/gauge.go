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

// Gauge is a polymorphic producer of a serializable value, invoked outside
// any registry lock. FuncGauge satisfies it for any plain function.
//
// The reference implementation downcasts Gauge values via a sealed
// type-identity token because Rust's trait objects have no built-in safe
// downcast. Go's interfaces already provide one for free: a plain type
// assertion (g.(T), or the GaugeAs generic helper below) is exactly as safe
// and requires no sealing scaffolding, so that's what this package uses.
type Gauge interface {
	// Value returns the current value, which must be serializable by
	// whatever renderer ultimately consumes it.
	Value() any
}

// FuncGauge adapts a plain function to Gauge.
type FuncGauge func() any

func (g FuncGauge) Value() any { return g() }

// GaugeAs attempts to recover a concrete Gauge implementation from the
// interface value, the Go analogue of the spec's sealed downcast.
func GaugeAs[T Gauge](g Gauge) (T, bool) {
	t, ok := g.(T)
	return t, ok
}
