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

package mdc

// Bind captures the calling goroutine's current MDC and returns a wrapper
// around fn that, on every invocation — including invocations on a
// different goroutine, such as one pulled from a worker pool — installs the
// captured snapshot before calling fn and restores whatever MDC was active
// beforehand immediately after fn returns.
//
// This is the Go rendition of the spec's future-polling bind() adapter:
// Rust's polled futures expose discrete suspension points the adapter can
// hook on every resume/yield, while a Go goroutine has none, so Bind instead
// hooks entry and exit of the wrapped call, which is the closest faithful
// analogue for propagating context across a cooperative hand-off (e.g. into
// a goroutine spawned to continue work started under the caller's MDC).
func Bind(fn func()) func() {
	snap := TakeSnapshot()
	return func() {
		captured := Snapshot{
			Safe:   Map{b: snap.Safe.b.retain()},
			Unsafe: Map{b: snap.Unsafe.b.retain()},
		}
		prev := Set(captured)
		defer func() {
			restored := Set(prev)
			restored.release()
		}()
		fn()
	}
}
