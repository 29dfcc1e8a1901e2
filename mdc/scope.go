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

// Guard restores the MDC captured when Scope was called. Close is
// idempotent; the zero value has nothing to restore.
type Guard struct {
	prev   Snapshot
	closed bool
}

// Scope captures the calling goroutine's current MDC and returns a guard
// that restores it on Close, regardless of what the MDC is mutated to in
// between. Typical use:
//
//	defer mdc.Scope().Close()
//	mdc.InsertSafe("requestId", id)
func Scope() *Guard {
	return &Guard{prev: TakeSnapshot()}
}

// Close restores the MDC to the state captured by Scope.
func (g *Guard) Close() {
	if g.closed {
		return
	}
	g.closed = true
	cur := Set(g.prev)
	cur.release()
}
