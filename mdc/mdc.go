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

// Package mdc implements the Mapped Diagnostic Context: a per-goroutine pair
// of safe/unsafe parameter maps that sinks may consult when rendering a
// record. Go has no thread-local storage, so the context is keyed by the
// calling goroutine's numeric id (see goroutine.go) in a concurrent map,
// rather than threaded explicitly through a context.Context, to stay
// faithful to the spec's "global accessor" semantics.
package mdc

import (
	"encoding/json"
	"sync"

	"github.com/palantir/witchcraft-go-logging/core"
	"github.com/palantir/witchcraft-go-logging/wlogerr"
)

type state struct {
	safe   *box
	unsafe *box
}

var store sync.Map // uint64 goroutine id -> *state

func current() *state {
	id := goroutineID()
	if v, ok := store.Load(id); ok {
		return v.(*state)
	}
	st := &state{safe: newBox(), unsafe: newBox()}
	actual, _ := store.LoadOrStore(id, st)
	return actual.(*state)
}

// Map is an immutable, cheaply-shared view of one side (safe or unsafe) of
// an MDC snapshot.
type Map struct {
	b *box
}

// Get returns the param stored under key, if any.
func (m Map) Get(key string) (core.Param, bool) {
	if m.b == nil {
		return core.Param{}, false
	}
	p, ok := m.b.m[key]
	return p, ok
}

// Len returns the number of entries in the map.
func (m Map) Len() int {
	if m.b == nil {
		return 0
	}
	return len(m.b.m)
}

// Range calls fn for every entry, stopping early if fn returns false. Keys
// prefixed with a NUL byte (sentinel keys) are included; callers that want
// to route them separately should check the key themselves.
func (m Map) Range(fn func(key string, p core.Param) bool) {
	if m.b == nil {
		return
	}
	for k, v := range m.b.m {
		if !fn(k, v) {
			return
		}
	}
}

func (m Map) release() {
	if m.b != nil {
		m.b.release()
	}
}

// Snapshot is a structurally-shared clone of both MDC maps, cheap to
// produce: it shares backing storage with the live context until that
// context (or another holder of the same snapshot) mutates a map, at which
// point only the mutator clones.
type Snapshot struct {
	Safe   Map
	Unsafe Map
}

func (s Snapshot) release() {
	s.Safe.release()
	s.Unsafe.release()
}

// InsertSafe sets a safe-classified value under key on the calling
// goroutine's MDC. Keys prefixed with a NUL byte are reserved for sentinel
// fields and are silently ignored here.
//
// value must be JSON-serializable; InsertSafe panics with a
// *wlogerr.SerializationError otherwise, since a value a sink can never
// render would otherwise corrupt observability data silently.
func InsertSafe(key string, value any) {
	if isSentinel(key) {
		return
	}
	validateSerializable(key, value)
	setSafe(key, value)
}

// InsertUnsafe sets an unsafe-classified value under key on the calling
// goroutine's MDC. value must be JSON-serializable; see InsertSafe.
func InsertUnsafe(key string, value any) {
	if isSentinel(key) {
		return
	}
	validateSerializable(key, value)
	setUnsafe(key, value)
}

func validateSerializable(key string, value any) {
	if _, err := json.Marshal(value); err != nil {
		panic(&wlogerr.SerializationError{Key: key, Err: err})
	}
}

func setSafe(key string, value any) {
	st := current()
	nb := makeUnique(st.safe)
	nb.m[key] = core.SafeParam(key, value)
	st.safe = nb
}

func setUnsafe(key string, value any) {
	st := current()
	nb := makeUnique(st.unsafe)
	nb.m[key] = core.UnsafeParam(key, value)
	st.unsafe = nb
}

// RemoveSafe removes key from the safe map, if present.
func RemoveSafe(key string) {
	st := current()
	nb := makeUnique(st.safe)
	delete(nb.m, key)
	st.safe = nb
}

// RemoveUnsafe removes key from the unsafe map, if present.
func RemoveUnsafe(key string) {
	st := current()
	nb := makeUnique(st.unsafe)
	delete(nb.m, key)
	st.unsafe = nb
}

// Clear empties both maps on the calling goroutine's MDC.
func Clear() {
	st := current()
	st.safe = newBox()
	st.unsafe = newBox()
}

// TakeSnapshot returns a snapshot of the calling goroutine's current MDC.
// The snapshot is immutable with respect to subsequent mutations of the
// live context: inserting a new value after taking a snapshot never
// changes what the snapshot observes.
func TakeSnapshot() Snapshot {
	st := current()
	return Snapshot{Safe: Map{b: st.safe.retain()}, Unsafe: Map{b: st.unsafe.retain()}}
}

// Set installs snapshot as the calling goroutine's MDC, returning the
// previous value.
func Set(snapshot Snapshot) Snapshot {
	st := current()
	prev := Snapshot{Safe: Map{b: st.safe}, Unsafe: Map{b: st.unsafe}}
	st.safe = snapshot.Safe.b.retain()
	st.unsafe = snapshot.Unsafe.b.retain()
	return prev
}

// Swap installs *snapshot as the calling goroutine's MDC and overwrites
// *snapshot with the previous value.
func Swap(snapshot *Snapshot) {
	*snapshot = Set(*snapshot)
}
