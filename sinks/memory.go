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

package sinks

import (
	"sync"

	"github.com/palantir/witchcraft-go-logging/core"
)

// MemorySink captures every record it receives, for assertions in tests
// that exercise a logger end to end rather than calling Check/Write
// directly.
type MemorySink struct {
	mu      sync.RWMutex
	records []core.Record
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (m *MemorySink) Enabled(core.Metadata) bool { return true }

func (m *MemorySink) Log(record *core.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, *record)
}

func (m *MemorySink) Flush() {}

// Records returns a copy of every record captured so far.
func (m *MemorySink) Records() []core.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]core.Record, len(m.records))
	copy(out, m.records)
	return out
}

// Clear discards every captured record.
func (m *MemorySink) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = m.records[:0]
}

// Count returns the number of captured records.
func (m *MemorySink) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Last returns the most recently captured record, or nil if empty.
func (m *MemorySink) Last() *core.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.records) == 0 {
		return nil
	}
	r := m.records[len(m.records)-1]
	return &r
}

var _ core.Sink = (*MemorySink)(nil)
