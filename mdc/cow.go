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

import (
	"sync/atomic"

	"github.com/palantir/witchcraft-go-logging/core"
)

// box is a reference-counted, copy-on-write map. It plays the role of Rust's
// Arc<HashMap>: snapshots share the same box (bumping refs), and a mutator
// clones only when the box it holds is not uniquely owned.
type box struct {
	refs int32
	m    map[string]core.Param
}

// emptyBox is the process-wide singleton backing a fresh Map, mirroring the
// Rust implementation's lazily-initialized EMPTY map. It is never mutated in
// place; makeUnique always clones away from it first.
var emptyBox = &box{refs: 1 << 30, m: map[string]core.Param{}}

func newBox() *box {
	return emptyBox
}

func (b *box) retain() *box {
	if b != emptyBox {
		atomic.AddInt32(&b.refs, 1)
	}
	return b
}

func (b *box) release() {
	if b == emptyBox {
		return
	}
	atomic.AddInt32(&b.refs, -1)
}

// makeUnique returns a box safe to mutate in place: either b itself, if it
// has exactly one owner, or a fresh clone otherwise.
func makeUnique(b *box) *box {
	if b == emptyBox {
		return &box{refs: 1, m: make(map[string]core.Param)}
	}
	if atomic.LoadInt32(&b.refs) == 1 {
		return b
	}
	clone := make(map[string]core.Param, len(b.m))
	for k, v := range b.m {
		clone[k] = v
	}
	b.release()
	return &box{refs: 1, m: clone}
}
