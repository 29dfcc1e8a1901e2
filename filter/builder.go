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

package filter

import (
	"strings"

	"github.com/palantir/witchcraft-go-logging/core"
)

// Builder accumulates directives (a root default and per-target overrides)
// before constructing an immutable Filter.
type Builder struct {
	root    core.LevelFilter
	targets map[string]core.LevelFilter
}

// NewBuilder returns a builder whose root default is Error, matching the
// reference grammar's default when no bare-level directive is given.
func NewBuilder() *Builder {
	return &Builder{root: core.ErrorFilter, targets: make(map[string]core.LevelFilter)}
}

// Level sets the root default filter.
func (b *Builder) Level(f core.LevelFilter) *Builder {
	b.root = f
	return b
}

// TargetLevel sets an override at the given "::"-separated target.
func (b *Builder) TargetLevel(target string, f core.LevelFilter) *Builder {
	b.targets[target] = f
	return b
}

// Build constructs the immutable Filter.
func (b *Builder) Build() *Filter {
	root := newNode()
	rootValue := b.root
	root.value = &rootValue

	f := &Filter{root: root}
	for target, level := range b.targets {
		f.insert(target, level)
	}
	return f
}

func (f *Filter) insert(target string, level core.LevelFilter) {
	n := f.root
	for _, seg := range strings.Split(target, "::") {
		child, ok := n.children[seg]
		if !ok {
			child = newNode()
			n.children[seg] = child
		}
		n = child
	}
	v := level
	n.value = &v
}
