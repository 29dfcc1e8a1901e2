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

// Package filter implements the hierarchical target filter: a "::"-segmented
// prefix trie of LevelFilter values supporting closest-ancestor lookup.
package filter

import (
	"strings"

	"github.com/palantir/witchcraft-go-logging/core"
)

type node struct {
	children map[string]*node
	value    *core.LevelFilter
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// Filter is an immutable hierarchical per-target level lookup. Build one
// with Builder.
type Filter struct {
	root *node
}

// Enabled reports whether a record with the given metadata should be
// admitted: the record's level is compared ordinally against the filter
// value of the closest ancestor of its target that has one stored (the
// root always has one).
func (f *Filter) Enabled(metadata core.Metadata) bool {
	return core.Enabled(metadata.Level, f.closestAncestor(metadata.Target))
}

func (f *Filter) closestAncestor(target string) core.LevelFilter {
	n := f.root
	best := *n.value
	if target == "" {
		return best
	}
	for _, seg := range strings.Split(target, "::") {
		child, ok := n.children[seg]
		if !ok {
			break
		}
		n = child
		if n.value != nil {
			best = *n.value
		}
	}
	return best
}

// MaxLevel returns the maximum of every filter value stored in the trie,
// the value a caller should install as the process-wide fast-path gate so
// it never rejects a record this filter would otherwise admit.
func (f *Filter) MaxLevel() core.LevelFilter {
	return maxLevel(f.root, *f.root.value)
}

func maxLevel(n *node, acc core.LevelFilter) core.LevelFilter {
	if n.value != nil && *n.value > acc {
		acc = *n.value
	}
	for _, child := range n.children {
		acc = maxLevel(child, acc)
	}
	return acc
}
