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

package wlog

import "github.com/palantir/witchcraft-go-logging/core"

// Safe builds a structured parameter classified as exfiltratable from the
// environment.
func Safe(key string, value any) core.Param {
	return core.SafeParam(key, value)
}

// Unsafe builds a structured parameter classified as sensitive.
func Unsafe(key string, value any) core.Param {
	return core.UnsafeParam(key, value)
}
