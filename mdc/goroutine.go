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
	"bytes"
	"runtime"
	"strconv"
)

// GoroutineID returns the calling goroutine's numeric id, Go's closest
// analogue to a thread id. Sinks that render a "thread" field (see
// svc1log.Render) use this rather than reimplementing the runtime.Stack
// parse themselves.
func GoroutineID() uint64 {
	return goroutineID()
}

// goroutineID recovers the calling goroutine's numeric id by parsing the
// "goroutine <id> [" prefix out of a runtime.Stack trace. Go exposes no
// public goroutine identity and no thread-local storage, so every
// goroutine-local facility in this package keys off this id instead, the
// same trick the teacher codebase uses to enrich records with a thread id.
//
// This is on the cold path only: it runs once per MDC mutation/snapshot on a
// goroutine that doesn't yet have an entry in the store, not once per log
// call.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]

	const prefix = "goroutine "
	if !bytes.HasPrefix(b, []byte(prefix)) {
		return 0
	}
	b = b[len(prefix):]

	end := bytes.IndexByte(b, ' ')
	if end < 0 {
		return 0
	}

	id, err := strconv.ParseUint(string(b[:end]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
