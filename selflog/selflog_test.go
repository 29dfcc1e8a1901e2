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

package selflog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/palantir/witchcraft-go-logging/selflog"
	"github.com/stretchr/testify/assert"
)

func TestDisabledByDefault(t *testing.T) {
	selflog.Disable()
	assert.False(t, selflog.IsEnabled())

	var buf bytes.Buffer
	selflog.Printf("should not appear")
	assert.Empty(t, buf.String())
}

func TestEnableWritesFormattedLine(t *testing.T) {
	defer selflog.Disable()

	var buf bytes.Buffer
	selflog.Enable(selflog.Sync(&buf))
	assert.True(t, selflog.IsEnabled())

	selflog.Printf("sink %s failed: %v", "console", "disk full")

	assert.True(t, strings.Contains(buf.String(), "sink console failed: disk full"))
}

func TestEnableFuncInvokedPerLine(t *testing.T) {
	defer selflog.Disable()

	var got []string
	selflog.EnableFunc(func(line string) {
		got = append(got, line)
	})

	selflog.Printf("one")
	selflog.Printf("two")

	assert.Len(t, got, 2)
	assert.True(t, strings.HasSuffix(got[0], "one"))
	assert.True(t, strings.HasSuffix(got[1], "two"))
}

func TestDisableStopsOutput(t *testing.T) {
	var buf bytes.Buffer
	selflog.Enable(selflog.Sync(&buf))
	selflog.Disable()

	selflog.Printf("dropped")

	assert.Empty(t, buf.String())
	assert.False(t, selflog.IsEnabled())
}

func TestNilWriterIgnored(t *testing.T) {
	defer selflog.Disable()
	selflog.Enable(nil)
	assert.False(t, selflog.IsEnabled())
}

func TestSyncSerializesConcurrentWrites(t *testing.T) {
	defer selflog.Disable()

	var buf bytes.Buffer
	w := selflog.Sync(&buf)
	selflog.Enable(w)

	const n = 50
	done := make(chan struct{})
	for i := 0; i < n; i++ {
		go func(i int) {
			selflog.Printf("message %d", i)
			done <- struct{}{}
		}(i)
	}
	for i := 0; i < n; i++ {
		<-done
	}

	assert.Equal(t, n, strings.Count(buf.String(), "message"))
}
