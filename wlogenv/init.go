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

package wlogenv

import (
	"os"

	"github.com/palantir/witchcraft-go-logging/filter"
	"github.com/palantir/witchcraft-go-logging/svc1log"
	"github.com/palantir/witchcraft-go-logging/wlog"
)

// TryInit installs a process-wide logger that writes service.1 JSON lines
// to stderr, filtered according to the WLOG_DIRECTIVES environment
// variable. It returns wlogerr.ErrAlreadyInstalled if a logger is already
// installed.
func TryInit() error {
	return tryInitWithSpec(os.Getenv(EnvVar))
}

func tryInitWithSpec(spec string) error {
	return installFilter(BuildFilter(spec))
}

func installFilter(f *filter.Filter) error {
	sink := &filter.Sink{Filter: f, Delegate: svc1log.NewSink(os.Stderr)}

	if err := wlog.SetLogger(sink); err != nil {
		return err
	}
	wlog.SetMaxLevel(f.MaxLevel())
	return nil
}

// Init calls TryInit and panics if it fails.
func Init() {
	if err := TryInit(); err != nil {
		panic(err)
	}
}
