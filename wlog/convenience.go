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

// Fatal, Error, Warn, Info, Debug, and Trace are sugared one-phase
// wrappers over Check/Write for the common case where params are cheap to
// construct (field references, not computed expressions). Unlike Check,
// these evaluate their params argument unconditionally before the gate is
// consulted — documented here exactly as zap documents the same tradeoff
// for its own sugared API. Use Check directly when a parameter is expensive
// to compute.
func Fatal(target, message string, params ...core.Param) {
	if ce := check(core.Fatal, target, message, 3); ce != nil {
		ce.Write(params...)
	}
}

func Error(target, message string, params ...core.Param) {
	if ce := check(core.Error, target, message, 3); ce != nil {
		ce.Write(params...)
	}
}

func Warn(target, message string, params ...core.Param) {
	if ce := check(core.Warn, target, message, 3); ce != nil {
		ce.Write(params...)
	}
}

func Info(target, message string, params ...core.Param) {
	if ce := check(core.Info, target, message, 3); ce != nil {
		ce.Write(params...)
	}
}

func Debug(target, message string, params ...core.Param) {
	if ce := check(core.Debug, target, message, 3); ce != nil {
		ce.Write(params...)
	}
}

func Trace(target, message string, params ...core.Param) {
	if ce := check(core.Trace, target, message, 3); ce != nil {
		ce.Write(params...)
	}
}
