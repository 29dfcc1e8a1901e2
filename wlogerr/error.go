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

package wlogerr

import (
	"runtime"

	"github.com/google/uuid"

	"github.com/palantir/witchcraft-go-logging/core"
)

// ServiceErr is a concrete core.ServiceError: a named, coded error that
// captures its stack at construction time and is assigned a random instance
// id, so every occurrence of the same logical error can still be told apart
// in logs. Most callers construct one with NewServiceError rather than
// building the struct directly.
type ServiceErr struct {
	name       string
	code       string
	instanceID string
	msg        string
	cause      error
	causeSafe  bool
	frames     []core.Frame
	safe       []core.Param
	unsafe     []core.Param
}

// NewServiceError returns a ServiceErr with a freshly generated instance id
// and a stack trace captured from the caller.
func NewServiceError(code, name, msg string) *ServiceErr {
	return &ServiceErr{
		name:       name,
		code:       code,
		instanceID: uuid.NewString(),
		msg:        msg,
		causeSafe:  true,
		frames:     captureStack(2),
	}
}

// WithCause attaches an underlying error, unwrapped via Unwrap and rendered
// into the service log's cause chain. safe controls whether the rendered
// chain is classified safe or unsafe.
func (e *ServiceErr) WithCause(cause error, safe bool) *ServiceErr {
	e.cause = cause
	e.causeSafe = safe
	return e
}

// WithSafeParams appends params classified safe.
func (e *ServiceErr) WithSafeParams(params ...core.Param) *ServiceErr {
	e.safe = append(e.safe, params...)
	return e
}

// WithUnsafeParams appends params classified unsafe.
func (e *ServiceErr) WithUnsafeParams(params ...core.Param) *ServiceErr {
	e.unsafe = append(e.unsafe, params...)
	return e
}

func (e *ServiceErr) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *ServiceErr) Unwrap() error { return e.cause }

func (e *ServiceErr) CauseSafe() bool { return e.causeSafe }

func (e *ServiceErr) StackTrace() []core.Frame { return e.frames }

func (e *ServiceErr) SafeParams() []core.Param { return e.safe }

func (e *ServiceErr) UnsafeParams() []core.Param { return e.unsafe }

func (e *ServiceErr) Code() string { return e.code }

func (e *ServiceErr) Name() string { return e.name }

func (e *ServiceErr) InstanceID() string { return e.instanceID }

var _ core.ServiceError = (*ServiceErr)(nil)

// captureStack walks the call stack starting skip frames above its own
// caller, the same runtime.Callers/CallersFrames idiom wlog's own Check
// uses for file/line capture.
func captureStack(skip int) []core.Frame {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return nil
	}
	framesIter := runtime.CallersFrames(pcs[:n])
	var frames []core.Frame
	for {
		frame, more := framesIter.Next()
		frames = append(frames, core.Frame{Function: frame.Function, File: frame.File, Line: frame.Line})
		if !more {
			break
		}
	}
	return frames
}
