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

package core

// Frame is a single stack frame, as rendered into a service-log stacktrace.
type Frame struct {
	Function string
	File     string
	Line     int
}

// StructuredError is an optional error a Record may carry. Implementations
// that additionally want to be rendered as a "service" error (getting an
// errorCode/errorName pair in the service-log output) should also satisfy
// ServiceError.
type StructuredError interface {
	error

	// CauseSafe reports whether the chain of Unwrap() causes should be
	// rendered into the safe or unsafe params of the service log.
	CauseSafe() bool

	// StackTrace returns the frames captured when the error was created, if
	// any, outermost frame first.
	StackTrace() []Frame

	// SafeParams and UnsafeParams are merged into the record's own params
	// when rendering, with the record's own params taking precedence.
	SafeParams() []Param
	UnsafeParams() []Param
}

// ServiceError is the subset of StructuredError that additionally carries a
// conjure-style error code and name, rendered as errorCode/errorName.
type ServiceError interface {
	StructuredError

	Code() string
	Name() string
	InstanceID() string
}
