// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a dispatch failure. The transport layer maps
// kinds to response statuses; the core never branches on them beyond
// classification.
type ErrorKind int

const (
	// UnknownKey means the requested builder name is not registered.
	// Recoverable by the caller by picking a valid key.
	UnknownKey ErrorKind = iota + 1

	// InvalidParameters means the raw input does not match the
	// shape, types, or cardinality the builder expects. The builder
	// itself is never invoked.
	InvalidParameters

	// BuildFailed means the builder could not produce a valid
	// artifact from otherwise well-typed parameters, for example a
	// value outside its domain-specific valid range.
	BuildFailed
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownKey:
		return "unknown-key"
	case InvalidParameters:
		return "invalid-parameters"
	case BuildFailed:
		return "build-failed"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is a classified dispatch failure. Key is the builder key the
// request named; Err carries whatever detail the decode step or the
// builder provided.
type Error struct {
	Kind ErrorKind
	Key  string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnknownKey:
		return fmt.Sprintf("unknown builder %q", e.Key)
	case InvalidParameters:
		return fmt.Sprintf("invalid parameters for %q: %v", e.Key, e.Err)
	default:
		return fmt.Sprintf("building %q: %v", e.Key, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the classification of err, or zero when err is not a
// dispatch error.
func KindOf(err error) ErrorKind {
	var dispatchErr *Error
	if errors.As(err, &dispatchErr) {
		return dispatchErr.Kind
	}
	return 0
}
