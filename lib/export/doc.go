// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

// Package export implements the builder registry and dispatch logic
// at the heart of the service.
//
// Builders have heterogeneous parameter types — some take nothing,
// some a handful of integers, some chain references. The registry
// stores them uniformly by erasing the parameter type at registration
// time: [Builder] folds the builder-specific JSON decode into a
// [BuildFunc] closure, so every entry's public shape is
// (raw parameters) -> (envelope, error) and callers never see the
// concrete parameter type.
//
// The registry is populated once at process start and is read-only
// thereafter. Any number of concurrent requests may call [Registry.Lookup]
// and [Dispatch] without coordination; every dispatch is a pure
// in-memory computation over immutable state.
//
// Dispatch failures are ordinary values classified by [ErrorKind]:
// an unregistered key, parameters that do not decode into the
// builder's expected shape, or a builder that cannot produce a valid
// artifact from well-typed parameters. None of them terminate the
// process; duplicate registration is the only fatal condition, and
// only before any request is served.
package export
