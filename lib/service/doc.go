// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

// Package service provides the HTTP serving lifecycle for the export
// endpoint: listener binding with a readiness signal, structured
// request logging, and graceful shutdown on context cancellation.
//
// The package is transport plumbing only. Routing and the export
// semantics live with the caller, which hands a fully wired
// http.Handler to [NewHTTPServer].
package service
