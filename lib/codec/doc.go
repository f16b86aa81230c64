// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the service's standard CBOR encoding
// configuration.
//
// Scriptexport uses two serialization formats with a clear boundary:
//
//   - JSON for the external interface: builder parameters arrive as
//     JSON documents in export requests, and success/error responses
//     render as JSON.
//   - CBOR for artifact content: script data values and compiled
//     program containers are encoded with Core Deterministic
//     Encoding so that the same logical artifact always has the same
//     bytes, the same hex rendering, and the same hash.
//
// This package provides the shared CBOR encoding and decoding modes
// so that every package encodes identically without duplicating
// configuration. Nothing outside this package imports fxamacker/cbor
// directly.
package codec
