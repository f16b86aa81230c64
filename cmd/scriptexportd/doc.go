// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

// scriptexportd serves governance script artifacts over HTTP.
//
// At startup it builds the fixed registry of artifact builders from
// the chain configuration, then answers export requests: the caller
// names a builder and supplies JSON parameters, the service dispatches
// to the builder, and the resulting artifact comes back as a hex text
// envelope (or raw CBOR bytes, content-negotiated). The registry never
// changes while the process runs and the service keeps no state
// between requests.
//
// Endpoints:
//
//	POST /v1/export/{name}   build and return one artifact
//	GET  /v1/builders        list registered builders
//	GET  /health             liveness probe
//	GET  /version            build identity (branch@commit)
package main
