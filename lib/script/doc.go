// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

// Package script defines the uniform output shape of every builder:
// the [Envelope], an immutable artifact payload tagged with the
// category the surrounding system recognizes (minting policy,
// spending validator, or inline datum).
//
// The envelope never interprets its payload. Category tagging happens
// exactly once, in the envelope constructors; everything downstream
// treats the payload as opaque bytes to render, hash, or compare.
package script
