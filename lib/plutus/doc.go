// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

// Package plutus implements the script data algebra and its canonical
// binary encoding.
//
// A [Data] value is drawn from a fixed algebra: arbitrary-precision
// integers, byte strings, lists, and indexed constructors (tagged
// records whose field order is fixed by the constructor's schema).
// This mirrors the data shape that on-chain scripts consume as datums
// and redeemers.
//
// [Encode] produces the canonical byte sequence for a value: CBOR
// Core Deterministic Encoding with constructor indexes mapped to the
// on-chain tag convention (121–127 for indexes 0–6, 1280–1400 for
// 7–127, general tag 102 beyond that). The same logical value always
// encodes to the same bytes regardless of how it was constructed, so
// consumers may hash or compare encodings directly. [EncodeHex] is
// the lowercase hex rendering used when an artifact travels through a
// text-only transport field.
package plutus
