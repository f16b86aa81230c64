// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

// Package govern assembles the governance script artifacts this
// service exports: the always-succeeds test scripts, the governor
// policy and validator instantiated from a bootstrap output
// reference, the treasury validator instantiated from the authority
// asset configured at startup, and the governor datum built from
// proposal thresholds and timings.
//
// [RegisterAll] is the fixed registration chain executed once during
// startup. The export core treats everything produced here as opaque
// payload; this package owns the content.
package govern
