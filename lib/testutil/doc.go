// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers.
//
// The channel helpers encapsulate the timeout safety valve pattern:
// every blocking receive or readiness wait in a test goes through a
// helper with an explicit timeout, so a regression hangs a single
// test case instead of the whole run.
package testutil
