// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the export
// service.
//
// Configuration is loaded from a single YAML file specified by:
//   - the SCRIPTEXPORT_CONFIG environment variable, or
//   - the --config flag passed to the binary
//
// There are no fallbacks or automatic discovery. The config file is
// the single source of truth; environment variables never override
// file values. This keeps configuration deterministic and auditable
// — the registry built from it is fixed for the process lifetime.
package config
