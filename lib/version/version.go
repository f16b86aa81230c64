// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the export
// service.
//
// Version information is injected at build time via -ldflags, for
// example:
//
//	go build -ldflags "\
//	  -X github.com/daoforge/scriptexport/lib/version.GitBranch=$(git rev-parse --abbrev-ref HEAD) \
//	  -X github.com/daoforge/scriptexport/lib/version.GitCommit=$(git rev-parse --short HEAD)"
package version

import (
	"fmt"
	"runtime"
)

// These variables are set via -ldflags at build time.
var (
	// GitBranch is the source-control branch of the build.
	GitBranch = "unknown"

	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// Version is the semantic version. This is set manually for
	// releases.
	Version = "0.1.0-dev"
)

// Revision is the process identity string advertised alongside
// responses so callers can verify server compatibility: branch and
// commit joined as "branch@commit". Computed from build-time
// metadata; inert data at runtime.
func Revision() string {
	return fmt.Sprintf("%s@%s", GitBranch, GitCommit)
}

// Info returns a formatted version string suitable for --version
// output.
func Info() string {
	return fmt.Sprintf("%s (%s)", Version, Revision())
}

// Full returns detailed version information including Go version.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Print writes the standard --version line for the named binary.
func Print(binary string) {
	fmt.Printf("%s %s\n", binary, Info())
}
