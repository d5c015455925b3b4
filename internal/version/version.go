// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package version exposes build identity for the -version flag and the
// health endpoint. Release builds overwrite the variables with ldflags.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is overwritten at release time; the default marks dev builds.
	Version = "0.0.0-development"

	// GitCommit and BuildDate come from the release pipeline.
	GitCommit = "unknown"
	BuildDate = "unknown"

	// GoVersion and Platform describe the build environment.
	GoVersion = runtime.Version()
	Platform  = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
)

// Info returns the one-line form printed by -version.
func Info() string {
	return fmt.Sprintf("skyredact %s (commit: %s, built: %s, go: %s, platform: %s)",
		Version, GitCommit, BuildDate, GoVersion, Platform)
}

// Short returns only the version number.
func Short() string {
	return Version
}

// Full returns the structured form served by the health endpoint.
func Full() map[string]string {
	return map[string]string{
		"version":   Version,
		"commit":    GitCommit,
		"buildDate": BuildDate,
		"goVersion": GoVersion,
		"platform":  Platform,
	}
}
