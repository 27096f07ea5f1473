// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

// Package version carries the build version stamped in by the release
// process.
package version

// Version is overridden at link time via -ldflags.
var Version = "dev"
