// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

// ccwrap is the main package for the ccwrap command line tool. It wires the
// CLI, delegates to internal packages, and serves as the entry point.
package main
