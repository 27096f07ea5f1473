// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

// Package toolchain defines the adapter contract every supported compiler
// family implements, the registry that selects an adapter from the invoked
// binary's name, and the Describe pipeline that turns a raw command line into
// the manifest handed to the cache engine.
package toolchain
