// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

// Package tic6x adapts the TI TMS320C6000 code generation tools (cl6x) for
// caching: response-file expansion, compile/link classification, declared
// build-file extraction, archive-aware content fingerprinting, cache-key
// argument filtering and toolchain identity probing.
package tic6x
