// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

// Package command defines the CLI command set for ccwrap. It wires flags,
// validators, actions, and shell completion for subcommands.
package command
