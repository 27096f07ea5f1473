// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/ccwrap/ccwrap/internal/cacheutil"
	"github.com/ccwrap/ccwrap/internal/meta"
	"github.com/ccwrap/ccwrap/internal/toolchain"
)

// KeyCommandBuilder constructs the "key" subcommand: run the full description
// pipeline for a toolchain invocation and print the resulting manifest and
// composed cache key without touching the cache.
func KeyCommandBuilder(app *cli.Command, m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "key",
		Usage:     "compute the cache key manifest for a toolchain invocation",
		UsageText: `ccwrap key [options] -- <compiler> [compiler args...]`,
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			NewOutputFlag("key"),
		},
		Action: KeyCommandAction,
	}
}

// KeyCommandAction is the action handler for the "key" subcommand.
func KeyCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	argv, err := CompilerArgs(cmd)
	if err != nil {
		return err
	}

	manifest, err := toolchain.Describe(ctx, argv)
	if err != nil {
		return err
	}

	report := KeyReport{
		Key:      cacheutil.ComposeKey(manifest),
		Manifest: manifest,
	}
	return Emit(os.Stdout, report, cmd.String("output"))
}
