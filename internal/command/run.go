// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/ccwrap/ccwrap/internal/cacheutil"
	"github.com/ccwrap/ccwrap/internal/meta"
	"github.com/ccwrap/ccwrap/internal/sysproc"
	"github.com/ccwrap/ccwrap/internal/toolchain"
)

// RunCommandBuilder constructs the "run" subcommand: execute a compilation
// through the cache. Flag parsing is skipped so the entire trailing argv
// reaches the toolchain untouched.
func RunCommandBuilder(app *cli.Command, m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:            "run",
		Usage:           "run a toolchain invocation through the cache",
		UsageText:       `ccwrap run <compiler> [compiler args...]`,
		SkipFlagParsing: true,
		Metadata: map[string]any{
			"meta": m,
		},
		Action: RunCommandAction,
	}
}

// RunCommandAction is the action handler for the "run" subcommand. Any
// failure to describe the invocation falls back to an uncached toolchain run;
// a describe failure must never fail the build.
func RunCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	argv := cmd.Args().Slice()
	if len(argv) == 0 {
		return errors.New("no compiler command given; usage: ccwrap run <compiler> [args...]")
	}

	manifest, err := toolchain.Describe(ctx, argv)
	if err != nil {
		log.WithError(err).Warn("invocation is not cacheable, running toolchain directly")
		return passthrough(ctx, argv)
	}

	entry, hit := cacheutil.EntryFor(manifest)

	if hit && cacheutil.Enabled() {
		if err := entry.Restore(manifest.BuildFiles); err == nil {
			log.Debugf("cache hit: %s", entry.EncodedKey)
			return nil
		} else {
			log.WithError(err).Warn("failed to restore cache entry, recompiling")
		}
	}

	code, err := sysproc.PassthroughRun(ctx, argv)
	if err != nil {
		return err
	}
	if code != 0 {
		return cli.Exit(fmt.Sprintf("compiler exited with code %d", code), code)
	}

	if entry != nil && cacheutil.Enabled() {
		if err := entry.Store(manifest.BuildFiles); err != nil {
			log.WithError(err).Warn("failed to populate cache")
		} else {
			log.Debugf("cache store: %s", entry.EncodedKey)
		}
	}

	return nil
}

func passthrough(ctx context.Context, argv []string) error {
	code, err := sysproc.PassthroughRun(ctx, argv)
	if err != nil {
		return err
	}
	if code != 0 {
		return cli.Exit(fmt.Sprintf("compiler exited with code %d", code), code)
	}
	return nil
}
