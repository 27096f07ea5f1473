// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/ccwrap/ccwrap/internal/meta"
	"github.com/ccwrap/ccwrap/internal/toolchain"
)

// ResolveCommandBuilder constructs the "resolve" subcommand: expand response
// files in an invocation and print the resolved argument list, one per line.
func ResolveCommandBuilder(app *cli.Command, m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "expand response files and print the resolved arguments",
		UsageText: `ccwrap resolve -- <compiler> [compiler args...]`,
		Metadata: map[string]any{
			"meta": m,
		},
		Action: ResolveCommandAction,
	}
}

// ResolveCommandAction is the action handler for the "resolve" subcommand.
func ResolveCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	argv, err := CompilerArgs(cmd)
	if err != nil {
		return err
	}

	adapter, err := toolchain.Lookup(argv[0])
	if err != nil {
		return err
	}

	resolved, err := adapter.ResolveArgs(argv)
	if err != nil {
		return err
	}

	for _, arg := range resolved {
		fmt.Fprintln(os.Stdout, arg)
	}
	return nil
}
