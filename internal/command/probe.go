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

// ProbeCommandBuilder constructs the "probe" subcommand: query the toolchain
// for its identity string and print it verbatim.
func ProbeCommandBuilder(app *cli.Command, m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "probe",
		Usage:     "print the toolchain identity string",
		UsageText: `ccwrap probe -- <compiler>`,
		Metadata: map[string]any{
			"meta": m,
		},
		Action: ProbeCommandAction,
	}
}

// ProbeCommandAction is the action handler for the "probe" subcommand.
func ProbeCommandAction(ctx context.Context, cmd *cli.Command) error {
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

	identity, err := adapter.Identity(ctx, argv)
	if err != nil {
		return err
	}

	fmt.Fprint(os.Stdout, identity)
	return nil
}
