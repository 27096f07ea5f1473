// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/ccwrap/ccwrap/internal/cacheutil"
	"github.com/ccwrap/ccwrap/internal/command"
	mylog "github.com/ccwrap/ccwrap/internal/log"
	"github.com/ccwrap/ccwrap/internal/version"

	// Registers the toolchain adapters.
	_ "github.com/ccwrap/ccwrap/internal/toolchain/tic6x"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()

	args := os.Args

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "No command specified.")
		args = append(args, "--help")
	}

	// Short-circuit --version/-v. Only the first argument counts so a
	// wrapped compiler flag can never trigger it.
	if args[1] == "--version" || args[1] == "-v" {
		fmt.Println(version.Version)
		return 0
	}

	// Best-effort: pre-create cache directory when caching is enabled.
	if _, _, err := cacheutil.EnsureBaseDir(); err != nil {
		// Non-fatal: print to stderr and continue.
		fmt.Fprintln(os.Stderr, err)
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		if ec, ok := err.(cli.ExitCoder); ok {
			if msg := err.Error(); msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			return ec.ExitCode()
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}
