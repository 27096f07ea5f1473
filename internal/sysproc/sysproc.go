// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

// Package sysproc runs toolchain subprocesses on behalf of the adapters. The
// Runner interface exists so tests can substitute a fake toolchain.
package sysproc

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/apex/log"
)

// Result is the outcome of a completed subprocess.
type Result struct {
	ExitCode int
	Stdout   string
}

// Runner executes a command line and waits for it to finish. Timeout and
// cancellation, when needed, travel in via ctx.
type Runner interface {
	Run(ctx context.Context, args []string) (Result, error)
}

// ExecRunner is the default Runner, backed by os/exec. The child's stderr is
// passed through so toolchain diagnostics reach the user unmodified.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, args []string) (Result, error) {
	if len(args) == 0 {
		return Result{}, errors.New("sysproc: empty command line")
	}
	log.Debugf("running %v", args)

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{ExitCode: exitErr.ExitCode(), Stdout: stdout.String()}, nil
		}
		return Result{}, err
	}
	return Result{ExitCode: 0, Stdout: stdout.String()}, nil
}

// PassthroughRun executes args with all three standard streams inherited from
// the parent. Used when ccwrap falls back to an uncached toolchain run.
func PassthroughRun(ctx context.Context, args []string) (int, error) {
	if len(args) == 0 {
		return -1, errors.New("sysproc: empty command line")
	}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}
