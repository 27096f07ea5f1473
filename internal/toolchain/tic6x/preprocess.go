// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

package tic6x

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/ccwrap/ccwrap/internal/arfile"
	"github.com/ccwrap/ccwrap/internal/fileutil"
	"github.com/ccwrap/ccwrap/internal/hasher"
	"github.com/ccwrap/ccwrap/internal/linkcmd"
	"github.com/ccwrap/ccwrap/internal/toolchain"
)

// ContentFingerprint implements toolchain.Adapter. An object compilation is
// represented by its preprocessed source text; a link is represented by a
// digest of all its input files. Anything else is unsupported.
func (a *Adapter) ContentFingerprint(ctx context.Context, resolved []string) (string, error) {
	inv, err := classify(resolved)
	if err != nil {
		return "", err
	}

	switch {
	case inv.kind == toolchain.KindObjectCompile && inv.outputFile != "":
		return a.preprocessSource(ctx, resolved)
	case inv.kind == toolchain.KindLink && inv.outputFile != "":
		return a.fingerprintLinkInputs(resolved)
	}

	return "", toolchain.ErrUnsupportedCommand
}

// preprocessSource runs the toolchain in preprocess-only mode into a scoped
// temporary file and returns the preprocessed text. The text captures macro
// expansion, header content and conditional compilation in one normalized
// form, so include-path churn that doesn't change expansion results doesn't
// change the fingerprint.
func (a *Adapter) preprocessSource(ctx context.Context, resolved []string) (string, error) {
	tmp, err := fileutil.NewTempFile(a.tempDir, ".i")
	if err != nil {
		return "", fmt.Errorf("failed to create preprocessed output file: %w", err)
	}
	defer tmp.Remove()

	result, err := a.runner.Run(ctx, preprocessorArgs(resolved, tmp.Path()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", toolchain.ErrPreprocessFailed, err)
	}
	if result.ExitCode != 0 {
		return "", fmt.Errorf("%w (exit code %d)", toolchain.ErrPreprocessFailed, result.ExitCode)
	}

	data, err := os.ReadFile(tmp.Path())
	if err != nil {
		return "", fmt.Errorf("failed to read preprocessed output: %w", err)
	}
	return string(data), nil
}

// preprocessorArgs derives the preprocess-only command line: compile/output
// flags and any caller-supplied preprocessor-control flags are dropped, then
// preprocess-only mode and the private output path are appended.
func preprocessorArgs(resolved []string, outPath string) []string {
	args := make([]string, 0, len(resolved)+2)
	for _, arg := range resolved {
		if arg == flagCompileOnly ||
			strings.HasPrefix(arg, flagOutputFile) ||
			strings.HasPrefix(arg, "-pp") ||
			strings.HasPrefix(arg, "--preproc_") {
			continue
		}
		args = append(args, arg)
	}
	return append(args, flagPreprocOnly, flagOutputFile+outPath)
}

// fingerprintLinkInputs hashes every existing input file named on the link
// command line into one digest. Linker command files are parsed so that
// referenced libraries contribute content, not paths; archives contribute
// everything but their member timestamps.
func (a *Adapter) fingerprintLinkInputs(resolved []string) (string, error) {
	h := hasher.New()

	for _, arg := range resolved[1:] {
		if arg == "" || arg[0] == '-' || !fileutil.Exists(arg) {
			continue
		}
		if fileutil.Ext(arg) == linkerCmdFileExt {
			log.Debugf("hashing cmd file %s", arg)
			if err := linkcmd.Hash(arg, h); err != nil {
				return "", err
			}
			continue
		}
		if err := arfile.HashFile(arg, h); err != nil {
			return "", err
		}
	}

	return h.Final(), nil
}
