// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

package tic6x

import (
	"context"
	"fmt"

	"github.com/ccwrap/ccwrap/internal/toolchain"
)

// Identity implements toolchain.Adapter. The full --help text (which embeds
// the version string) is used verbatim rather than a parsed version number,
// trading redundancy for robustness against format drift between releases.
func (a *Adapter) Identity(ctx context.Context, resolved []string) (string, error) {
	result, err := a.runner.Run(ctx, []string{resolved[0], identityProbeFlag})
	if err != nil {
		return "", fmt.Errorf("%w: %v", toolchain.ErrIdentityProbeFailed, err)
	}
	if result.ExitCode != 0 {
		return "", toolchain.ErrIdentityProbeFailed
	}
	return result.Stdout, nil
}
