// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

package toolchain

import (
	"context"
	"errors"

	"github.com/apex/log"
)

// Manifest is what the cache engine receives per invocation. Key composition,
// lookup and artifact restoration happen on the other side of this boundary.
type Manifest struct {
	Toolchain    string          `json:"toolchain" yaml:"toolchain"`
	Identity     string          `json:"identity" yaml:"identity"`
	RelevantArgs []string        `json:"relevantArgs" yaml:"relevantArgs"`
	Fingerprint  string          `json:"fingerprint" yaml:"fingerprint"`
	BuildFiles   map[Role]string `json:"buildFiles" yaml:"buildFiles"`
}

// Describe runs the full pipeline for one invocation:
// resolve -> classify/extract -> fingerprint -> filter -> probe identity.
// Each invocation is independent; no state survives this call.
func Describe(ctx context.Context, args []string) (*Manifest, error) {
	if len(args) == 0 {
		return nil, errors.New("empty command line")
	}

	adapter, err := Lookup(args[0])
	if err != nil {
		return nil, err
	}

	resolved, err := adapter.ResolveArgs(args)
	if err != nil {
		return nil, err
	}
	log.Debugf("resolved args: %v", resolved)

	files, err := adapter.BuildFiles(resolved)
	if err != nil {
		return nil, err
	}

	fingerprint, err := adapter.ContentFingerprint(ctx, resolved)
	if err != nil {
		return nil, err
	}

	identity, err := adapter.Identity(ctx, resolved)
	if err != nil {
		return nil, err
	}

	return &Manifest{
		Toolchain:    adapter.Name(),
		Identity:     identity,
		RelevantArgs: adapter.RelevantArgs(resolved),
		Fingerprint:  fingerprint,
		BuildFiles:   files,
	}, nil
}
