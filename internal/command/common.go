// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

package command

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/ccwrap/ccwrap/internal/meta"
	"github.com/ccwrap/ccwrap/internal/toolchain"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// CompilerArgs returns the toolchain argv trailing the subcommand (the part
// after the -- terminator). The first element must be the toolchain binary.
func CompilerArgs(cmd *cli.Command) ([]string, error) {
	argv := cmd.Args().Slice()
	if len(argv) == 0 {
		return nil, errors.New("no compiler command given; usage: ccwrap " + cmd.Name + " [flags] -- <compiler> [args...]")
	}
	return argv, nil
}

// KeyReport is the printable result of the key command: the manifest plus the
// composed clear-text cache key.
type KeyReport struct {
	Key      string              `json:"key" yaml:"key"`
	Manifest *toolchain.Manifest `json:"manifest" yaml:"manifest"`
}

// Emit writes v to w in the requested output format.
func Emit(w io.Writer, v any, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
