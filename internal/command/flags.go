// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/ccwrap/ccwrap/internal/config"
)

func init() {
	cfg, _ = config.Load("")
}

var cfg config.Type

// NewOutputFlag constructs the "output" flag, namespaced to a command so a
// ccwrap.yaml can carry per-command and global defaults.
func NewOutputFlag(ns string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CCWRAP_OUTPUT"),
			yaml.YAML(ns+"."+"output", altsrc.StringSourcer(cfg.Source)),
			yaml.YAML("output", altsrc.StringSourcer(cfg.Source)),
		),
		Value: "json",
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}
}
