// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

package tic6x

import (
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/kballard/go-shellquote"
)

// ResolveArgs expands response-file references (--cmd_file=path and -@path)
// in place, preserving the order of everything else. Expansion is a single
// level deep; a response file surfacing another reference is caught during
// classification and rejected.
func (a *Adapter) ResolveArgs(args []string) ([]string, error) {
	resolved := make([]string, 0, len(args))

	for _, arg := range args {
		var respFile string
		switch {
		case strings.HasPrefix(arg, flagCmdFile):
			respFile = arg[len(flagCmdFile):]
		case strings.HasPrefix(arg, flagCmdFileShort):
			respFile = arg[len(flagCmdFileShort):]
		}

		if respFile == "" {
			resolved = append(resolved, arg)
			continue
		}

		expanded, err := expandResponseFile(respFile)
		if err != nil {
			return nil, err
		}
		log.Debugf("expanded response file %s into %d args", respFile, len(expanded))
		resolved = append(resolved, expanded...)
	}

	return resolved, nil
}

// expandResponseFile reads path and splits it into arguments with shell
// quoting rules, after folding line breaks into spaces.
func expandResponseFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read response file %s: %w", path, err)
	}

	flat := strings.ReplaceAll(string(data), "\r", " ")
	flat = strings.ReplaceAll(flat, "\n", " ")

	words, err := shellquote.Split(flat)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize response file %s: %w", path, err)
	}
	return words, nil
}
