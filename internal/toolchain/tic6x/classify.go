// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

package tic6x

import (
	"fmt"
	"strings"

	"github.com/ccwrap/ccwrap/internal/toolchain"
)

// invocation is the result of one classification pass over a resolved
// argument list.
type invocation struct {
	kind       toolchain.Kind
	outputFile string
	depFile    string
	mapFile    string
}

// classify scans the resolved argument list once, determining the invocation
// kind and the declared build-file paths. The scan is read-only; duplicate
// role declarations and leftover response-file references are fatal.
func classify(resolved []string) (invocation, error) {
	var inv invocation
	var isObjectCompilation, isLink, isPreprocess bool

	for _, arg := range resolved {
		switch {
		case arg == flagCompileOnly:
			isObjectCompilation = true
		case arg == flagRunLinker:
			isLink = true
		case arg == flagPreprocOnly:
			isPreprocess = true
		case strings.HasPrefix(arg, flagOutputFile):
			if inv.outputFile != "" {
				return invocation{}, fmt.Errorf("only a single target file can be specified (%s)", arg)
			}
			inv.outputFile = arg[len(flagOutputFile):]
		case strings.HasPrefix(arg, flagDepFileShort):
			if inv.depFile != "" {
				return invocation{}, fmt.Errorf("only a single dependency file can be specified (%s)", arg)
			}
			inv.depFile = arg[len(flagDepFileShort):]
		case strings.HasPrefix(arg, flagDepFile):
			if inv.depFile != "" {
				return invocation{}, fmt.Errorf("only a single dependency file can be specified (%s)", arg)
			}
			inv.depFile = arg[len(flagDepFile):]
		case strings.HasPrefix(arg, flagMapFile):
			if inv.mapFile != "" {
				return invocation{}, fmt.Errorf("only a single map file can be specified (%s)", arg)
			}
			inv.mapFile = arg[len(flagMapFile):]
		case strings.HasPrefix(arg, flagCmdFile) || strings.HasPrefix(arg, flagCmdFileShort):
			// A response-file reference surviving resolution means a
			// response file referenced another one.
			return invocation{}, toolchain.ErrRecursiveResponseFile
		}
	}

	// --compile_only overrides --run_linker.
	switch {
	case isObjectCompilation:
		inv.kind = toolchain.KindObjectCompile
	case isLink:
		inv.kind = toolchain.KindLink
	case isPreprocess:
		inv.kind = toolchain.KindPreprocess
	default:
		inv.kind = toolchain.KindUnknown
	}

	return inv, nil
}

// BuildFiles implements toolchain.Adapter. The primary output role depends on
// the invocation kind; dependency and map files are optional extras.
func (a *Adapter) BuildFiles(resolved []string) (map[toolchain.Role]string, error) {
	inv, err := classify(resolved)
	if err != nil {
		return nil, err
	}

	if inv.outputFile == "" {
		return nil, fmt.Errorf("unable to determine the output file")
	}

	files := make(map[toolchain.Role]string)
	switch inv.kind {
	case toolchain.KindObjectCompile:
		files[toolchain.RoleObject] = inv.outputFile
	case toolchain.KindLink:
		files[toolchain.RoleLinkTarget] = inv.outputFile
	default:
		return nil, fmt.Errorf("unrecognized compilation type: %w", toolchain.ErrUnsupportedCommand)
	}

	if inv.depFile != "" {
		files[toolchain.RoleDep] = inv.depFile
	}
	if inv.mapFile != "" {
		files[toolchain.RoleMap] = inv.mapFile
	}

	return files, nil
}
