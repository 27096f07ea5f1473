// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

package tic6x

import (
	"strings"

	"github.com/apex/log"

	"github.com/ccwrap/ccwrap/internal/fileutil"
)

// unwantedPrefixes match arguments that do not change how preprocessed code
// becomes object code: include paths, defines, source-file roles and the
// various declared output paths. They are already accounted for elsewhere in
// the key (or irrelevant to it).
var unwantedPrefixes = []string{
	"-I",
	"--include",
	"--preinclude=",
	"-D",
	"--define=",
	"--c_file=",
	"--cpp_file=",
	flagOutputFile,
	flagMapFile,
	flagDepFileShort,
	flagDepFile,
}

// RelevantArgs implements toolchain.Adapter. Element 0 is reduced to the
// toolchain's file name so the same compiler cache-matches regardless of
// install path; input file paths are dropped because their content is folded
// into the fingerprint. Order is preserved since cl6x flags can be
// positionally sensitive.
func (a *Adapter) RelevantArgs(resolved []string) []string {
	filtered := []string{fileutil.Base(resolved[0], false)}

	for _, arg := range resolved[1:] {
		if arg == "" || isUnwantedArg(arg) {
			continue
		}
		// Input files may carry absolute paths that must not leak into
		// the key.
		if arg[0] != '-' && fileutil.Exists(arg) {
			continue
		}
		filtered = append(filtered, arg)
	}

	log.Debugf("filtered arguments: %v", filtered)
	return filtered
}

func isUnwantedArg(arg string) bool {
	for _, prefix := range unwantedPrefixes {
		if strings.HasPrefix(arg, prefix) {
			return true
		}
	}
	return false
}
