// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

// Package linkcmd resolves linker command files for fingerprinting. Lines of
// the form -l"path" name library files whose content, not path, determines
// the link output, so those are routed through the archive-aware hasher.
// Every other line is hashed as literal text because directives such as
// symbol ordering matter byte-for-byte.
package linkcmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/ccwrap/ccwrap/internal/arfile"
	"github.com/ccwrap/ccwrap/internal/hasher"
)

// libraryPrefix marks a line as a referenced library file.
const libraryPrefix = "-l"

// Hash folds the content of the linker command file at path into h.
func Hash(path string, h hasher.Hasher) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read linker command file %s: %w", path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, libraryPrefix) {
			name := unquote(line[len(libraryPrefix):])
			log.Debugf("link cmd file references %s", name)
			if err := arfile.HashFile(name, h); err != nil {
				return err
			}
			continue
		}
		h.Update([]byte(line))
	}

	return nil
}

// unquote strips one level of surrounding double quotes, the form the TI
// tools emit (-l"/foo/bar.lib").
func unquote(s string) string {
	if len(s) > 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
