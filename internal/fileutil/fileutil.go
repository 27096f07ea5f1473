// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

// Package fileutil holds the small set of filesystem primitives the toolchain
// adapters depend on: reads, existence checks, extensions and scoped
// temporary files.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Ext returns the lower-cased extension of path, including the dot.
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// Base returns the file part of path, optionally with the extension stripped.
func Base(path string, stripExt bool) string {
	b := filepath.Base(path)
	if stripExt {
		b = strings.TrimSuffix(b, filepath.Ext(b))
	}
	return b
}

// TempFile is a temporary file whose lifetime is tied to the scope that
// created it. Callers must arrange for Remove to run on every exit path.
type TempFile struct {
	path string
}

// NewTempFile creates an empty temporary file in dir (or the system temp
// directory if dir is empty) with the given suffix.
func NewTempFile(dir, suffix string) (*TempFile, error) {
	f, err := os.CreateTemp(dir, "ccwrap-*"+suffix)
	if err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return nil, err
	}
	return &TempFile{path: f.Name()}, nil
}

// Path returns the location of the temporary file.
func (t *TempFile) Path() string {
	return t.path
}

// Remove deletes the temporary file, best effort. Removing an
// already-removed file is not an error.
func (t *TempFile) Remove() {
	_ = os.Remove(t.path)
}
