// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT
// no-cloc

package tic6x

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelevantArgs_BinaryReducedToFileName(t *testing.T) {
	a := New()
	got := a.RelevantArgs([]string{"/opt/ti/bin/cl6x", "-O3"})
	assert.Equal(t, []string{"cl6x", "-O3"}, got)
}

func TestRelevantArgs_DropsUnwantedFlags(t *testing.T) {
	a := New()
	got := a.RelevantArgs([]string{
		"cl6x",
		"-I/usr/include",
		"--include_path=/opt/ti/include",
		"--preinclude=pre.h",
		"-DFOO=1",
		"--define=BAR=2",
		"--c_file=foo.c",
		"--cpp_file=foo.cpp",
		"--output_file=foo.o",
		"--map_file=foo.map",
		"-ppd=foo.d",
		"--preproc_dependency=foo.d",
		"-O3",
		"--symdebug:none",
	})

	assert.Equal(t, []string{"cl6x", "-O3", "--symdebug:none"}, got)
}

func TestRelevantArgs_DropsExistingInputFiles(t *testing.T) {
	src := writeFile(t, t.TempDir(), "foo.c", []byte("int x;"))

	a := New()
	got := a.RelevantArgs([]string{"cl6x", "-O3", src, "nonexistent.c"})

	// The on-disk input is dropped; a path that doesn't resolve is kept
	// since it can't be an input file.
	assert.Equal(t, []string{"cl6x", "-O3", "nonexistent.c"}, got)
}

func TestRelevantArgs_Idempotent(t *testing.T) {
	src := writeFile(t, t.TempDir(), "foo.c", []byte("int x;"))

	a := New()
	once := a.RelevantArgs([]string{"/opt/ti/bin/cl6x", "-O3", "-DX", src, "--compile_only"})
	twice := a.RelevantArgs(once)

	assert.Equal(t, once, twice)
}

func TestRelevantArgs_OrderPreserved(t *testing.T) {
	a := New()
	got := a.RelevantArgs([]string{"cl6x", "-z", "--reread_libs", "-O2"})
	assert.Equal(t, []string{"cl6x", "-z", "--reread_libs", "-O2"}, got)
}
