// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT
// no-cloc

package tic6x

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccwrap/ccwrap/internal/arfile"
	"github.com/ccwrap/ccwrap/internal/hasher"
	"github.com/ccwrap/ccwrap/internal/sysproc"
	"github.com/ccwrap/ccwrap/internal/toolchain"
)

// fakeRunner stands in for the toolchain. When it sees an --output_file=
// argument it writes preprocessed output there, like cl6x in --preproc_only
// mode would.
type fakeRunner struct {
	exitCode int
	stdout   string
	output   string
	calls    [][]string
}

func (f *fakeRunner) Run(ctx context.Context, args []string) (sysproc.Result, error) {
	f.calls = append(f.calls, args)
	if f.exitCode == 0 {
		for _, a := range args {
			if strings.HasPrefix(a, flagOutputFile) {
				if err := os.WriteFile(a[len(flagOutputFile):], []byte(f.output), 0o644); err != nil {
					return sysproc.Result{}, err
				}
			}
		}
	}
	return sysproc.Result{ExitCode: f.exitCode, Stdout: f.stdout}, nil
}

func TestContentFingerprint_ObjectCompile(t *testing.T) {
	runner := &fakeRunner{output: "int x;"}
	a := New(WithRunner(runner), WithTempDir(t.TempDir()))

	got, err := a.ContentFingerprint(context.Background(),
		[]string{"cl6x", "--compile_only", "--output_file=out.o", "foo.c"})
	require.NoError(t, err)

	assert.Equal(t, "int x;", got)
}

func TestContentFingerprint_PreprocessorCommandShape(t *testing.T) {
	runner := &fakeRunner{output: "int x;"}
	a := New(WithRunner(runner), WithTempDir(t.TempDir()))

	_, err := a.ContentFingerprint(context.Background(), []string{
		"cl6x", "--compile_only", "--output_file=out.o",
		"-ppd=out.d", "--preproc_with_comment", "-O3", "foo.c",
	})
	require.NoError(t, err)
	require.Len(t, runner.calls, 1)

	call := runner.calls[0]
	// Compile/output/preprocessor-control flags are gone...
	assert.NotContains(t, call, "--compile_only")
	assert.NotContains(t, call, "--output_file=out.o")
	assert.NotContains(t, call, "-ppd=out.d")
	assert.NotContains(t, call, "--preproc_with_comment")
	// ...the rest survives, and preprocess-only mode is appended.
	assert.Contains(t, call, "-O3")
	assert.Contains(t, call, "foo.c")
	assert.Contains(t, call, flagPreprocOnly)
	assert.True(t, strings.HasPrefix(call[len(call)-1], flagOutputFile))
}

func TestContentFingerprint_PreprocessFailure(t *testing.T) {
	runner := &fakeRunner{exitCode: 1}
	a := New(WithRunner(runner), WithTempDir(t.TempDir()))

	_, err := a.ContentFingerprint(context.Background(),
		[]string{"cl6x", "--compile_only", "--output_file=out.o", "foo.c"})

	assert.ErrorIs(t, err, toolchain.ErrPreprocessFailed)
}

func TestContentFingerprint_TempFileRemoved(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{output: "int x;"}
	a := New(WithRunner(runner), WithTempDir(dir))

	_, err := a.ContentFingerprint(context.Background(),
		[]string{"cl6x", "--compile_only", "--output_file=out.o", "foo.c"})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestContentFingerprint_TempFileRemovedOnFailure(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{exitCode: 1}
	a := New(WithRunner(runner), WithTempDir(dir))

	_, err := a.ContentFingerprint(context.Background(),
		[]string{"cl6x", "--compile_only", "--output_file=out.o", "foo.c"})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// arMember mirrors the archive layout used by the arfile tests.
func arMember(name, timestamp string, content []byte) []byte {
	header := []byte(fmt.Sprintf("%-16s%-12s%-6s%-6s%-8s%-10d`\n",
		name, timestamp, "0", "0", "100644", len(content)))
	out := append(header, content...)
	if len(content)%2 == 1 {
		out = append(out, '\n')
	}
	return out
}

func TestContentFingerprint_LinkArchive(t *testing.T) {
	dir := t.TempDir()
	m := arMember("obj1.o", "1700000000", []byte("AAAA"))
	lib := writeFile(t, dir, "lib.a", append([]byte(arfile.Signature), m...))

	a := New()
	got, err := a.ContentFingerprint(context.Background(),
		[]string{"cl6x", "--run_linker", "--output_file=app.out", lib})
	require.NoError(t, err)

	want := hasher.New()
	want.Update(m[0:16])
	want.Update(m[28:60])
	want.Update([]byte("AAAA"))
	assert.Equal(t, want.Final(), got)

	// Changing only the timestamp field must not change the fingerprint.
	m2 := arMember("obj1.o", "1799999999", []byte("AAAA"))
	require.NoError(t, os.WriteFile(lib, append([]byte(arfile.Signature), m2...), 0o644))

	again, err := a.ContentFingerprint(context.Background(),
		[]string{"cl6x", "--run_linker", "--output_file=app.out", lib})
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestContentFingerprint_LinkCmdFile(t *testing.T) {
	dir := t.TempDir()
	extra := writeFile(t, dir, "extra.a", []byte("library bytes"))
	cmdFile := writeFile(t, dir, "link.cmd", []byte("-l\""+extra+"\"\n--reread_libs"))

	a := New()
	got, err := a.ContentFingerprint(context.Background(),
		[]string{"cl6x", "--run_linker", "--output_file=app.out", cmdFile})
	require.NoError(t, err)

	// The referenced library contributes content; the other line is
	// hashed as literal text.
	want := hasher.New()
	want.Update([]byte("library bytes"))
	want.Update([]byte("--reread_libs"))
	assert.Equal(t, want.Final(), got)
}

func TestContentFingerprint_LinkSkipsFlagsAndMissingFiles(t *testing.T) {
	dir := t.TempDir()
	obj := writeFile(t, dir, "a.o", []byte("object"))

	a := New()
	got, err := a.ContentFingerprint(context.Background(), []string{
		"cl6x", "--run_linker", "--output_file=app.out",
		"-z", filepath.Join(dir, "missing.o"), obj,
	})
	require.NoError(t, err)

	assert.Equal(t, hasher.Sum([]byte("object")), got)
}

func TestContentFingerprint_MalformedArchiveAborts(t *testing.T) {
	dir := t.TempDir()
	// Declared size exceeds the remaining bytes.
	bad := fmt.Sprintf("%-16s%-12s%-6s%-6s%-8s%-10d`\nAB",
		"obj1.o", "1700000000", "0", "0", "100644", 4096)
	lib := writeFile(t, dir, "lib.a", []byte(arfile.Signature+bad))

	a := New()
	_, err := a.ContentFingerprint(context.Background(),
		[]string{"cl6x", "--run_linker", "--output_file=app.out", lib})

	var parseErr *arfile.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestContentFingerprint_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "no classification markers",
			args: []string{"cl6x", "foo.c"},
		},
		{
			name: "compile without output file",
			args: []string{"cl6x", "--compile_only", "foo.c"},
		},
		{
			name: "link without output file",
			args: []string{"cl6x", "--run_linker", "lib.a"},
		},
		{
			name: "preprocess only",
			args: []string{"cl6x", "--preproc_only", "--output_file=foo.i", "foo.c"},
		},
	}

	a := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.ContentFingerprint(context.Background(), tt.args)
			assert.ErrorIs(t, err, toolchain.ErrUnsupportedCommand)
		})
	}
}
