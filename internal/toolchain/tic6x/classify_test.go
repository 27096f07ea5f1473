// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT
// no-cloc

package tic6x

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccwrap/ccwrap/internal/toolchain"
)

func TestClassify_Kinds(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want toolchain.Kind
	}{
		{
			name: "object compile",
			args: []string{"cl6x", "--compile_only", "--output_file=foo.o", "foo.c"},
			want: toolchain.KindObjectCompile,
		},
		{
			name: "link",
			args: []string{"cl6x", "--run_linker", "--output_file=app.out", "lib.a"},
			want: toolchain.KindLink,
		},
		{
			name: "compile only overrides run linker",
			args: []string{"cl6x", "--run_linker", "--compile_only", "--output_file=foo.o"},
			want: toolchain.KindObjectCompile,
		},
		{
			name: "preprocess only",
			args: []string{"cl6x", "--preproc_only", "--output_file=foo.i", "foo.c"},
			want: toolchain.KindPreprocess,
		},
		{
			name: "nothing recognized",
			args: []string{"cl6x", "foo.c"},
			want: toolchain.KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := classify(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, inv.kind)
		})
	}
}

func TestClassify_DeclaredFiles(t *testing.T) {
	inv, err := classify([]string{
		"cl6x", "--compile_only",
		"--output_file=foo.o",
		"--preproc_dependency=foo.d",
		"--map_file=foo.map",
	})
	require.NoError(t, err)

	assert.Equal(t, "foo.o", inv.outputFile)
	assert.Equal(t, "foo.d", inv.depFile)
	assert.Equal(t, "foo.map", inv.mapFile)
}

func TestClassify_ShortDepFlag(t *testing.T) {
	inv, err := classify([]string{"cl6x", "--compile_only", "--output_file=foo.o", "-ppd=foo.d"})
	require.NoError(t, err)
	assert.Equal(t, "foo.d", inv.depFile)
}

func TestClassify_DuplicateDeclarations(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "duplicate output file",
			args: []string{"cl6x", "--output_file=a.o", "--output_file=b.o"},
		},
		{
			name: "duplicate dependency file",
			args: []string{"cl6x", "-ppd=a.d", "--preproc_dependency=b.d"},
		},
		{
			name: "duplicate map file",
			args: []string{"cl6x", "--map_file=a.map", "--map_file=b.map"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := classify(tt.args)
			assert.ErrorContains(t, err, "only a single")
		})
	}
}

func TestClassify_RecursiveResponseFileRejected(t *testing.T) {
	for _, arg := range []string{"--cmd_file=inner.rsp", "-@inner.rsp"} {
		_, err := classify([]string{"cl6x", "--compile_only", arg})
		assert.ErrorIs(t, err, toolchain.ErrRecursiveResponseFile)
	}
}

func TestBuildFiles_ObjectCompile(t *testing.T) {
	a := New()
	files, err := a.BuildFiles([]string{"cl6x", "--compile_only", "--output_file=out.o", "foo.c"})
	require.NoError(t, err)

	assert.Equal(t, map[toolchain.Role]string{toolchain.RoleObject: "out.o"}, files)
}

func TestBuildFiles_LinkWithExtras(t *testing.T) {
	a := New()
	files, err := a.BuildFiles([]string{
		"cl6x", "--run_linker",
		"--output_file=app.out",
		"--map_file=app.map",
		"-ppd=app.d",
	})
	require.NoError(t, err)

	assert.Equal(t, map[toolchain.Role]string{
		toolchain.RoleLinkTarget: "app.out",
		toolchain.RoleDep:        "app.d",
		toolchain.RoleMap:        "app.map",
	}, files)
}

func TestBuildFiles_MissingOutput(t *testing.T) {
	a := New()
	_, err := a.BuildFiles([]string{"cl6x", "--compile_only", "foo.c"})
	assert.ErrorContains(t, err, "output file")
}

func TestBuildFiles_UnrecognizedKind(t *testing.T) {
	a := New()
	_, err := a.BuildFiles([]string{"cl6x", "--output_file=foo.o", "foo.c"})
	assert.ErrorIs(t, err, toolchain.ErrUnsupportedCommand)
}

func TestBuildFiles_DuplicateOutputReturnsNoFiles(t *testing.T) {
	a := New()
	files, err := a.BuildFiles([]string{"cl6x", "--compile_only", "--output_file=a.o", "--output_file=b.o"})
	assert.Error(t, err)
	assert.Nil(t, files)
}
