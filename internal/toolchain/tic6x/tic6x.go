// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

package tic6x

import (
	"regexp"
	"strings"

	"github.com/ccwrap/ccwrap/internal/fileutil"
	"github.com/ccwrap/ccwrap/internal/sysproc"
	"github.com/ccwrap/ccwrap/internal/toolchain"
)

// Flags the adapter recognizes on a cl6x command line.
const (
	flagCompileOnly   = "--compile_only"
	flagRunLinker     = "--run_linker"
	flagPreprocOnly   = "--preproc_only"
	flagOutputFile    = "--output_file="
	flagMapFile       = "--map_file="
	flagDepFile       = "--preproc_dependency="
	flagDepFileShort  = "-ppd="
	flagCmdFile       = "--cmd_file="
	flagCmdFileShort  = "-@"
	linkerCmdFileExt  = ".cmd"
	identityProbeFlag = "--help"
)

// binaryRe matches the cl6x family binaries (cl6x, cl6x.exe, arm-cl6x...).
var binaryRe = regexp.MustCompile(`.*cl6x.*`)

// Adapter implements toolchain.Adapter for the TI C6x tools.
type Adapter struct {
	runner  sysproc.Runner
	tempDir string
}

// Option customizes an Adapter.
type Option func(*Adapter)

// WithRunner substitutes the subprocess runner, mainly for tests.
func WithRunner(r sysproc.Runner) Option {
	return func(a *Adapter) { a.runner = r }
}

// WithTempDir places preprocessed output files in dir instead of the system
// temp directory.
func WithTempDir(dir string) Option {
	return func(a *Adapter) { a.tempDir = dir }
}

// New returns a ready-to-use adapter.
func New(opts ...Option) *Adapter {
	a := &Adapter{runner: sysproc.ExecRunner{}}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func init() {
	toolchain.Register(New())
}

// Name implements toolchain.Adapter.
func (a *Adapter) Name() string {
	return "tic6x"
}

// CanHandle reports whether argv0 names a cl6x binary, judged by the file
// part alone so install location doesn't matter.
func (a *Adapter) CanHandle(argv0 string) bool {
	cmd := strings.ToLower(fileutil.Base(argv0, true))
	return binaryRe.MatchString(cmd)
}
