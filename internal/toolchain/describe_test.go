// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT
// no-cloc

package toolchain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAdapter is a minimal Adapter for exercising the registry and the
// Describe pipeline without a real toolchain.
type stubAdapter struct {
	name     string
	handles  string
	resolved []string
	files    map[Role]string
	identity string
	digest   string

	resolveErr error
	filesErr   error
	digestErr  error
}

func (s *stubAdapter) Name() string { return s.name }

func (s *stubAdapter) CanHandle(argv0 string) bool { return argv0 == s.handles }

func (s *stubAdapter) RelevantArgs(r []string) []string { return r }

func (s *stubAdapter) ResolveArgs(args []string) ([]string, error) {
	if s.resolveErr != nil {
		return nil, s.resolveErr
	}
	if s.resolved != nil {
		return s.resolved, nil
	}
	return args, nil
}

func (s *stubAdapter) BuildFiles(resolved []string) (map[Role]string, error) {
	return s.files, s.filesErr
}

func (s *stubAdapter) ContentFingerprint(ctx context.Context, resolved []string) (string, error) {
	return s.digest, s.digestErr
}

func (s *stubAdapter) Identity(ctx context.Context, resolved []string) (string, error) {
	return s.identity, nil
}

func TestLookup(t *testing.T) {
	stub := &stubAdapter{name: "stub", handles: "stubcc"}
	Register(stub)

	got, err := Lookup("stubcc")
	require.NoError(t, err)
	assert.Equal(t, stub, got)

	_, err = Lookup("no-such-compiler")
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	stub := &stubAdapter{
		name:     "stub2",
		handles:  "stubcc2",
		files:    map[Role]string{RoleObject: "out.o"},
		identity: "stub compiler v1",
		digest:   "abc123",
	}
	Register(stub)

	m, err := Describe(context.Background(), []string{"stubcc2", "--flag", "in.c"})
	require.NoError(t, err)

	assert.Equal(t, "stub2", m.Toolchain)
	assert.Equal(t, "stub compiler v1", m.Identity)
	assert.Equal(t, "abc123", m.Fingerprint)
	assert.Equal(t, []string{"stubcc2", "--flag", "in.c"}, m.RelevantArgs)
	assert.Equal(t, map[Role]string{RoleObject: "out.o"}, m.BuildFiles)
}

func TestDescribe_EmptyArgs(t *testing.T) {
	_, err := Describe(context.Background(), nil)
	assert.Error(t, err)
}

func TestDescribe_PropagatesErrors(t *testing.T) {
	stub := &stubAdapter{
		name:     "stub3",
		handles:  "stubcc3",
		filesErr: ErrUnsupportedCommand,
	}
	Register(stub)

	_, err := Describe(context.Background(), []string{"stubcc3"})
	assert.ErrorIs(t, err, ErrUnsupportedCommand)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "object-compile", KindObjectCompile.String())
	assert.Equal(t, "link", KindLink.String())
	assert.Equal(t, "preprocess", KindPreprocess.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
