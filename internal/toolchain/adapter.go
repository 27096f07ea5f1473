// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

package toolchain

import (
	"context"
	"errors"
)

// Kind classifies what a resolved invocation asks the toolchain to do.
type Kind int

const (
	KindUnknown Kind = iota
	KindPreprocess
	KindObjectCompile
	KindLink
)

func (k Kind) String() string {
	switch k {
	case KindPreprocess:
		return "preprocess"
	case KindObjectCompile:
		return "object-compile"
	case KindLink:
		return "link"
	default:
		return "unknown"
	}
}

// Role names the logical slot a declared build file fills. The cache engine
// must populate every declared file on a hit.
type Role string

const (
	RoleObject     Role = "object"
	RoleLinkTarget Role = "linktarget"
	RoleDep        Role = "dep"
	RoleMap        Role = "map"
)

// Fatal classification and pipeline errors. All of them abort the current
// invocation; the caller decides whether to fall back to an uncached run.
var (
	ErrRecursiveResponseFile = errors.New("recursive response files are not supported")
	ErrUnsupportedCommand    = errors.New("unsupported compilation command")
	ErrPreprocessFailed      = errors.New("preprocessing command was unsuccessful")
	ErrIdentityProbeFailed   = errors.New("unable to get the compiler version information string")
)

// Adapter is the per-toolchain-family contract. Implementations are stateless
// with respect to invocations: every method takes the argument list it
// operates on, and nothing persists between calls.
type Adapter interface {
	// Name identifies the adapter in logs and manifests.
	Name() string

	// CanHandle reports whether this adapter recognizes the toolchain
	// binary named by argv0.
	CanHandle(argv0 string) bool

	// ResolveArgs expands response-file references in the raw argument
	// list, preserving the order of everything else.
	ResolveArgs(args []string) ([]string, error)

	// BuildFiles extracts the declared output/dependency/map paths from
	// the resolved argument list, keyed by role.
	BuildFiles(resolved []string) (map[Role]string, error)

	// ContentFingerprint computes the cache-relevant content
	// representation of the invocation's inputs: preprocessed source text
	// for an object compilation, a digest of all link inputs for a link.
	ContentFingerprint(ctx context.Context, resolved []string) (string, error)

	// RelevantArgs filters the resolved argument list down to the stable
	// fragment of the cache key.
	RelevantArgs(resolved []string) []string

	// Identity returns a string that uniquely characterizes the exact
	// toolchain build.
	Identity(ctx context.Context, resolved []string) (string, error)
}
