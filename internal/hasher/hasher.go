// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

// Package hasher provides the incremental digest accumulator used to build
// content fingerprints and cache keys.
package hasher

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
)

// Hasher accumulates bytes and produces a stable hex digest. Update may be
// called any number of times before Final.
type Hasher interface {
	Update(p []byte)
	Final() string
}

type md5Hasher struct {
	h hash.Hash
}

// New returns a fresh MD5-backed Hasher.
func New() Hasher {
	return &md5Hasher{h: md5.New()}
}

func (m *md5Hasher) Update(p []byte) {
	_, _ = m.h.Write(p)
}

func (m *md5Hasher) Final() string {
	return hex.EncodeToString(m.h.Sum(nil))
}

// Sum is a one-shot convenience for hashing a single byte slice.
func Sum(p []byte) string {
	h := New()
	h.Update(p)
	return h.Final()
}
