// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

// Package arfile hashes static-library archives for cache fingerprinting.
// Archive member headers embed a modification timestamp that changes on every
// rebuild without affecting the linked output, so the timestamp field is
// skipped while everything else (member identity, remaining metadata and the
// member content itself) feeds the digest. Non-archive files are hashed
// verbatim.
package arfile

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"

	"github.com/ccwrap/ccwrap/internal/fileutil"
	"github.com/ccwrap/ccwrap/internal/hasher"
)

// Signature is the fixed magic at the start of every AR archive.
const Signature = "!<arch>\n"

// Classic AR header layout. The 12-byte timestamp sits between the member
// identity and the rest of the metadata and is deliberately never hashed.
const (
	headerSize   = 60
	identitySize = 16 // member name
	metaOffset   = 28 // uid/gid/mode/size/end marker
	metaSize     = 32
	sizeOffset   = 48 // decimal ASCII, part of the metadata range above
	sizeLen      = 10
)

// ParseError describes a structurally invalid archive. A partial digest of a
// corrupt archive must never reach the cache, so any ParseError aborts the
// whole fingerprint.
type ParseError struct {
	Path   string
	Offset int64
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse AR file %s at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// IsArchive reports whether data begins with the AR signature.
func IsArchive(data []byte) bool {
	return len(data) >= len(Signature) && string(data[:len(Signature)]) == Signature
}

// HashData folds the cache-relevant bytes of an AR archive into h. The path
// argument is only used for error reporting.
func HashData(path string, data []byte, h hasher.Hasher) error {
	pos := int64(len(Signature))
	size := int64(len(data))

	for pos < size {
		if pos+headerSize > size {
			return &ParseError{Path: path, Offset: pos, Reason: "truncated member header"}
		}

		// Member identity and the metadata after the timestamp.
		h.Update(data[pos : pos+identitySize])
		h.Update(data[pos+metaOffset : pos+metaOffset+metaSize])

		field := strings.TrimSpace(string(data[pos+sizeOffset : pos+sizeOffset+sizeLen]))
		memberSize, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return &ParseError{Path: path, Offset: pos, Reason: fmt.Sprintf("bad size field %q", field)}
		}
		if memberSize < 0 {
			return &ParseError{Path: path, Offset: pos, Reason: "negative member size"}
		}
		if pos+headerSize+memberSize > size {
			return &ParseError{Path: path, Offset: pos, Reason: "member size runs past end of file"}
		}
		h.Update(data[pos+headerSize : pos+headerSize+memberSize])

		// Member data is padded to an even number of bytes.
		pos += headerSize + memberSize + (memberSize & 1)
	}

	return nil
}

// HashFile hashes the file at path, treating it as an archive when the
// signature matches and as an opaque blob otherwise.
func HashFile(path string, h hasher.Hasher) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read link input %s: %w", path, err)
	}

	if IsArchive(data) {
		log.Debugf("hashing AR: %s", fileutil.Base(path, false))
		return HashData(path, data, h)
	}

	log.Debugf("hashing: %s", fileutil.Base(path, false))
	h.Update(data)
	return nil
}
