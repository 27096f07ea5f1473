// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

package cacheutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/ccwrap/ccwrap/internal/hasher"
	"github.com/ccwrap/ccwrap/internal/toolchain"
)

// Entry locates one cached invocation on disk. Key is the clear-text composed
// key; EncodedKey is the hashed directory name.
type Entry struct {
	Key        string
	EncodedKey string
	Path       string
}

// Dir resolves the base cache directory.
// Precedence:
//  1. CCWRAP_CACHE_DIR, if set and non-empty
//  2. os.UserCacheDir()/ccwrap
//
// Returns ("", false) if a base cannot be resolved (treat as disabled).
func Dir() (string, bool) {
	if c, ok := os.LookupEnv("CCWRAP_CACHE_DIR"); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "ccwrap"), true
	}
	return "", false
}

// Enabled returns true unless CCWRAP_CACHE explicitly disables it ("0"/"false").
func Enabled() bool {
	enabled, _ := os.LookupEnv("CCWRAP_CACHE")
	return enabled == "" || (enabled != "0" && enabled != "false")
}

// EnsureBaseDir creates the base cache directory if caching is enabled and
// a base path can be resolved. Returns the path, whether it is usable, and an
// error if creation failed.
func EnsureBaseDir() (string, bool, error) {
	if !Enabled() {
		return "", false, nil
	}
	base, ok := Dir()
	if !ok {
		return "", false, nil
	}
	if err := os.MkdirAll(base, 0o755); err != nil { //nolint:mnd
		return base, false, fmt.Errorf("failed to create cache base directory: %w", err)
	}
	return base, true, nil
}

// ComposeKey combines the three manifest fragments into the final clear-text
// cache key. Fragments are length-framed so adjacent fields can't collide.
func ComposeKey(m *toolchain.Manifest) string {
	h := hasher.New()
	update := func(s string) {
		h.Update([]byte(fmt.Sprintf("%d:", len(s))))
		h.Update([]byte(s))
	}
	update(m.Identity)
	for _, arg := range m.RelevantArgs {
		update(arg)
	}
	update(m.Fingerprint)
	return h.Final()
}

// EntryFor returns the Entry an invocation manifest maps to, and whether it
// already exists on disk. Entries are organized by toolchain name, then by
// the encoded key.
func EntryFor(m *toolchain.Manifest) (*Entry, bool) {
	base, ok := Dir()
	if !ok {
		return nil, false
	}
	key := ComposeKey(m)
	encoded := encodeKey(key)
	p := filepath.Join(base, m.Toolchain, encoded)
	e := &Entry{Key: key, EncodedKey: encoded, Path: p}
	if info, err := os.Stat(p); err == nil && info.IsDir() {
		return e, true
	}
	return e, false
}

// Restore copies the entry's stored artifacts to the build files the
// invocation declared. Every declared role must be present in the entry.
func (e *Entry) Restore(files map[toolchain.Role]string) error {
	for role, dest := range files {
		src := filepath.Join(e.Path, string(role))
		if err := copyFile(src, dest); err != nil {
			return fmt.Errorf("failed to restore %s file: %w", role, err)
		}
		log.Debugf("restored %s -> %s", role, dest)
	}
	return nil
}

// Store copies the declared build files into the entry, one artifact per
// role. A missing source file is fatal; the entry is removed so a partial
// result is never served later.
func (e *Entry) Store(files map[toolchain.Role]string) error {
	if !Enabled() {
		return nil // treat as disabled.
	}
	if err := os.MkdirAll(e.Path, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache entry directory: %w", err)
	}
	for role, src := range files {
		if err := copyFile(src, filepath.Join(e.Path, string(role))); err != nil {
			_ = os.RemoveAll(e.Path)
			return fmt.Errorf("failed to store %s file: %w", role, err)
		}
	}
	return nil
}

// Purge removes files older than the provided number of hours.
// If hours <= 0 or the cache dir cannot be resolved, it is a no-op.
func Purge(hours int) error {
	if hours <= 0 {
		log.Debug("cache cleaning disabled")
		return nil
	}
	base, ok := Dir()
	if !ok {
		return nil
	}
	maxAge := time.Duration(hours) * time.Hour
	if err := filepath.Walk(base, func(path string, info os.FileInfo, _ error) error {
		if info == nil {
			return nil
		}
		if !info.IsDir() && time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err == nil {
				log.Debugf("removed cache file %s", path)
			} else {
				log.WithError(err).Warnf("failed to remove cache file %s", path)
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	return nil
}

// CacheStats summarizes the on-disk cache.
type CacheStats struct {
	Entries   int
	TotalSize int64
}

// Stats walks the cache tree counting entries (one per encoded-key directory)
// and total artifact bytes.
func Stats() (CacheStats, error) {
	var stats CacheStats
	base, ok := Dir()
	if !ok {
		return stats, nil
	}
	err := filepath.Walk(base, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			// Entry dirs sit two levels below base: <toolchain>/<key>.
			rel, relErr := filepath.Rel(base, path)
			if relErr == nil && depth(rel) == 2 {
				stats.Entries++
			}
			return nil
		}
		stats.TotalSize += info.Size()
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("failed to walk cache: %w", err)
	}
	return stats, nil
}

func depth(rel string) int {
	if rel == "." || rel == "" {
		return 0
	}
	return len(strings.Split(filepath.ToSlash(rel), "/"))
}

// encodeKey hashes k and returns the hex string used as the directory name.
func encodeKey(k string) string {
	return hasher.Sum([]byte(k))
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
