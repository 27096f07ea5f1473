// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

package toolchain

import (
	"fmt"

	"github.com/apex/log"
)

// The registry is populated once during init and read-only afterwards, so it
// is safe to share across concurrent invocations.
var registry []Adapter

// Register adds an adapter to the lookup set. Called from the adapter
// packages' init functions.
func Register(a Adapter) {
	registry = append(registry, a)
}

// Lookup selects the adapter that handles the toolchain binary named by
// argv0, the first element of the raw command line.
func Lookup(argv0 string) (Adapter, error) {
	for _, a := range registry {
		if a.CanHandle(argv0) {
			log.Debugf("adapter %s handles %s", a.Name(), argv0)
			return a, nil
		}
	}
	return nil, fmt.Errorf("no toolchain adapter handles %s", argv0)
}

// Registered returns the names of all registered adapters.
func Registered() []string {
	names := make([]string, 0, len(registry))
	for _, a := range registry {
		names = append(names, a.Name())
	}
	return names
}
