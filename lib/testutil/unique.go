// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"sync/atomic"
)

var uniqueCounter atomic.Uint64

// UniqueID returns a string of the form "prefix-N" where N is a
// monotonically increasing integer. Use this instead of time.Now()
// when tests need unique control IDs, session IDs, or stream names
// that must be distinguishable across concurrently running tests.
//
//	id := testutil.UniqueID("btn")      // "btn-1", "btn-2", ...
//	session := testutil.UniqueID("sess") // "sess-3", ...
func UniqueID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, uniqueCounter.Add(1))
}
