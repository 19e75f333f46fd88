// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"maps"
	"sync/atomic"
)

// definition is a pending DefineControl: the control plus the region
// it was added to.
type definition struct {
	control Control
	region  string
}

// scheduler holds the two multi-producer/single-consumer queues
// feeding a tick: pending definitions (ordered) and pending deletions
// (a set — duplicate ids collapse).
//
// Both queues are lock-free. Producers append by copying the current
// immutable snapshot and publishing the copy with a compare-and-swap,
// retrying on conflict; the consumer drains by atomically swapping in
// the empty snapshot. Producers therefore never block on the tick,
// which matters because controls may be disposed from finalizers and
// arbitrary background goroutines.
type scheduler struct {
	defines atomic.Pointer[[]definition]
	deletes atomic.Pointer[map[string]struct{}]
}

var (
	emptyDefines = []definition{}
	emptyDeletes = map[string]struct{}{}
)

func newScheduler() *scheduler {
	s := &scheduler{}
	s.defines.Store(&emptyDefines)
	s.deletes.Store(&emptyDeletes)
	return s
}

// scheduleDefine appends a pending definition. Safe for concurrent
// producers.
func (s *scheduler) scheduleDefine(control Control, region string) {
	for {
		current := s.defines.Load()
		next := make([]definition, len(*current)+1)
		copy(next, *current)
		next[len(*current)] = definition{control: control, region: region}
		if s.defines.CompareAndSwap(current, &next) {
			return
		}
	}
}

// scheduleDelete adds an id to the pending-deletions set. Idempotent
// within one drain window; safe for concurrent producers.
func (s *scheduler) scheduleDelete(id string) {
	for {
		current := s.deletes.Load()
		if _, ok := (*current)[id]; ok {
			return
		}
		next := make(map[string]struct{}, len(*current)+1)
		maps.Copy(next, *current)
		next[id] = struct{}{}
		if s.deletes.CompareAndSwap(current, &next) {
			return
		}
	}
}

// drainDefines atomically takes the pending definitions, leaving the
// queue empty. Each returned definition must be acted on exactly
// once.
func (s *scheduler) drainDefines() []definition {
	return *s.defines.Swap(&emptyDefines)
}

// drainDeletes atomically takes the pending-deletions set, leaving it
// empty. Draining twice never returns the same id twice.
func (s *scheduler) drainDeletes() map[string]struct{} {
	return *s.deletes.Swap(&emptyDeletes)
}
