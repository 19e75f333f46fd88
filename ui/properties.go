// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"maps"
	"sync"
)

// Tombstone is the diff value signaling that a property was removed
// and the UI host should delete it. The empty string is reserved for
// this: a property cannot hold "" as a real value.
const Tombstone = ""

// Properties is a control's two-generation property store. The
// working set holds the currently desired values, mutated by
// application code through the control's typed setters. The committed
// set holds the values last handed to the transport, mutated only by
// the engine. The difference between the two is what a tick sends.
//
// All methods are safe for concurrent use. The mutex protects map
// integrity only; a Set racing a Tick may land before or after that
// tick's Diff and is picked up by the next tick either way.
type Properties struct {
	mu        sync.Mutex
	working   map[string]string
	committed map[string]string
}

// newProperties creates a store whose working set is a copy of
// initial. Nothing is committed yet: every initial property is part
// of the first diff until the engine commits the definition.
func newProperties(initial map[string]string) *Properties {
	working := make(map[string]string, len(initial))
	for key, value := range initial {
		if value == Tombstone {
			continue
		}
		working[key] = value
	}
	return &Properties{
		working:   working,
		committed: make(map[string]string),
	}
}

// Set stores a working value. Setting the empty string is equivalent
// to Unset: the key is removed from the working set and, if it was
// previously committed, the next diff carries a tombstone for it.
func (p *Properties) Set(key, value string) {
	if value == Tombstone {
		p.Unset(key)
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.working[key] = value
}

// Unset removes a key from the working set.
func (p *Properties) Unset(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.working, key)
}

// Get returns the working value for key.
func (p *Properties) Get(key string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	value, ok := p.working[key]
	return value, ok
}

// GetDefault returns the working value for key, or fallback when the
// key is absent. Typed accessors use it to expose their defaults.
func (p *Properties) GetDefault(key, fallback string) string {
	if value, ok := p.Get(key); ok {
		return value
	}
	return fallback
}

// Working returns a copy of the working set. The engine embeds it in
// DefineControl commands; callers may inspect it freely.
func (p *Properties) Working() map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return maps.Clone(p.working)
}

// Diff computes the delta between working and committed: keys whose
// working value differs from (or is absent in) the committed set map
// to the new value; keys present only in the committed set map to
// [Tombstone]. An empty result means the control is clean.
func (p *Properties) Diff() map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()

	diff := make(map[string]string)
	for key, value := range p.working {
		if committed, ok := p.committed[key]; !ok || committed != value {
			diff[key] = value
		}
	}
	for key := range p.committed {
		if _, ok := p.working[key]; !ok {
			diff[key] = Tombstone
		}
	}
	return diff
}

// IsDirty reports whether Diff would be non-empty.
func (p *Properties) IsDirty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.working) != len(p.committed) {
		return true
	}
	for key, value := range p.working {
		if committed, ok := p.committed[key]; !ok || committed != value {
			return true
		}
	}
	return false
}

// Commit atomically replaces the committed set with the current
// working set. Only the engine calls this, immediately after a batch
// containing the control's state has been handed to the transport.
func (p *Properties) Commit() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.committed = maps.Clone(p.working)
}
