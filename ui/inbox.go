// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"sync/atomic"

	"github.com/rocket-welder/sdk-go/contracts"
)

// inbox collects inbound events between ticks. The transport's
// subscription callback is the usual single producer, but the same
// copy-and-CAS technique as the scheduler keeps it correct if a
// substrate delivers concurrently. Arrival order is preserved within
// a batch.
type inbox struct {
	pending atomic.Pointer[[]contracts.Event]
}

var emptyEvents = []contracts.Event{}

func newInbox() *inbox {
	q := &inbox{}
	q.pending.Store(&emptyEvents)
	return q
}

// enqueue appends an event to the pending batch.
func (q *inbox) enqueue(event contracts.Event) {
	for {
		current := q.pending.Load()
		next := make([]contracts.Event, len(*current)+1)
		copy(next, *current)
		next[len(*current)] = event
		if q.pending.CompareAndSwap(current, &next) {
			return
		}
	}
}

// drain atomically takes the pending batch, leaving the inbox empty.
func (q *inbox) drain() []contracts.Event {
	return *q.pending.Swap(&emptyEvents)
}
