// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package eventbus

import (
	"context"
	"errors"
)

// Envelope is the unit of transfer on a stream. Data is an opaque
// payload (JSON for the UI control contracts); Type is the tag a
// consumer dispatches on; ID is unique per message so at-least-once
// consumers can deduplicate.
type Envelope struct {
	ID   string
	Type string
	Data []byte
}

// Handler receives envelopes delivered to a subscription. Handlers
// run on the bus's delivery goroutine for that subscription: they
// must not block indefinitely, and envelopes for one subscription
// arrive in publish order.
type Handler func(Envelope)

// Bus is the minimal transport contract the engine consumes.
type Bus interface {
	// Publish hands an envelope to the substrate for delivery on the
	// given stream. Fire-and-forget: a nil return means the substrate
	// accepted the envelope, not that any consumer has seen it.
	Publish(ctx context.Context, stream string, env Envelope) error

	// Subscribe registers fn for every envelope subsequently
	// published on the stream. Delivery is in publish order with
	// at-least-once semantics.
	Subscribe(stream string, fn Handler) (Subscription, error)
}

// Subscription is a handle to an active stream subscription.
type Subscription interface {
	// Close cancels the subscription and releases its delivery
	// resources. Close is idempotent. Envelopes already buffered may
	// still be delivered to the handler after Close returns.
	Close()
}

// ErrBusClosed is returned by Publish and Subscribe after the bus has
// been shut down.
var ErrBusClosed = errors.New("eventbus: bus is closed")
