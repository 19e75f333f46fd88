// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package eventbus

import (
	"context"
	"sync"
)

// subscriberChannelSize is the buffer for each subscriber's delivery
// channel. Must absorb a full tick's worth of commands without
// blocking the publisher; a tick emits at most a handful of batches,
// so this is generous.
const subscriberChannelSize = 256

// MemoryBus is an in-process Bus. Each subscriber gets a buffered
// channel drained by its own delivery goroutine, so publishers never
// run handler code and a slow handler cannot stall other subscribers.
//
// Delivery is per-stream FIFO and effectively exactly-once, which
// satisfies the at-least-once contract. MemoryBus is safe for
// concurrent use.
type MemoryBus struct {
	mu          sync.Mutex
	subscribers map[string][]*memorySubscription
	closed      bool
}

// NewMemoryBus creates an empty in-process bus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		subscribers: make(map[string][]*memorySubscription),
	}
}

type memorySubscription struct {
	bus     *MemoryBus
	stream  string
	channel chan Envelope
	done    chan struct{}
	once    sync.Once
}

// Publish implements Bus. If a subscriber's buffer is full, Publish
// blocks until there is room or ctx is done — MemoryBus favors
// losslessness over publisher latency, since its consumers are
// in-process and fast.
func (b *MemoryBus) Publish(ctx context.Context, stream string, env Envelope) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrBusClosed
	}
	targets := make([]*memorySubscription, len(b.subscribers[stream]))
	copy(targets, b.subscribers[stream])
	b.mu.Unlock()

	for _, sub := range targets {
		select {
		case sub.channel <- env:
		case <-sub.done:
			// Subscriber closed between the registry snapshot and
			// the send. Not an error: it simply no longer listens.
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Subscribe implements Bus.
func (b *MemoryBus) Subscribe(stream string, fn Handler) (Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrBusClosed
	}

	sub := &memorySubscription{
		bus:     b,
		stream:  stream,
		channel: make(chan Envelope, subscriberChannelSize),
		done:    make(chan struct{}),
	}
	b.subscribers[stream] = append(b.subscribers[stream], sub)

	go func() {
		for {
			select {
			case env := <-sub.channel:
				fn(env)
			case <-sub.done:
				return
			}
		}
	}()

	return sub, nil
}

// Close shuts the bus down. Subsequent Publish and Subscribe calls
// return ErrBusClosed; existing subscriptions stop delivering.
func (b *MemoryBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, subs := range b.subscribers {
		for _, sub := range subs {
			sub.once.Do(func() { close(sub.done) })
		}
	}
	b.subscribers = make(map[string][]*memorySubscription)
}

// Close implements Subscription. Close is idempotent; envelopes still
// buffered when Close is called are discarded.
func (s *memorySubscription) Close() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()

	streamSubs := s.bus.subscribers[s.stream]
	for i, existing := range streamSubs {
		if existing == s {
			s.bus.subscribers[s.stream] = append(streamSubs[:i], streamSubs[i+1:]...)
			break
		}
	}
	if len(s.bus.subscribers[s.stream]) == 0 {
		delete(s.bus.subscribers, s.stream)
	}
	s.once.Do(func() { close(s.done) })
}
