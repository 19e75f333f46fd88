// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

// Package eventbus defines the minimal publish/subscribe contract the
// UI controls engine consumes, plus two collaborators: an in-process
// [MemoryBus] for tests and single-process demos, and a disk
// [Journal] that records published envelopes for later replay.
//
// The engine does not depend on any particular substrate. It assumes
// at-least-once delivery with per-stream ordering and treats Publish
// as fire-and-forget: once the envelope is handed to the bus, the
// engine proceeds without waiting for downstream acknowledgment.
// Durability, retry, and backoff — if a deployment wants them —
// belong to the Bus implementation, never to the engine.
//
// Streams are flat string names, scoped per session in both
// directions: outbound control commands go to the stream returned by
// [contracts.CommandStream], inbound events arrive on the one
// returned by [contracts.EventStream].
package eventbus
