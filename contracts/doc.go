// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

// Package contracts defines the wire contracts exchanged between a
// backend process and the RocketWelder UI host over the external
// controls channel.
//
// The backend sends commands on the per-session
// "Ui.Commands-{sessionID}" stream: [DefineControl] places a new
// control in a named region, [ChangeControls] applies batched property
// diffs, and [DeleteControls] removes a batch of controls. The UI host
// sends events back on the matching "Ui.Events-{sessionID}" stream:
// [ButtonDown], [ButtonUp], [KeyDown], and [KeyUp].
//
// Every command and event carries a fresh random Id so that
// at-least-once delivery downstream can be deduplicated. Field names
// serialize in PascalCase to match the UI host's existing contract
// schema; this package must not change the wire shape without a
// coordinated UI release.
//
// This package is pure data: no transport, no engine state. The
// synchronization engine lives in package ui, the transport boundary
// in package eventbus.
package contracts
