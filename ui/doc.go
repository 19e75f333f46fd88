// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

// Package ui lets a backend process declaratively define, mutate, and
// remove controls rendered by a decoupled UI host, keeping both sides
// synchronized over an event-sourced command/event channel instead of
// direct RPC.
//
// The central type is [Service]. Application code creates controls
// through [Service.Factory], places them in named regions via
// [Service.Region], mutates typed properties on the control values it
// holds, and disposes controls when done. None of that touches the
// transport. All communication happens inside [Service.Tick], which
// the host calls on its own cadence (per processed frame, or on a
// timer). Each tick drains its inputs in a fixed order:
//
//  1. dispatch inbound events to their target controls
//  2. send one DefineControl command per newly placed control
//  3. send one batched DeleteControls command for disposed controls
//  4. send one batched ChangeControls command with every dirty
//     control's property diff
//
// Property changes are tracked by a per-control working/committed
// store; only the diff between the two crosses the wire, and the
// engine commits after each batch is handed to the bus so nothing is
// re-sent.
//
// # Concurrency
//
// Tick must be called by exactly one goroutine per Service. Everything
// else is safe from any goroutine: scheduling (placing and disposing
// controls) goes through compare-and-swap loops on immutable
// snapshots, so producers never block on the tick, and property
// setters take a short per-control mutex. A property mutation that
// lands while a tick is computing diffs may miss that tick's batch;
// it is guaranteed to be in the next one.
package ui
