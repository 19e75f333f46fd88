// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

// Package uihost renders a session's controls in the terminal.
//
// The host is the consuming side of the control protocol: it
// subscribes to the command stream, mirrors DefineControl,
// ChangeControls and DeleteControls into an in-memory control table,
// and draws the result with lipgloss. Keyboard interaction is
// translated back into ButtonDown/ButtonUp and KeyDown/KeyUp events
// published on the session's event stream.
//
// The production RocketWelder host is a web frontend; this package
// implements the same contract for terminals, which makes it both a
// usable operator surface and an end-to-end exerciser for the SDK.
package uihost
