// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package contracts

// ControlType identifies the kind of control a DefineControl command
// creates. The set is closed: the UI host only knows how to render
// these variants.
type ControlType string

const (
	// ControlTypeIconButton is a clickable button rendered from an
	// SVG path icon.
	ControlTypeIconButton ControlType = "IconButton"
	// ControlTypeArrowGrid is a four-way directional pad driven by
	// arrow key events.
	ControlTypeArrowGrid ControlType = "ArrowGrid"
	// ControlTypeLabel is a read-only text control.
	ControlTypeLabel ControlType = "Label"
)

// ArrowDirection is the direction reported by an ArrowGrid control.
type ArrowDirection string

const (
	ArrowUp    ArrowDirection = "Up"
	ArrowDown  ArrowDirection = "Down"
	ArrowLeft  ArrowDirection = "Left"
	ArrowRight ArrowDirection = "Right"
)

// Predefined region names. The engine treats region names as opaque
// tags; these constants exist for convenience and match the regions
// the stock UI host lays out.
const (
	RegionTop         = "Top"
	RegionTopLeft     = "TopLeft"
	RegionTopRight    = "TopRight"
	RegionBottom      = "Bottom"
	RegionBottomLeft  = "BottomLeft"
	RegionBottomRight = "BottomRight"
)

// Key codes sent by the UI host in KeyDown/KeyUp events. These are
// DOM KeyboardEvent.code values; only the four arrow codes map to a
// direction.
const (
	KeyCodeArrowUp    = "ArrowUp"
	KeyCodeArrowDown  = "ArrowDown"
	KeyCodeArrowLeft  = "ArrowLeft"
	KeyCodeArrowRight = "ArrowRight"
)

// DirectionForKeyCode maps an arrow key code to its ArrowDirection.
// Non-arrow codes return ok=false and are ignored by ArrowGrid
// controls.
func DirectionForKeyCode(code string) (ArrowDirection, bool) {
	switch code {
	case KeyCodeArrowUp:
		return ArrowUp, true
	case KeyCodeArrowDown:
		return ArrowDown, true
	case KeyCodeArrowLeft:
		return ArrowLeft, true
	case KeyCodeArrowRight:
		return ArrowRight, true
	default:
		return "", false
	}
}

// KeyCodeForDirection is the inverse of DirectionForKeyCode; the UI
// host uses it when synthesizing key events from rendered arrow pads.
func KeyCodeForDirection(direction ArrowDirection) string {
	switch direction {
	case ArrowUp:
		return KeyCodeArrowUp
	case ArrowDown:
		return KeyCodeArrowDown
	case ArrowLeft:
		return KeyCodeArrowLeft
	case ArrowRight:
		return KeyCodeArrowRight
	default:
		return ""
	}
}

// CommandStream returns the outbound command stream name for a
// session. The session identifier scopes both directions: a host
// mirrors exactly one session's commands and answers on that
// session's event stream.
func CommandStream(sessionID string) string {
	return "Ui.Commands-" + sessionID
}

// EventStream returns the inbound event stream name for a session.
func EventStream(sessionID string) string {
	return "Ui.Events-" + sessionID
}
