// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Event is implemented by the inbound event types the UI host sends
// on the session event stream. TargetControl is the ID of the control
// the event is addressed to.
type Event interface {
	EventName() string
	TargetControl() string
}

// ButtonDown reports a press on an IconButton.
type ButtonDown struct {
	ID        string `json:"Id"`
	ControlID string `json:"ControlId"`
}

// EventName implements Event.
func (ButtonDown) EventName() string { return "ButtonDown" }

// TargetControl implements Event.
func (e ButtonDown) TargetControl() string { return e.ControlID }

// ButtonUp reports a release on an IconButton.
type ButtonUp struct {
	ID        string `json:"Id"`
	ControlID string `json:"ControlId"`
}

// EventName implements Event.
func (ButtonUp) EventName() string { return "ButtonUp" }

// TargetControl implements Event.
func (e ButtonUp) TargetControl() string { return e.ControlID }

// KeyDown reports a key press routed to a control. Code is a DOM
// KeyboardEvent.code value; ArrowGrid controls map the four arrow
// codes to directions and ignore everything else.
type KeyDown struct {
	ID        string `json:"Id"`
	ControlID string `json:"ControlId"`
	Code      string `json:"Code"`
}

// EventName implements Event.
func (KeyDown) EventName() string { return "KeyDown" }

// TargetControl implements Event.
func (e KeyDown) TargetControl() string { return e.ControlID }

// KeyUp reports a key release routed to a control.
type KeyUp struct {
	ID        string `json:"Id"`
	ControlID string `json:"ControlId"`
	Code      string `json:"Code"`
}

// EventName implements Event.
func (KeyUp) EventName() string { return "KeyUp" }

// TargetControl implements Event.
func (e KeyUp) TargetControl() string { return e.ControlID }

// ErrUnknownEventType is returned by DecodeEvent for event type tags
// this SDK version does not know. Subscribers drop such events: the
// UI host may be newer than the backend, and unknown events are not
// an error condition.
var ErrUnknownEventType = errors.New("contracts: unknown event type")

// DecodeEvent parses the JSON payload of an inbound event envelope.
// typeName is the envelope's type tag (the value EventName returns on
// the sending side).
func DecodeEvent(typeName string, data []byte) (Event, error) {
	switch typeName {
	case "ButtonDown":
		var e ButtonDown
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("contracts: decoding ButtonDown event: %w", err)
		}
		return e, nil
	case "ButtonUp":
		var e ButtonUp
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("contracts: decoding ButtonUp event: %w", err)
		}
		return e, nil
	case "KeyDown":
		var e KeyDown
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("contracts: decoding KeyDown event: %w", err)
		}
		return e, nil
	case "KeyUp":
		var e KeyUp
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("contracts: decoding KeyUp event: %w", err)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, typeName)
	}
}

// NewButtonDown builds a ButtonDown event with a fresh ID.
func NewButtonDown(controlID string) ButtonDown {
	return ButtonDown{ID: NewID(), ControlID: controlID}
}

// NewButtonUp builds a ButtonUp event with a fresh ID.
func NewButtonUp(controlID string) ButtonUp {
	return ButtonUp{ID: NewID(), ControlID: controlID}
}

// NewKeyDown builds a KeyDown event with a fresh ID.
func NewKeyDown(controlID, code string) KeyDown {
	return KeyDown{ID: NewID(), ControlID: controlID, Code: code}
}

// NewKeyUp builds a KeyUp event with a fresh ID.
func NewKeyUp(controlID, code string) KeyUp {
	return KeyUp{ID: NewID(), ControlID: controlID, Code: code}
}
