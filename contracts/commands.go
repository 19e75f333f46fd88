// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package contracts

import (
	"crypto/rand"
	"encoding/hex"
)

// Command is implemented by the three outbound command types. The
// name is the envelope type tag the UI host dispatches on.
type Command interface {
	CommandName() string
	CommandID() string
}

// DefineControl instructs the UI host to create one control in a
// region. Definitions are never batched: each control is an
// independent fire against the transport.
type DefineControl struct {
	ID         string            `json:"Id"`
	ControlID  string            `json:"ControlId"`
	Type       ControlType       `json:"Type"`
	Properties map[string]string `json:"Properties"`
	RegionName string            `json:"RegionName"`
}

// CommandName implements Command.
func (DefineControl) CommandName() string { return "DefineControl" }

// CommandID implements Command.
func (c DefineControl) CommandID() string { return c.ID }

// ChangeControls applies property diffs to multiple controls in one
// batch. Updates maps control ID to a property diff; an empty string
// value is a tombstone deleting that property on the UI host.
type ChangeControls struct {
	ID      string                       `json:"Id"`
	Updates map[string]map[string]string `json:"Updates"`
}

// CommandName implements Command.
func (ChangeControls) CommandName() string { return "ChangeControls" }

// CommandID implements Command.
func (c ChangeControls) CommandID() string { return c.ID }

// DeleteControls removes a batch of controls from the UI host.
type DeleteControls struct {
	ID         string   `json:"Id"`
	ControlIDs []string `json:"ControlIds"`
}

// CommandName implements Command.
func (DeleteControls) CommandName() string { return "DeleteControls" }

// CommandID implements Command.
func (c DeleteControls) CommandID() string { return c.ID }

// NewDefineControl builds a DefineControl command with a fresh ID.
func NewDefineControl(controlID string, controlType ControlType, region string, properties map[string]string) DefineControl {
	return DefineControl{
		ID:         NewID(),
		ControlID:  controlID,
		Type:       controlType,
		Properties: properties,
		RegionName: region,
	}
}

// NewChangeControls builds a ChangeControls command with a fresh ID.
func NewChangeControls(updates map[string]map[string]string) ChangeControls {
	return ChangeControls{ID: NewID(), Updates: updates}
}

// NewDeleteControls builds a DeleteControls command with a fresh ID.
func NewDeleteControls(controlIDs []string) DeleteControls {
	return DeleteControls{ID: NewID(), ControlIDs: controlIDs}
}

// NewID creates a random 16-byte hex string used as the command or
// event identifier. Downstream consumers treat it as opaque and use
// it only for idempotent handling of redelivered messages.
func NewID() string {
	var buffer [16]byte
	if _, err := rand.Read(buffer[:]); err != nil {
		// crypto/rand failure means the platform RNG is broken;
		// nothing sensible can continue.
		panic("contracts: reading random bytes: " + err.Error())
	}
	return hex.EncodeToString(buffer[:])
}
