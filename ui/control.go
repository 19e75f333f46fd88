// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"sync/atomic"

	"github.com/rocket-welder/sdk-go/contracts"
)

// Control is the capability set shared by every control variant. The
// set is closed: the unexported store method keeps external packages
// from implementing it, matching the closed ControlType tag on the
// wire.
//
// A control belongs to at most one region at a time. Lifecycle: it is
// unattached after construction, scheduled for definition when added
// to a region, live once a tick has sent its DefineControl, and gone
// after a tick following Dispose has sent the delete batch.
type Control interface {
	// ID is the control's unique identifier within the session.
	ID() string

	// Type is the variant tag used when emitting the definition
	// command.
	Type() contracts.ControlType

	// HandleEvent dispatches an inbound event to the variant's
	// callbacks. Events the variant has no use for are ignored.
	// Called only by the engine's tick goroutine.
	HandleEvent(event contracts.Event)

	// Dispose schedules the control's deletion. Idempotent: only the
	// first call schedules anything. Safe to call from any goroutine,
	// including finalizers.
	Dispose()

	// store exposes the property store to the engine for diffing and
	// committing.
	store() *Properties

	// base exposes lifecycle state to the engine.
	base() *controlBase
}

// controlBase carries the identity, store, and disposal state shared
// by all variants.
type controlBase struct {
	id          string
	controlType contracts.ControlType
	service     *Service
	properties  *Properties
	disposed    atomic.Bool

	// live flips to true once a tick has sent the control's
	// definition; only live controls are scanned for property diffs.
	live atomic.Bool
}

// markLive records that the control's DefineControl command has been
// sent. Called only by the tick goroutine.
func markLive(control Control) {
	control.base().live.Store(true)
}

func isLive(control Control) bool {
	return control.base().live.Load()
}

func newControlBase(id string, controlType contracts.ControlType, service *Service, initial map[string]string) controlBase {
	return controlBase{
		id:          id,
		controlType: controlType,
		service:     service,
		properties:  newProperties(initial),
	}
}

// ID implements Control.
func (c *controlBase) ID() string { return c.id }

// Type implements Control.
func (c *controlBase) Type() contracts.ControlType { return c.controlType }

// Dispose implements Control. The CAS makes repeated disposal a
// no-op, so duplicate ids never reach the pending-deletions set.
func (c *controlBase) Dispose() {
	if c.disposed.CompareAndSwap(false, true) {
		c.service.scheduler.scheduleDelete(c.id)
	}
}

// Properties returns the control's property store. Most callers
// should prefer the variant's typed accessors; the store is exposed
// for custom properties the stock accessors do not cover.
func (c *controlBase) Properties() *Properties { return c.properties }

func (c *controlBase) store() *Properties { return c.properties }

func (c *controlBase) base() *controlBase { return c }
