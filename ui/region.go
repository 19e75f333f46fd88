// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import "sync"

// Region is the ordered collection of controls placed in one named
// region of the UI host. Adding a control schedules its definition;
// removing it schedules its deletion. There is no move operation in
// the protocol: reassigning a control to a different region is
// Remove on one region followed by Add on the other.
//
// Safe for concurrent use. The engine's tick also mutates regions
// when it processes deletions.
type Region struct {
	name    string
	service *Service

	mu       sync.Mutex
	controls []Control
}

// Name returns the region's name tag.
func (r *Region) Name() string { return r.name }

// Add places a control in the region and schedules its DefineControl
// command for the next tick. The control is registered with the
// session index immediately, so events that arrive before the
// definition has been acknowledged still find their target.
//
// Precondition: the control's id is not held by another live control
// in the session, and the control is not currently in a region.
func (r *Region) Add(control Control) {
	r.service.register(control)
	r.service.scheduler.scheduleDefine(control, r.name)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.controls = append(r.controls, control)
}

// Remove takes a control out of the region and schedules its
// deletion. Removing a control that is not in the region is a no-op.
func (r *Region) Remove(control Control) {
	if r.removeLocal(control.ID()) {
		r.service.scheduler.scheduleDelete(control.ID())
	}
}

// Clear removes every control from the region, scheduling a deletion
// for each.
func (r *Region) Clear() {
	r.mu.Lock()
	removed := r.controls
	r.controls = nil
	r.mu.Unlock()

	for _, control := range removed {
		r.service.scheduler.scheduleDelete(control.ID())
	}
}

// Controls returns a copy of the region's membership in placement
// order.
func (r *Region) Controls() []Control {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Control, len(r.controls))
	copy(out, r.controls)
	return out
}

// Len returns the number of controls in the region.
func (r *Region) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.controls)
}

// removeLocal drops the control with the given id from the membership
// list without scheduling anything. The tick uses it when processing
// a delete batch. Reports whether the id was present.
func (r *Region) removeLocal(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.controls {
		if existing.ID() == id {
			r.controls = append(r.controls[:i], r.controls[i+1:]...)
			return true
		}
	}
	return false
}
