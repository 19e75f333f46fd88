// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction for testability.
//
// Production code accepts a Clock interface parameter instead of calling
// time.Now, time.After, time.NewTicker, or time.Sleep directly. In
// production, Real() provides the standard library behavior. In tests,
// Fake() provides a deterministic clock that advances only when Advance
// is called.
//
// The primary consumer in this SDK is the demo sync loop, which paces
// ui.Service.Tick on a Clock ticker so tests can drive an exact number
// of synchronization cycles without sleeping.
//
// # Wiring Pattern
//
// Add a Clock field to structs that use time:
//
//	type Loop struct {
//	    clock clock.Clock
//	    // ...
//	}
//
// In production:
//
//	l := &Loop{clock: clock.Real()}
//
// In tests:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	l := &Loop{clock: c}
//	// ... start goroutines ...
//	c.WaitForTimers(1)              // wait for the loop to register its ticker
//	c.Advance(250 * time.Millisecond) // fire one tick deterministically
//
// # FakeClock Synchronization
//
// When a goroutine calls Sleep, After, or NewTicker on a FakeClock, it
// registers a pending waiter. Use WaitForTimers to block until a
// specific number of waiters are registered before calling Advance.
// This eliminates the race between timer registration and time
// advancement that plagues tests using time.Sleep for synchronization.
package clock
