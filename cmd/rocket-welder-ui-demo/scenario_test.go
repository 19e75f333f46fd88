// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log/slog"
	"testing"
	"time"

	"github.com/rocket-welder/sdk-go/contracts"
	"github.com/rocket-welder/sdk-go/eventbus"
	"github.com/rocket-welder/sdk-go/lib/testutil"
	"github.com/rocket-welder/sdk-go/ui"
)

func newScenario(t *testing.T) (*scenario, *ui.Service, *eventbus.MemoryBus) {
	t.Helper()
	bus := eventbus.NewMemoryBus()
	t.Cleanup(bus.Close)

	service, err := ui.NewService(ui.ServiceConfig{
		SessionID: testutil.UniqueID("session"),
		Bus:       bus,
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	t.Cleanup(service.Close)

	return buildScenario(service, slog.Default()), service, bus
}

func TestScenarioDefinesAllControls(t *testing.T) {
	bus := eventbus.NewMemoryBus()
	defer bus.Close()

	sessionID := testutil.UniqueID("session")
	commands := make(chan eventbus.Envelope, 16)
	subscription, err := bus.Subscribe(contracts.CommandStream(sessionID), func(env eventbus.Envelope) {
		commands <- env
	})
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer subscription.Close()

	service, err := ui.NewService(ui.ServiceConfig{
		SessionID: sessionID,
		Bus:       bus,
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	defer service.Close()

	buildScenario(service, slog.Default())
	if err := service.Tick(t.Context()); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	// Two labels, two buttons, one arrow grid.
	for range 5 {
		env := testutil.RequireReceive(t, commands, time.Second, "waiting for DefineControl")
		if env.Type != "DefineControl" {
			t.Fatalf("command type = %q, want DefineControl", env.Type)
		}
	}
}

func TestToggleButtonFlipsWeldingState(t *testing.T) {
	s, service, _ := newScenario(t)
	if err := service.Tick(t.Context()); err != nil {
		t.Fatalf("definition tick: %v", err)
	}

	service.Enqueue(contracts.NewButtonDown("btn-toggle"))
	if err := service.Tick(t.Context()); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if s.toggle.Text() != "Stop" {
		t.Fatalf("toggle text = %q, want Stop", s.toggle.Text())
	}
	if s.toggle.Color() != ui.ColorError {
		t.Fatalf("toggle color = %q, want Error", s.toggle.Color())
	}
	if s.status.Text() != "welding" {
		t.Fatalf("status = %q, want welding", s.status.Text())
	}

	service.Enqueue(contracts.NewButtonDown("btn-toggle"))
	if err := service.Tick(t.Context()); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if s.toggle.Text() != "Start" || s.status.Text() != "idle" {
		t.Fatalf("toggle = %q, status = %q, want Start/idle", s.toggle.Text(), s.status.Text())
	}
}

func TestCounterButtonCountsPresses(t *testing.T) {
	s, service, _ := newScenario(t)
	if err := service.Tick(t.Context()); err != nil {
		t.Fatalf("definition tick: %v", err)
	}

	for range 3 {
		service.Enqueue(contracts.NewButtonDown("btn-count"))
		service.Enqueue(contracts.NewButtonUp("btn-count"))
	}
	if err := service.Tick(t.Context()); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	if s.counted.Text() != "Count: 3" {
		t.Fatalf("counter text = %q, want Count: 3", s.counted.Text())
	}
}

func TestJogPadUpdatesStatus(t *testing.T) {
	s, service, _ := newScenario(t)
	if err := service.Tick(t.Context()); err != nil {
		t.Fatalf("definition tick: %v", err)
	}

	service.Enqueue(contracts.NewKeyDown("grid-jog", contracts.KeyCodeArrowLeft))
	if err := service.Tick(t.Context()); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if s.status.Text() != "jogging left" {
		t.Fatalf("status = %q, want jogging left", s.status.Text())
	}

	service.Enqueue(contracts.NewKeyUp("grid-jog", contracts.KeyCodeArrowLeft))
	if err := service.Tick(t.Context()); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if s.status.Text() != "idle" {
		t.Fatalf("status = %q, want idle", s.status.Text())
	}
}
