// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/rocket-welder/sdk-go/contracts"
	"github.com/rocket-welder/sdk-go/ui"
)

// SVG path data for the demo buttons, matching the Material Design
// icons the web host ships with.
const (
	iconPlus = "M19,13H13V19H11V13H5V11H11V5H13V11H19V13Z"
	iconPlay = "M8,5.14V19.14L19,12.14L8,5.14Z"
)

// scenario is the demo control panel: a start/stop toggle, a press
// counter, a jog pad, and a status line. It exists to exercise every
// control variant and both event families end to end.
type scenario struct {
	counter atomic.Int64
	welding atomic.Bool

	toggle  *ui.IconButton
	counted *ui.IconButton
	jog     *ui.ArrowGrid
	status  *ui.Label
}

// buildScenario creates the demo controls on the given session.
// Callbacks run on the engine's tick goroutine; their property writes
// ride out with the same tick's change batch.
func buildScenario(service *ui.Service, logger *slog.Logger) *scenario {
	s := &scenario{}
	factory := service.Factory()

	title := factory.DefineLabel("lbl-title", "RocketWelder control demo", nil)
	title.SetTypography(ui.TypographyH4)
	service.Region(contracts.RegionTop).Add(title)

	s.status = factory.DefineLabel("lbl-status", "idle", nil)
	s.status.SetColor(ui.ColorTextSecondary)
	service.Region(contracts.RegionBottom).Add(s.status)

	s.toggle = factory.DefineIconButton("btn-toggle", iconPlay, map[string]string{
		"text": "Start",
	})
	s.toggle.SetColor(ui.ColorSuccess)
	s.toggle.OnButtonDown = func(button *ui.IconButton) {
		if s.welding.CompareAndSwap(false, true) {
			button.SetText("Stop")
			button.SetColor(ui.ColorError)
			s.status.SetText("welding")
			s.status.SetColor(ui.ColorWarning)
			logger.Info("welding started")
			return
		}
		s.welding.Store(false)
		button.SetText("Start")
		button.SetColor(ui.ColorSuccess)
		s.status.SetText("idle")
		s.status.SetColor(ui.ColorTextSecondary)
		logger.Info("welding stopped")
	}
	service.Region(contracts.RegionTopLeft).Add(s.toggle)

	s.counted = factory.DefineIconButton("btn-count", iconPlus, map[string]string{
		"text": "Count: 0",
	})
	s.counted.OnButtonDown = func(button *ui.IconButton) {
		button.SetText(fmt.Sprintf("Count: %d", s.counter.Add(1)))
	}
	service.Region(contracts.RegionTopRight).Add(s.counted)

	s.jog = factory.DefineArrowGrid("grid-jog", nil)
	s.jog.OnArrowDown = func(_ *ui.ArrowGrid, direction contracts.ArrowDirection) {
		s.status.SetText("jogging " + strings.ToLower(string(direction)))
		logger.Info("jog started", "direction", direction)
	}
	s.jog.OnArrowUp = func(*ui.ArrowGrid, contracts.ArrowDirection) {
		if s.welding.Load() {
			s.status.SetText("welding")
		} else {
			s.status.SetText("idle")
		}
	}
	service.Region(contracts.RegionBottomLeft).Add(s.jog)

	return s
}
