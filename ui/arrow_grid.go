// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import "github.com/rocket-welder/sdk-go/contracts"

// ArrowGrid is a four-way directional pad. The UI host sends raw
// KeyDown/KeyUp events; the grid maps the four arrow key codes to
// directions and silently ignores every other code.
type ArrowGrid struct {
	controlBase

	// OnArrowDown is called when an arrow key is pressed while the
	// grid has focus on the UI host. May be nil.
	OnArrowDown func(*ArrowGrid, contracts.ArrowDirection)

	// OnArrowUp is called when an arrow key is released. May be nil.
	OnArrowUp func(*ArrowGrid, contracts.ArrowDirection)
}

// Color returns the grid color, defaulting to ColorPrimary.
func (g *ArrowGrid) Color() Color {
	return Color(g.properties.GetDefault(propColor, string(ColorPrimary)))
}

// SetColor sets the grid color.
func (g *ArrowGrid) SetColor(color Color) {
	g.properties.Set(propColor, string(color))
}

// Size returns the grid size, defaulting to SizeMedium.
func (g *ArrowGrid) Size() Size {
	return Size(g.properties.GetDefault(propSize, string(SizeMedium)))
}

// SetSize sets the grid size.
func (g *ArrowGrid) SetSize(size Size) {
	g.properties.Set(propSize, string(size))
}

// HandleEvent implements Control.
func (g *ArrowGrid) HandleEvent(event contracts.Event) {
	switch e := event.(type) {
	case contracts.KeyDown:
		if direction, ok := contracts.DirectionForKeyCode(e.Code); ok && g.OnArrowDown != nil {
			g.OnArrowDown(g, direction)
		}
	case contracts.KeyUp:
		if direction, ok := contracts.DirectionForKeyCode(e.Code); ok && g.OnArrowUp != nil {
			g.OnArrowUp(g, direction)
		}
	}
}
