// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import "github.com/rocket-welder/sdk-go/contracts"

// IconButton is a clickable button rendered from an SVG path icon.
// Set OnButtonDown/OnButtonUp before adding the button to a region;
// the engine invokes them from the tick goroutine when the UI host
// reports presses.
type IconButton struct {
	controlBase

	// OnButtonDown is called when the UI host reports the button
	// pressed. May be nil.
	OnButtonDown func(*IconButton)

	// OnButtonUp is called when the UI host reports the button
	// released. May be nil.
	OnButtonUp func(*IconButton)
}

// Icon returns the button's SVG path.
func (b *IconButton) Icon() string {
	return b.properties.GetDefault(propIcon, "")
}

// SetIcon replaces the button's SVG path.
func (b *IconButton) SetIcon(icon string) {
	b.properties.Set(propIcon, icon)
}

// Text returns the optional caption next to the icon.
func (b *IconButton) Text() string {
	return b.properties.GetDefault(propText, "")
}

// SetText sets the caption. An empty string removes it.
func (b *IconButton) SetText(text string) {
	b.properties.Set(propText, text)
}

// Color returns the button color, defaulting to ColorPrimary.
func (b *IconButton) Color() Color {
	return Color(b.properties.GetDefault(propColor, string(ColorPrimary)))
}

// SetColor sets the button color.
func (b *IconButton) SetColor(color Color) {
	b.properties.Set(propColor, string(color))
}

// Size returns the button size, defaulting to SizeMedium.
func (b *IconButton) Size() Size {
	return Size(b.properties.GetDefault(propSize, string(SizeMedium)))
}

// SetSize sets the button size.
func (b *IconButton) SetSize(size Size) {
	b.properties.Set(propSize, string(size))
}

// HandleEvent implements Control.
func (b *IconButton) HandleEvent(event contracts.Event) {
	switch event.(type) {
	case contracts.ButtonDown:
		if b.OnButtonDown != nil {
			b.OnButtonDown(b)
		}
	case contracts.ButtonUp:
		if b.OnButtonUp != nil {
			b.OnButtonUp(b)
		}
	}
}
