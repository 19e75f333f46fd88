// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import "github.com/rocket-welder/sdk-go/contracts"

// Label is a read-only text control. It has no event behavior.
type Label struct {
	controlBase
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.properties.GetDefault(propText, "")
}

// SetText replaces the label text.
func (l *Label) SetText(text string) {
	l.properties.Set(propText, text)
}

// Typography returns the text style, defaulting to TypographyBody1.
func (l *Label) Typography() Typography {
	return Typography(l.properties.GetDefault(propTypo, string(TypographyBody1)))
}

// SetTypography sets the text style.
func (l *Label) SetTypography(typography Typography) {
	l.properties.Set(propTypo, string(typography))
}

// Color returns the text color, defaulting to ColorTextPrimary.
func (l *Label) Color() Color {
	return Color(l.properties.GetDefault(propColor, string(ColorTextPrimary)))
}

// SetColor sets the text color.
func (l *Label) SetColor(color Color) {
	l.properties.Set(propColor, string(color))
}

// HandleEvent implements Control. Labels ignore all events.
func (l *Label) HandleEvent(contracts.Event) {}
