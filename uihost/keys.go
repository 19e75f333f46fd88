// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package uihost

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the terminal host.
type KeyMap struct {
	// Focus cycling across interactive controls.
	NextControl key.Binding
	PrevControl key.Binding

	// Press activates the focused button.
	Press key.Binding

	// Arrow keys drive the focused arrow grid.
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	NextControl: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next control"),
	),
	PrevControl: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "previous control"),
	),
	Press: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "press"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "arrow up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "arrow down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "arrow left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "arrow right"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
