// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package uihost

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the terminal host. Semantic
// color names arriving on the wire are resolved against it.
type Theme struct {
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Success       lipgloss.Color
	Info          lipgloss.Color
	Warning       lipgloss.Color
	Error         lipgloss.Color
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color

	BorderColor lipgloss.Color
	FocusBorder lipgloss.Color
	HelpText    lipgloss.Color
}

// Semantic resolves a wire color name to a terminal color. Unknown
// names and "Default" fall back to TextPrimary.
func (theme Theme) Semantic(name string) lipgloss.Color {
	switch name {
	case "Primary":
		return theme.Primary
	case "Secondary":
		return theme.Secondary
	case "Success":
		return theme.Success
	case "Info":
		return theme.Info
	case "Warning":
		return theme.Warning
	case "Error":
		return theme.Error
	case "TextPrimary":
		return theme.TextPrimary
	case "TextSecondary":
		return theme.TextSecondary
	default:
		return theme.TextPrimary
	}
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	Primary:       lipgloss.Color("75"),  // blue
	Secondary:     lipgloss.Color("135"), // purple
	Success:       lipgloss.Color("114"), // green
	Info:          lipgloss.Color("80"),  // cyan
	Warning:       lipgloss.Color("214"), // orange
	Error:         lipgloss.Color("196"), // red
	TextPrimary:   lipgloss.Color("252"),
	TextSecondary: lipgloss.Color("245"),

	BorderColor: lipgloss.Color("240"),
	FocusBorder: lipgloss.Color("215"),
	HelpText:    lipgloss.Color("241"),
}
