// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package uihost

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rocket-welder/sdk-go/contracts"
)

// View implements tea.Model. Layout mirrors the web host: three
// control regions along the top edge, three along the bottom, and a
// status bar on the last row. The middle of the screen stays empty
// since that is where the video feed lives in production.
func (model Model) View() string {
	if !model.ready {
		return "initializing..."
	}

	top := model.renderEdge(contracts.RegionTopLeft, contracts.RegionTop, contracts.RegionTopRight)
	bottom := model.renderEdge(contracts.RegionBottomLeft, contracts.RegionBottom, contracts.RegionBottomRight)
	status := model.renderStatus()

	filler := model.height - blockHeight(top) - blockHeight(bottom) - 1
	if filler < 0 {
		filler = 0
	}

	var view strings.Builder
	view.WriteString(top)
	view.WriteString(strings.Repeat("\n", filler+1))
	view.WriteString(bottom)
	view.WriteString("\n")
	view.WriteString(status)
	return view.String()
}

// renderEdge lays out three regions on one screen edge: left-aligned,
// centered, and right-aligned.
func (model Model) renderEdge(left, center, right string) string {
	leftBlock := model.renderRegion(left)
	centerBlock := model.renderRegion(center)
	rightBlock := model.renderRegion(right)

	used := blockWidth(leftBlock) + blockWidth(centerBlock) + blockWidth(rightBlock)
	slack := model.width - used
	if slack < 2 {
		return lipgloss.JoinHorizontal(lipgloss.Top, leftBlock, centerBlock, rightBlock)
	}

	leftGap := slack / 2
	rightGap := slack - leftGap
	return lipgloss.JoinHorizontal(lipgloss.Top,
		leftBlock,
		strings.Repeat(" ", leftGap),
		centerBlock,
		strings.Repeat(" ", rightGap),
		rightBlock,
	)
}

// renderRegion renders a region's controls side by side in definition
// order.
func (model Model) renderRegion(region string) string {
	var blocks []string
	for _, id := range model.order {
		control := model.controls[id]
		if control.region != region {
			continue
		}
		blocks = append(blocks, model.renderControl(control, id == model.focusID))
	}
	if len(blocks) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (model Model) renderControl(control *hostControl, focused bool) string {
	switch control.controlType {
	case contracts.ControlTypeIconButton:
		return model.renderIconButton(control, focused)
	case contracts.ControlTypeArrowGrid:
		return model.renderArrowGrid(control, focused)
	case contracts.ControlTypeLabel:
		return model.renderLabel(control)
	default:
		return ""
	}
}

func (model Model) renderIconButton(control *hostControl, focused bool) string {
	color := model.theme.Semantic(control.properties["color"])

	label := control.properties["text"]
	if label == "" {
		// No text: the SVG icon path cannot be drawn in a cell grid,
		// so stand in with a glyph.
		label = "⏺"
	} else {
		label = "⏺ " + label
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(model.theme.BorderColor).
		Foreground(color).
		Padding(0, 1)
	if focused {
		style = style.BorderForeground(model.theme.FocusBorder).Bold(true)
	}
	return style.Render(label)
}

func (model Model) renderArrowGrid(control *hostControl, focused bool) string {
	color := model.theme.Semantic(control.properties["color"])

	pad := lipgloss.JoinVertical(lipgloss.Center, "▲", "◀ ▼ ▶")

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(model.theme.BorderColor).
		Foreground(color).
		Padding(0, 1)
	if focused {
		style = style.BorderForeground(model.theme.FocusBorder).Bold(true)
	}
	return style.Render(pad)
}

func (model Model) renderLabel(control *hostControl) string {
	color := model.theme.Semantic(control.properties["color"])

	style := lipgloss.NewStyle().Foreground(color).Padding(0, 1)
	switch control.properties["typo"] {
	case "h1", "h2", "h3", "h4":
		style = style.Bold(true)
	case "caption", "overline":
		style = style.Faint(true)
	}
	return style.Render(control.properties["text"])
}

func (model Model) renderStatus() string {
	helpStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	noticeStyle := lipgloss.NewStyle().Foreground(model.theme.Error)

	left := helpStyle.Render("session " + model.sessionID + "  ·  tab focus · enter press · arrows drive · q quit")
	if model.notice == "" {
		return left
	}

	notice := noticeStyle.Render(model.notice)
	gap := model.width - ansi.StringWidth(left) - ansi.StringWidth(notice)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + notice
}

// blockWidth is the widest display line of a multiline block.
func blockWidth(block string) int {
	width := 0
	for _, line := range strings.Split(block, "\n") {
		if w := ansi.StringWidth(line); w > width {
			width = w
		}
	}
	return width
}

func blockHeight(block string) int {
	return strings.Count(block, "\n") + 1
}
