// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package ui

// Color is a semantic color name understood by the UI host's theme.
type Color string

const (
	ColorPrimary       Color = "Primary"
	ColorSecondary     Color = "Secondary"
	ColorSuccess       Color = "Success"
	ColorInfo          Color = "Info"
	ColorWarning       Color = "Warning"
	ColorError         Color = "Error"
	ColorTextPrimary   Color = "TextPrimary"
	ColorTextSecondary Color = "TextSecondary"
	ColorDefault       Color = "Default"
)

// Size scales a control relative to the host's base font.
type Size string

const (
	SizeExtraSmall Size = "ExtraSmall"
	SizeSmall      Size = "Small"
	SizeMedium     Size = "Medium"
	SizeLarge      Size = "Large"
	SizeExtraLarge Size = "ExtraLarge"
)

// Typography selects the text style for Label controls. Values match
// the host's typographic scale.
type Typography string

const (
	TypographyH1        Typography = "h1"
	TypographyH2        Typography = "h2"
	TypographyH3        Typography = "h3"
	TypographyH4        Typography = "h4"
	TypographyH5        Typography = "h5"
	TypographyH6        Typography = "h6"
	TypographySubtitle1 Typography = "subtitle1"
	TypographySubtitle2 Typography = "subtitle2"
	TypographyBody1     Typography = "body1"
	TypographyBody2     Typography = "body2"
	TypographyCaption   Typography = "caption"
	TypographyOverline  Typography = "overline"
)

// Property keys shared by the control variants. Keys are
// case-sensitive and part of the wire contract with the UI host.
const (
	propIcon  = "icon"
	propText  = "text"
	propColor = "color"
	propSize  = "size"
	propTypo  = "typo"
)
