// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"maps"

	"github.com/rocket-welder/sdk-go/contracts"
)

// Factory constructs controls bound to a Service. Construction is
// pure: the new control is unattached and unknown to the engine until
// it is added to a region.
//
// Every constructor merges the caller's extra properties with the
// variant's required defaults, so a control never starts with an
// incomplete property bag. The required key (icon for IconButton,
// text for Label) always wins over a conflicting entry in properties.
//
// Precondition for all constructors: id is non-empty and not held by
// another live control in the session. Reusing an id is fine once the
// previous control is fully deleted.
type Factory struct {
	service *Service
}

// DefineIconButton creates an icon button. icon is the SVG path the
// UI host renders; properties carries optional extras such as color
// or size.
func (f *Factory) DefineIconButton(id, icon string, properties map[string]string) *IconButton {
	merged := mergeProperties(properties, propIcon, icon)
	return &IconButton{
		controlBase: newControlBase(id, contracts.ControlTypeIconButton, f.service, merged),
	}
}

// DefineArrowGrid creates a directional pad.
func (f *Factory) DefineArrowGrid(id string, properties map[string]string) *ArrowGrid {
	merged := mergeProperties(properties, "", "")
	return &ArrowGrid{
		controlBase: newControlBase(id, contracts.ControlTypeArrowGrid, f.service, merged),
	}
}

// DefineLabel creates a text label.
func (f *Factory) DefineLabel(id, text string, properties map[string]string) *Label {
	merged := mergeProperties(properties, propText, text)
	return &Label{
		controlBase: newControlBase(id, contracts.ControlTypeLabel, f.service, merged),
	}
}

// mergeProperties copies the caller's properties and overlays the
// variant's required key when one is given.
func mergeProperties(properties map[string]string, requiredKey, requiredValue string) map[string]string {
	merged := make(map[string]string, len(properties)+1)
	maps.Copy(merged, properties)
	if requiredKey != "" {
		merged[requiredKey] = requiredValue
	}
	return merged
}
