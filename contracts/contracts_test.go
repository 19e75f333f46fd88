// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package contracts

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewIDUniqueAndOpaque(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := NewID()
		if len(id) != 32 {
			t.Fatalf("NewID() length = %d, want 32 hex chars", len(id))
		}
		if seen[id] {
			t.Fatalf("NewID() produced duplicate %q", id)
		}
		seen[id] = true
	}
}

func TestDefineControlWireShape(t *testing.T) {
	cmd := NewDefineControl("btn-1", ControlTypeIconButton, RegionTopRight, map[string]string{
		"icon": "M1,1",
	})

	data, err := json.Marshal(cmd)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	// The UI host dispatches on PascalCase keys; a renamed field is a
	// protocol break, not a refactor.
	var wire map[string]any
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, key := range []string{"Id", "ControlId", "Type", "Properties", "RegionName"} {
		if _, ok := wire[key]; !ok {
			t.Errorf("wire form missing key %q: %s", key, data)
		}
	}
	if wire["Type"] != "IconButton" {
		t.Errorf("Type = %v, want IconButton", wire["Type"])
	}
	if wire["RegionName"] != "TopRight" {
		t.Errorf("RegionName = %v, want TopRight", wire["RegionName"])
	}
}

func TestCommandNamesAndIDs(t *testing.T) {
	define := NewDefineControl("a", ControlTypeLabel, RegionTop, nil)
	change := NewChangeControls(map[string]map[string]string{"a": {"text": "hi"}})
	remove := NewDeleteControls([]string{"a"})

	cases := []struct {
		cmd  Command
		name string
	}{
		{define, "DefineControl"},
		{change, "ChangeControls"},
		{remove, "DeleteControls"},
	}
	for _, tc := range cases {
		if got := tc.cmd.CommandName(); got != tc.name {
			t.Errorf("CommandName() = %q, want %q", got, tc.name)
		}
		if tc.cmd.CommandID() == "" {
			t.Errorf("%s has empty command ID", tc.name)
		}
	}
}

func TestDecodeEventRoundtrip(t *testing.T) {
	events := []Event{
		NewButtonDown("btn-1"),
		NewButtonUp("btn-1"),
		NewKeyDown("grid-1", KeyCodeArrowLeft),
		NewKeyUp("grid-1", KeyCodeArrowLeft),
	}

	for _, original := range events {
		data, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("Marshal %s: %v", original.EventName(), err)
		}
		decoded, err := DecodeEvent(original.EventName(), data)
		if err != nil {
			t.Fatalf("DecodeEvent %s: %v", original.EventName(), err)
		}
		if decoded != original {
			t.Errorf("roundtrip %s: got %+v, want %+v", original.EventName(), decoded, original)
		}
		if decoded.TargetControl() != original.TargetControl() {
			t.Errorf("TargetControl mismatch for %s", original.EventName())
		}
	}
}

func TestDecodeEventUnknownType(t *testing.T) {
	_, err := DecodeEvent("ScrollWheel", []byte(`{"Id":"x","ControlId":"y"}`))
	if !errors.Is(err, ErrUnknownEventType) {
		t.Fatalf("err = %v, want ErrUnknownEventType", err)
	}
}

func TestDirectionForKeyCode(t *testing.T) {
	cases := []struct {
		code      string
		direction ArrowDirection
		ok        bool
	}{
		{KeyCodeArrowUp, ArrowUp, true},
		{KeyCodeArrowDown, ArrowDown, true},
		{KeyCodeArrowLeft, ArrowLeft, true},
		{KeyCodeArrowRight, ArrowRight, true},
		{"Enter", "", false},
		{"KeyA", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		direction, ok := DirectionForKeyCode(tc.code)
		if direction != tc.direction || ok != tc.ok {
			t.Errorf("DirectionForKeyCode(%q) = (%q, %v), want (%q, %v)",
				tc.code, direction, ok, tc.direction, tc.ok)
		}
	}
}

func TestStreamNamesAreSessionScoped(t *testing.T) {
	if got := EventStream("sess-42"); got != "Ui.Events-sess-42" {
		t.Fatalf("EventStream = %q", got)
	}
	if got := CommandStream("sess-42"); got != "Ui.Commands-sess-42" {
		t.Fatalf("CommandStream = %q", got)
	}
	if CommandStream("sess-a") == CommandStream("sess-b") {
		t.Fatal("distinct sessions must not share a command stream")
	}
}
