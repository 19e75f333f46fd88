// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"maps"
	"sync"
	"testing"
)

func TestPropertiesInitialValuesAreUncommitted(t *testing.T) {
	props := newProperties(map[string]string{"icon": "M1,1", "color": "Primary"})

	if !props.IsDirty() {
		t.Fatal("fresh store with initial values should be dirty")
	}
	diff := props.Diff()
	want := map[string]string{"icon": "M1,1", "color": "Primary"}
	if !maps.Equal(diff, want) {
		t.Fatalf("diff = %v, want %v", diff, want)
	}

	props.Commit()
	if props.IsDirty() {
		t.Fatal("store should be clean after commit")
	}
	if diff := props.Diff(); len(diff) != 0 {
		t.Fatalf("diff after commit = %v, want empty", diff)
	}
}

func TestPropertiesInitialTombstonesAreSkipped(t *testing.T) {
	props := newProperties(map[string]string{"icon": "M1,1", "text": Tombstone})

	if _, ok := props.Get("text"); ok {
		t.Fatal("tombstone-valued initial key should not enter the working set")
	}
	if diff := props.Diff(); len(diff) != 1 {
		t.Fatalf("diff = %v, want only the icon key", diff)
	}
}

func TestPropertiesDiffReportsOnlyChangedKeys(t *testing.T) {
	props := newProperties(map[string]string{"icon": "M1,1", "color": "Primary"})
	props.Commit()

	props.Set("color", "Success")
	props.Set("text", "Apply")

	diff := props.Diff()
	want := map[string]string{"color": "Success", "text": "Apply"}
	if !maps.Equal(diff, want) {
		t.Fatalf("diff = %v, want %v", diff, want)
	}
	if _, ok := diff["icon"]; ok {
		t.Fatal("unchanged key must not appear in the diff")
	}
}

func TestPropertiesUnsetProducesTombstone(t *testing.T) {
	props := newProperties(map[string]string{"text": "Apply"})
	props.Commit()

	props.Unset("text")

	diff := props.Diff()
	if got, ok := diff["text"]; !ok || got != Tombstone {
		t.Fatalf("diff = %v, want text mapped to tombstone", diff)
	}

	props.Commit()
	if props.IsDirty() {
		t.Fatal("store should be clean after committing a removal")
	}
}

func TestPropertiesSetEmptyStringMeansUnset(t *testing.T) {
	props := newProperties(map[string]string{"text": "Apply"})
	props.Commit()

	props.Set("text", "")

	if _, ok := props.Get("text"); ok {
		t.Fatal("setting the empty string should remove the key from the working set")
	}
	diff := props.Diff()
	if got := diff["text"]; got != Tombstone {
		t.Fatalf("diff[text] = %q, want tombstone", got)
	}
}

func TestPropertiesUnsetNeverCommittedKeyIsClean(t *testing.T) {
	props := newProperties(nil)
	props.Set("text", "Apply")
	props.Unset("text")

	if props.IsDirty() {
		t.Fatalf("set-then-unset of an uncommitted key should leave no diff, got %v", props.Diff())
	}
}

func TestPropertiesSetBackToCommittedValueIsClean(t *testing.T) {
	props := newProperties(map[string]string{"color": "Primary"})
	props.Commit()

	props.Set("color", "Success")
	props.Set("color", "Primary")

	if props.IsDirty() {
		t.Fatalf("reverting to the committed value should leave no diff, got %v", props.Diff())
	}
}

func TestPropertiesWorkingReturnsACopy(t *testing.T) {
	props := newProperties(map[string]string{"icon": "M1,1"})

	working := props.Working()
	working["icon"] = "mutated"

	if got, _ := props.Get("icon"); got != "M1,1" {
		t.Fatalf("mutating the Working snapshot changed the store: got %q", got)
	}
}

func TestPropertiesGetDefault(t *testing.T) {
	props := newProperties(nil)

	if got := props.GetDefault("color", "Primary"); got != "Primary" {
		t.Fatalf("GetDefault on absent key = %q, want fallback", got)
	}
	props.Set("color", "Error")
	if got := props.GetDefault("color", "Primary"); got != "Error" {
		t.Fatalf("GetDefault on present key = %q, want Error", got)
	}
}

func TestPropertiesConcurrentSetters(t *testing.T) {
	props := newProperties(nil)

	var group sync.WaitGroup
	for range 8 {
		group.Add(1)
		go func() {
			defer group.Done()
			for range 200 {
				props.Set("text", "value")
				props.Get("text")
				props.Diff()
			}
		}()
	}
	group.Wait()

	if got, _ := props.Get("text"); got != "value" {
		t.Fatalf("text = %q after concurrent writes, want value", got)
	}
}
