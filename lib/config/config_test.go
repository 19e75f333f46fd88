// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.TickInterval != "100ms" {
		t.Errorf("expected tick_interval=100ms, got %s", cfg.TickInterval)
	}
	if cfg.Journal.Compression != "zstd" {
		t.Errorf("expected compression=zstd, got %s", cfg.Journal.Compression)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected level=info, got %s", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_RequiresEnvVar(t *testing.T) {
	t.Setenv("ROCKETWELDER_CONFIG", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail without ROCKETWELDER_CONFIG")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rocketwelder.yaml")
	content := `
session_id: welder-7
tick_interval: 250ms
journal:
  path: /tmp/session.rwj
  compression: lz4
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.SessionID != "welder-7" {
		t.Errorf("expected session_id=welder-7, got %s", cfg.SessionID)
	}
	d, err := cfg.TickDuration()
	if err != nil {
		t.Fatalf("TickDuration: %v", err)
	}
	if d != 250*time.Millisecond {
		t.Errorf("expected 250ms tick, got %v", d)
	}
	if cfg.Journal.Path != "/tmp/session.rwj" {
		t.Errorf("expected journal path, got %s", cfg.Journal.Path)
	}
	if cfg.Journal.Compression != "lz4" {
		t.Errorf("expected compression=lz4, got %s", cfg.Journal.Compression)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected level=debug, got %s", cfg.Log.Level)
	}
}

func TestLoadFile_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rocketwelder.yaml")
	if err := os.WriteFile(path, []byte("session_id: welder-1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.TickInterval != "100ms" {
		t.Errorf("expected default tick_interval, got %s", cfg.TickInterval)
	}
	if cfg.Journal.Compression != "zstd" {
		t.Errorf("expected default compression, got %s", cfg.Journal.Compression)
	}
}

func TestLoadFile_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad duration", "tick_interval: soon\n"},
		{"zero duration", "tick_interval: 0s\n"},
		{"bad compression", "journal:\n  compression: gzip\n"},
		{"bad level", "log:\n  level: loud\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rocketwelder.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Fatal("LoadFile should reject the config")
			}
		})
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("LoadFile should fail on a missing file")
	}
}
