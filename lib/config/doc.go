// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for RocketWelder
// components.
//
// Configuration is loaded from a single file specified by:
//   - ROCKETWELDER_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. The config file is
// the single source of truth; environment variables do not override
// individual values.
package config
