// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the SDK's standard CBOR encoding.
//
// The journal format in package eventbus stores frame headers as CBOR
// rather than JSON: headers carry binary hashes and are read back by
// tooling that must byte-compare re-encoded headers, so the encoder is
// configured for Core Deterministic Encoding (RFC 8949 §4.2) — the
// same logical header always produces identical bytes.
//
// Wire contracts between the engine and the UI host (package
// contracts) remain JSON for compatibility with the existing UI; this
// package is for SDK-internal persistence only.
package codec
