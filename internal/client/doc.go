// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemVault Authors

// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows, client services, and the background
// reminder workers into a single process lifecycle.
package client
