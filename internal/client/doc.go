// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI and the background NFT workers into a single
// process lifecycle and releases storage and queue resources on exit.
package client
