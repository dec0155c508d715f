// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client application runtime.
//
// It dispatches subcommands to a [adapter.ServerAdapter] and renders the
// results for terminal consumption.
package client
