// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for auxgate. Every flag resolves
// in order: command line, environment, namespaced config key ("aux.region"),
// global config key ("region"), built-in default.
package command
