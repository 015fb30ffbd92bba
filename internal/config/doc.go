// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for auxgate's optional
// YAML configuration file. It takes the place of a development .env file: any
// flag of either service may be set there, globally or under the "aux" or
// "api" namespace. The file is located via AUXGATE_CFG_FILE or in the user's
// configuration directory, typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/auxgate.yaml or $HOME/.config/auxgate.yaml
//   - Windows: %APPDATA%/auxgate.yaml
//
// Environment variables and explicit flags always win over the file.
package config
