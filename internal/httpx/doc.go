// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package httpx holds the HTTP plumbing shared by the auxiliary service and
// the main API: the echo setup, error rendering, access logging and the
// server lifecycle.
package httpx
