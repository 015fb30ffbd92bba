// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package mainapi implements the public-facing main API. Each endpoint makes
// one GET to the auxiliary service and re-stamps the answer with both
// versions.
package mainapi
