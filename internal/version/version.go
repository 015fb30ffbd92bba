// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other auxgate packages to avoid import cycles.

package version

import "runtime/debug"

// ServiceDefault is the version reported in JSON payloads when neither
// SERVICE_VERSION nor the config file provide one.
const ServiceDefault = "1.0.0"

// Version is the build version of the auxgate binary. It is unrelated to the
// service version strings stamped on responses.
var Version = func() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}()
