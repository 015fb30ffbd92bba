// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/tfctl/auxgate/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// the loaded config file, the subcommand namespace used for config lookups and
// the process context.
type Meta struct {
	Args      []string
	Config    config.Type
	Context   context.Context
	Namespace string
}
