// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/auxgate/internal/auxiliary"
	"github.com/tfctl/auxgate/internal/config"
	"github.com/tfctl/auxgate/internal/mainapi"
	"github.com/tfctl/auxgate/internal/meta"
)

// Runners are the service entry points the commands hand their config to.
type Runners struct {
	Aux func(context.Context, auxiliary.Config) error
	API func(context.Context, mainapi.Config) error
}

// DefaultRunners start the real services.
var DefaultRunners = Runners{
	Aux: auxiliary.Run,
	API: mainapi.Run,
}

// InitApp builds the auxgate command tree. cfg is the already loaded config
// file, possibly empty.
func InitApp(ctx context.Context, args []string, cfg config.Type) (*cli.Command, error) {
	m := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
	}
	return NewApp(m, DefaultRunners), nil
}

// NewApp builds the command tree with the given runners.
func NewApp(m meta.Meta, runners Runners) *cli.Command {
	app := &cli.Command{
		Name:  "auxgate",
		Usage: "S3 and SSM over HTTP: auxiliary service and main API",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "auxgate version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		auxCommandBuilder(m, runners.Aux),
		apiCommandBuilder(m, runners.API),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app
}
