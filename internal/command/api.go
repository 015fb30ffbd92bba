// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/auxgate/internal/log"
	"github.com/tfctl/auxgate/internal/mainapi"
	"github.com/tfctl/auxgate/internal/meta"
)

const flagAuxURL = "aux-url"

func apiCommandBuilder(m meta.Meta, run func(context.Context, mainapi.Config) error) *cli.Command {
	m.Namespace = "api"

	auxURL := NewStringFlag(m, flagAuxURL, "auxiliary service base URL",
		mainapi.DefaultAuxiliaryBaseURL, "AUXILIARY_SERVICE_URL", "AUX_URL")
	auxURL.Validator = func(value string) error {
		return FlagValidators(value, URLValidator)
	}

	flags := NewServerFlags(m, "API", mainapi.DefaultListen, mainapi.DefaultTimeout)
	flags = append(flags, auxURL)

	return &cli.Command{
		Name:     "api",
		Usage:    "run the main API in front of the auxiliary service",
		Flags:    flags,
		Metadata: map[string]any{"meta": m},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := apiConfig(cmd)
			log.Debugf("api config: listen=%s aux=%s timeout=%s", cfg.Listen, cfg.AuxiliaryBaseURL, cfg.Timeout)
			return run(ctx, cfg)
		},
	}
}

func apiConfig(cmd *cli.Command) mainapi.Config {
	return mainapi.Config{
		Listen:           cmd.String(flagListen),
		AuxiliaryBaseURL: cmd.String(flagAuxURL),
		Version:          cmd.String(flagServiceVersion),
		Timeout:          cmd.Duration(flagTimeout),
		MetricsEnabled:   cmd.Bool(flagMetrics),
		Gzip:             cmd.Bool(flagGzip),
	}
}
