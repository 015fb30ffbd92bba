// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/auxgate/internal/auxiliary"
	"github.com/tfctl/auxgate/internal/log"
	"github.com/tfctl/auxgate/internal/meta"
)

const (
	flagProfile         = "profile"
	flagRegion          = "region"
	flagAccessKeyID     = "access-key-id"
	flagSecretAccessKey = "secret-access-key"
	flagEndpointURL     = "endpoint-url"
	flagParamPrefix     = "param-prefix"
)

func auxCommandBuilder(m meta.Meta, run func(context.Context, auxiliary.Config) error) *cli.Command {
	m.Namespace = "aux"

	flags := NewServerFlags(m, "AUX", auxiliary.DefaultListen, auxiliary.DefaultTimeout)
	flags = append(flags,
		NewStringFlag(m, flagProfile, "AWS shared config profile", "", "AWS_PROFILE"),
		NewStringFlag(m, flagRegion, "AWS region", auxiliary.DefaultRegion, "AWS_REGION"),
		NewStringFlag(m, flagAccessKeyID, "AWS access key id; default credential chain when unset", "", "AWS_ACCESS_KEY_ID"),
		NewStringFlag(m, flagSecretAccessKey, "AWS secret access key", "", "AWS_SECRET_ACCESS_KEY"),
		NewStringFlag(m, flagEndpointURL, "override the AWS endpoint, e.g. LocalStack", "", "AWS_ENDPOINT_URL"),
		NewStringFlag(m, flagParamPrefix, "prefix prepended to every parameter name", auxiliary.DefaultParamPrefix, "PARAM_PREFIX"),
	)

	return &cli.Command{
		Name:     "aux",
		Usage:    "run the auxiliary service (S3 buckets, SSM parameters)",
		Flags:    flags,
		Metadata: map[string]any{"meta": m},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := auxConfig(cmd)
			log.Debugf("aux config: listen=%s region=%s endpoint=%s prefix=%s timeout=%s",
				cfg.Listen, cfg.Region, cfg.EndpointURL, cfg.ParamPrefix, cfg.Timeout)
			return run(ctx, cfg)
		},
	}
}

func auxConfig(cmd *cli.Command) auxiliary.Config {
	return auxiliary.Config{
		Listen:          cmd.String(flagListen),
		Profile:         cmd.String(flagProfile),
		Region:          cmd.String(flagRegion),
		AccessKeyID:     cmd.String(flagAccessKeyID),
		SecretAccessKey: cmd.String(flagSecretAccessKey),
		EndpointURL:     cmd.String(flagEndpointURL),
		Version:         cmd.String(flagServiceVersion),
		ParamPrefix:     cmd.String(flagParamPrefix),
		Timeout:         cmd.Duration(flagTimeout),
		MetricsEnabled:  cmd.Bool(flagMetrics),
		Gzip:            cmd.Bool(flagGzip),
	}
}
