// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package auxiliary

import (
	"context"
	"fmt"

	awsx "github.com/tfctl/auxgate/internal/aws"
	"github.com/tfctl/auxgate/internal/httpx"
	"github.com/tfctl/auxgate/internal/log"
)

// Run loads AWS configuration, builds the S3 and SSM clients and serves until
// ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid auxiliary service config: %w", err)
	}

	awsCfg, err := awsx.LoadAWSConfig(ctx, cfg.AWSOptions()...)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	svc := NewService(cfg, awsx.NewS3(awsCfg), awsx.NewSSM(awsCfg))

	log.Infof("auxiliary service %s: region=%s prefix=%s metrics=%t",
		cfg.Version, awsCfg.Region, cfg.ParamPrefix, cfg.MetricsEnabled)

	return httpx.Serve(ctx, cfg.Listen, NewHandler(cfg, svc), cfg.Gzip)
}
