// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package mainapi

import (
	"context"
	"fmt"

	"github.com/tfctl/auxgate/internal/httpx"
	"github.com/tfctl/auxgate/internal/log"
)

// Run serves the main API until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid main API config: %w", err)
	}

	client, err := NewClient(cfg.AuxiliaryBaseURL, cfg.Timeout)
	if err != nil {
		return err
	}

	log.Infof("main API %s: auxiliary=%s metrics=%t", cfg.Version, cfg.AuxiliaryBaseURL, cfg.MetricsEnabled)

	return httpx.Serve(ctx, cfg.Listen, NewHandler(cfg, client), cfg.Gzip)
}
