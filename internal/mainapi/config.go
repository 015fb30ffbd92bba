// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package mainapi

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/tfctl/auxgate/internal/version"
)

const (
	DefaultListen           = ":8000"
	DefaultAuxiliaryBaseURL = "http://auxiliary-service.auxiliary-service.svc.cluster.local:8001"
	DefaultTimeout          = 5 * time.Second
)

// Config is built once at process entry and never mutated. The in-cluster
// address and an environment-supplied one are the same deployment with a
// different AuxiliaryBaseURL.
type Config struct {
	Listen           string
	AuxiliaryBaseURL string
	// Version is stamped on every response as main_api_version.
	Version string
	// Timeout bounds each outbound call to the auxiliary service.
	Timeout        time.Duration
	MetricsEnabled bool
	Gzip           bool
}

// DefaultConfig returns a Config populated with the documented defaults.
func DefaultConfig() Config {
	return Config{
		Listen:           DefaultListen,
		AuxiliaryBaseURL: DefaultAuxiliaryBaseURL,
		Version:          version.ServiceDefault,
		Timeout:          DefaultTimeout,
	}
}

// Validate reports the first missing or nonsensical field.
func (c Config) Validate() error {
	switch {
	case c.Listen == "":
		return errors.New("listen address is required")
	case c.Version == "":
		return errors.New("service version is required")
	case c.Timeout <= 0:
		return errors.New("timeout must be positive")
	}
	return ValidateBaseURL(c.AuxiliaryBaseURL)
}

// ValidateBaseURL accepts absolute http(s) URLs with a host.
func ValidateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid auxiliary service URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid auxiliary service URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid auxiliary service URL %q: missing host", raw)
	}
	return nil
}
