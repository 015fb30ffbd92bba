// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package auxiliary

import (
	"errors"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"

	awsx "github.com/tfctl/auxgate/internal/aws"
	"github.com/tfctl/auxgate/internal/version"
)

const (
	DefaultListen      = ":8001"
	DefaultRegion      = "eu-west-1"
	DefaultParamPrefix = "/kantox-challenge/dev"
	DefaultTimeout     = 5 * time.Second
)

// Config is built once at process entry and never mutated.
type Config struct {
	Listen string
	// Profile selects a shared config profile; empty uses the default chain.
	Profile         string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// EndpointURL overrides the AWS endpoint for every client, e.g. LocalStack.
	EndpointURL string
	// Version is stamped on every successful response.
	Version string
	// ParamPrefix is prepended to every parameter lookup.
	ParamPrefix string
	// Timeout bounds each AWS call.
	Timeout        time.Duration
	MetricsEnabled bool
	Gzip           bool
}

// DefaultConfig returns a Config populated with the documented defaults.
func DefaultConfig() Config {
	return Config{
		Listen:      DefaultListen,
		Region:      DefaultRegion,
		Version:     version.ServiceDefault,
		ParamPrefix: DefaultParamPrefix,
		Timeout:     DefaultTimeout,
	}
}

// Validate reports the first missing or nonsensical field.
func (c Config) Validate() error {
	switch {
	case c.Listen == "":
		return errors.New("listen address is required")
	case c.Region == "":
		return errors.New("region is required")
	case c.Version == "":
		return errors.New("service version is required")
	case c.Timeout <= 0:
		return errors.New("timeout must be positive")
	}
	return nil
}

// AWSOptions translates the config into SDK loading options. Every AWS call
// is attempted exactly once.
func (c Config) AWSOptions() []awsx.Option {
	opts := []awsx.Option{
		awsx.WithRegion(c.Region),
		awsx.WithStaticCredentials(c.AccessKeyID, c.SecretAccessKey),
		awsx.WithRetryer(func() awsv2.Retryer { return awsv2.NopRetryer{} }),
	}
	if c.Profile != "" {
		opts = append(opts, awsx.WithProfile(c.Profile))
	}
	if c.EndpointURL != "" {
		opts = append(opts, awsx.WithEndpoint(c.EndpointURL))
	}
	return opts
}
