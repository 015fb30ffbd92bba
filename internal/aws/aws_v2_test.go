// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	ssmv2 "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptions verifies that each option function sets its field.
func TestOptions(t *testing.T) {
	var opts options
	WithProfile("my-profile")(&opts)
	WithRegion("eu-west-1")(&opts)
	WithStaticCredentials("AKID", "SECRET")(&opts)
	WithEndpoint("http://localhost:4566")(&opts)
	WithRetryer(func() awsv2.Retryer { return retry.NewStandard() })(&opts)

	assert.Equal(t, "my-profile", opts.profile)
	assert.Equal(t, "eu-west-1", opts.region)
	assert.Equal(t, "AKID", opts.accessKeyID)
	assert.Equal(t, "SECRET", opts.secretAccessKey)
	assert.Equal(t, "http://localhost:4566", opts.endpoint)
	require.NotNil(t, opts.retryer)
	assert.NotNil(t, opts.retryer())
}

func TestOptions_Static(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		secret   string
		expected bool
	}{
		{"both", "AKID", "SECRET", true},
		{"id only", "AKID", "", false},
		{"secret only", "", "SECRET", false},
		{"neither", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts options
			WithStaticCredentials(tt.id, tt.secret)(&opts)
			assert.Equal(t, tt.expected, opts.static())
		})
	}
}

// TestLoadAWSConfig_WithRegion verifies that region option is applied
// during config loading.
func TestLoadAWSConfig_WithRegion(t *testing.T) {
	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-west-2"))

	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)
}

// TestLoadAWSConfig_OptionsOrder verifies that later options override
// earlier ones.
func TestLoadAWSConfig_OptionsOrder(t *testing.T) {
	cfg, err := LoadAWSConfig(
		context.Background(),
		WithRegion("us-east-1"),
		WithRegion("eu-west-1"),
	)

	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)
}

// TestLoadAWSConfig_StaticCredentials verifies that a static key pair is
// what the credential provider hands out.
func TestLoadAWSConfig_StaticCredentials(t *testing.T) {
	ctx := context.Background()
	cfg, err := LoadAWSConfig(ctx,
		WithRegion("eu-west-1"),
		WithStaticCredentials("AKIDEXAMPLE", "wJalrXUtnFEMI"),
	)
	require.NoError(t, err)
	require.NotNil(t, cfg.Credentials)

	creds, err := cfg.Credentials.Retrieve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AKIDEXAMPLE", creds.AccessKeyID)
	assert.Equal(t, "wJalrXUtnFEMI", creds.SecretAccessKey)
}

// TestLoadAWSConfig_Endpoint verifies the base endpoint override lands on the
// shared config.
func TestLoadAWSConfig_Endpoint(t *testing.T) {
	cfg, err := LoadAWSConfig(context.Background(),
		WithRegion("eu-west-1"),
		WithEndpoint("http://localhost:4566"),
	)
	require.NoError(t, err)
	require.NotNil(t, cfg.BaseEndpoint)
	assert.Equal(t, "http://localhost:4566", *cfg.BaseEndpoint)
}

// TestLoadAWSConfig_ContextCancellation verifies that LoadAWSConfig
// tolerates a cancelled context.
func TestLoadAWSConfig_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Depending on timing, this may error if context is checked early
	// in config.LoadDefaultConfig. We accept either outcome.
	_, _ = LoadAWSConfig(ctx)
}

func TestNewClients(t *testing.T) {
	cfg, err := LoadAWSConfig(context.Background(), WithRegion("eu-west-1"))
	require.NoError(t, err)

	s3c := NewS3(cfg)
	assert.IsType(t, &s3v2.Client{}, s3c)
	assert.Equal(t, "eu-west-1", s3c.Options().Region)

	ssmc := NewSSM(cfg, func(o *ssmv2.Options) { o.Region = "us-east-1" })
	assert.IsType(t, &ssmv2.Client{}, ssmc)
	assert.Equal(t, "us-east-1", ssmc.Options().Region)
}
