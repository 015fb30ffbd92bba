// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

//go:build integration
// +build integration

package aws

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	ssmv2 "github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIntegration_S3ListBuckets verifies that a freshly created bucket shows
// up in ListBuckets. Requires AWS credentials in the environment, or
// AWS_ENDPOINT_URL pointing at LocalStack.
func TestIntegration_S3ListBuckets(t *testing.T) {
	ctx := context.Background()

	cfg, err := LoadAWSConfig(ctx, WithRegion("us-east-1"))
	require.NoError(t, err)

	client := NewS3(cfg, func(o *s3v2.Options) { o.UsePathStyle = true })

	bucketName := fmt.Sprintf("auxgate-test-%d", time.Now().UnixNano())
	_, err = client.CreateBucket(ctx, &s3v2.CreateBucketInput{
		Bucket: awsv2.String(bucketName),
	})
	require.NoError(t, err)
	defer func() {
		client.DeleteBucket(ctx, &s3v2.DeleteBucketInput{
			Bucket: awsv2.String(bucketName),
		})
	}()

	out, err := client.ListBuckets(ctx, &s3v2.ListBucketsInput{})
	require.NoError(t, err)

	var names []string
	for _, b := range out.Buckets {
		names = append(names, awsv2.ToString(b.Name))
	}
	assert.Contains(t, names, bucketName)
}

// TestIntegration_SSMParameterLifecycle verifies put, get, describe and the
// ParameterNotFound error after deletion.
func TestIntegration_SSMParameterLifecycle(t *testing.T) {
	ctx := context.Background()

	cfg, err := LoadAWSConfig(ctx, WithRegion("eu-west-1"))
	require.NoError(t, err)

	client := NewSSM(cfg)

	name := fmt.Sprintf("/auxgate-test/%d", time.Now().UnixNano())
	_, err = client.PutParameter(ctx, &ssmv2.PutParameterInput{
		Name:  awsv2.String(name),
		Value: awsv2.String("hello"),
		Type:  ssmtypes.ParameterTypeString,
	})
	require.NoError(t, err)

	got, err := client.GetParameter(ctx, &ssmv2.GetParameterInput{Name: awsv2.String(name)})
	require.NoError(t, err)
	assert.Equal(t, "hello", awsv2.ToString(got.Parameter.Value))

	desc, err := client.DescribeParameters(ctx, &ssmv2.DescribeParametersInput{})
	require.NoError(t, err)
	assert.NotEmpty(t, desc.Parameters)

	_, err = client.DeleteParameter(ctx, &ssmv2.DeleteParameterInput{Name: awsv2.String(name)})
	require.NoError(t, err)

	_, err = client.GetParameter(ctx, &ssmv2.GetParameterInput{Name: awsv2.String(name)})
	var nf *ssmtypes.ParameterNotFound
	assert.True(t, errors.As(err, &nf), "expected ParameterNotFound, got %v", err)
}

// TestIntegration_MultiRegionConfig verifies config with different region
// settings and client creation.
func TestIntegration_MultiRegionConfig(t *testing.T) {
	ctx := context.Background()
	testRegions := []string{"us-east-1", "eu-west-1", "ap-southeast-1"}

	for _, testRegion := range testRegions {
		t.Run(fmt.Sprintf("region-%s", testRegion), func(t *testing.T) {
			cfg, err := LoadAWSConfig(ctx, WithRegion(testRegion))
			require.NoError(t, err)

			assert.NotNil(t, NewS3(cfg))
			assert.NotNil(t, NewSSM(cfg))
			assert.Equal(t, testRegion, cfg.Region)
		})
	}
}
