// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package auxiliary

import (
	"context"
	"fmt"
	"strings"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	ssmv2 "github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/tfctl/auxgate/internal/log"
)

// BucketLister is the slice of the S3 client the service needs.
type BucketLister interface {
	ListBuckets(ctx context.Context,
		params *s3v2.ListBucketsInput,
		optFns ...func(*s3v2.Options)) (*s3v2.ListBucketsOutput, error)
}

// ParameterStore is the slice of the SSM client the service needs.
type ParameterStore interface {
	DescribeParameters(ctx context.Context,
		params *ssmv2.DescribeParametersInput,
		optFns ...func(*ssmv2.Options)) (*ssmv2.DescribeParametersOutput, error)
	GetParameter(ctx context.Context,
		params *ssmv2.GetParameterInput,
		optFns ...func(*ssmv2.Options)) (*ssmv2.GetParameterOutput, error)
}

// Service performs one AWS call per operation. It holds no mutable state and
// is safe for concurrent use.
type Service struct {
	buckets BucketLister
	params  ParameterStore
	prefix  string
	timeout time.Duration
}

// NewService wires the AWS clients to the prefix and timeout from cfg.
func NewService(cfg Config, buckets BucketLister, params ParameterStore) *Service {
	return &Service{
		buckets: buckets,
		params:  params,
		prefix:  cfg.ParamPrefix,
		timeout: cfg.Timeout,
	}
}

// ListBuckets returns bucket names in the order S3 reports them. Only the
// first page is read.
func (s *Service) ListBuckets(ctx context.Context) ([]string, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	out, err := s.buckets.ListBuckets(ctx, &s3v2.ListBucketsInput{})
	if err != nil {
		log.WithError(err).Errorf("ListBuckets failed: code=%s", ErrorCode(err))
		return nil, err
	}

	names := make([]string, 0, len(out.Buckets))
	for _, b := range out.Buckets {
		names = append(names, awsv2.ToString(b.Name))
	}
	log.Debugf("ListBuckets: count=%d", len(names))
	return names, nil
}

// ListParameters returns the names of the parameters visible to the caller.
// Only the first page is read.
func (s *Service) ListParameters(ctx context.Context) ([]string, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	out, err := s.params.DescribeParameters(ctx, &ssmv2.DescribeParametersInput{})
	if err != nil {
		log.WithError(err).Errorf("DescribeParameters failed: code=%s", ErrorCode(err))
		return nil, err
	}

	names := make([]string, 0, len(out.Parameters))
	for _, p := range out.Parameters {
		names = append(names, awsv2.ToString(p.Name))
	}
	log.Debugf("DescribeParameters: count=%d", len(names))
	return names, nil
}

// GetParameter reads the value stored under FullName(name).
func (s *Service) GetParameter(ctx context.Context, name string) (string, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	fullName := s.FullName(name)
	log.Debugf("Input name: %s, Resolved full name: %s", name, fullName)

	out, err := s.params.GetParameter(ctx, &ssmv2.GetParameterInput{
		Name: awsv2.String(fullName),
	})
	if err != nil {
		if code := ErrorCode(err); code != "" {
			log.Errorf("ClientError - Code: %s, Message: %v, Full name: %s", code, err, fullName)
		} else {
			log.Errorf("Unexpected error for parameter %s: %v", name, err)
		}
		return "", err
	}
	if out.Parameter == nil {
		return "", fmt.Errorf("GetParameter returned no parameter for %s", fullName)
	}

	return awsv2.ToString(out.Parameter.Value), nil
}

// FullName joins the configured prefix and name with a single slash.
func (s *Service) FullName(name string) string {
	return strings.TrimSuffix(s.prefix, "/") + "/" + name
}

func (s *Service) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
