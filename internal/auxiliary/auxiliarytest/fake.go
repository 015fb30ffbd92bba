// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package auxiliarytest provides in-memory S3 and SSM fakes for tests of the
// auxiliary service and anything stacked on top of it.
package auxiliarytest

import (
	"context"
	"sort"
	"sync"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	ssmv2 "github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

// S3 answers ListBuckets with Names, in order, or with Err.
type S3 struct {
	Names []string
	Err   error

	mu    sync.Mutex
	calls int
}

func (f *S3) ListBuckets(ctx context.Context, params *s3v2.ListBucketsInput, optFns ...func(*s3v2.Options)) (*s3v2.ListBucketsOutput, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	out := &s3v2.ListBucketsOutput{}
	for _, n := range f.Names {
		out.Buckets = append(out.Buckets, s3types.Bucket{Name: awsv2.String(n)})
	}
	return out, nil
}

// Calls returns how many times ListBuckets ran.
func (f *S3) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// SSM serves parameters from Values keyed by full name. A name missing from
// Values yields ParameterNotFound.
type SSM struct {
	Values      map[string]string
	DescribeErr error
	GetErr      error

	mu          sync.Mutex
	requested   []string
	hadDeadline bool
}

func (f *SSM) DescribeParameters(ctx context.Context, params *ssmv2.DescribeParametersInput, optFns ...func(*ssmv2.Options)) (*ssmv2.DescribeParametersOutput, error) {
	if f.DescribeErr != nil {
		return nil, f.DescribeErr
	}

	names := make([]string, 0, len(f.Values))
	for k := range f.Values {
		names = append(names, k)
	}
	sort.Strings(names)

	out := &ssmv2.DescribeParametersOutput{}
	for _, n := range names {
		out.Parameters = append(out.Parameters, ssmtypes.ParameterMetadata{Name: awsv2.String(n)})
	}
	return out, nil
}

func (f *SSM) GetParameter(ctx context.Context, params *ssmv2.GetParameterInput, optFns ...func(*ssmv2.Options)) (*ssmv2.GetParameterOutput, error) {
	name := awsv2.ToString(params.Name)
	_, deadline := ctx.Deadline()

	f.mu.Lock()
	f.requested = append(f.requested, name)
	f.hadDeadline = deadline
	f.mu.Unlock()

	if f.GetErr != nil {
		return nil, f.GetErr
	}
	v, ok := f.Values[name]
	if !ok {
		return nil, &ssmtypes.ParameterNotFound{Message: awsv2.String("parameter not found")}
	}
	return &ssmv2.GetParameterOutput{
		Parameter: &ssmtypes.Parameter{Name: awsv2.String(name), Value: awsv2.String(v)},
	}, nil
}

// Requested returns the full names passed to GetParameter, oldest first.
func (f *SSM) Requested() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requested...)
}

// HadDeadline reports whether the last GetParameter context carried a
// deadline.
func (f *SSM) HadDeadline() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hadDeadline
}
