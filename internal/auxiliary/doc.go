// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package auxiliary implements the auxiliary service: S3 bucket listing and
// SSM parameter reads exposed as JSON over HTTP.
//
//	GET /s3-buckets        {"buckets":[...],"version":"..."}
//	GET /parameters        {"parameters":[...],"version":"..."}
//	GET /parameter/{name}  {"value":"...","version":"..."}
//
// A missing parameter is a 404; every other failure is a 500 carrying the
// error text.
package auxiliary
