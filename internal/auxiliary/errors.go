// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package auxiliary

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"
)

const codeParameterNotFound = "ParameterNotFound"

// ErrorCode returns the AWS error code carried by err, or "" when err did not
// come back from an AWS API.
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// IsParameterNotFound reports whether err is SSM's ParameterNotFound, either
// as the modeled type or as a generic API error with that code.
func IsParameterNotFound(err error) bool {
	var nf *types.ParameterNotFound
	if errors.As(err, &nf) {
		return true
	}
	return ErrorCode(err) == codeParameterNotFound
}
