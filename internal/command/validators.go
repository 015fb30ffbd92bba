// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"net"
	"time"

	"github.com/tfctl/auxgate/internal/mainapi"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// ListenValidator accepts host:port, where host may be empty.
func ListenValidator(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("listen address must be a string")
	}
	if _, port, err := net.SplitHostPort(s); err != nil || port == "" {
		return fmt.Errorf("listen address must be host:port, got %q", s)
	}
	return nil
}

// URLValidator accepts absolute http(s) URLs.
func URLValidator(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("URL must be a string")
	}
	return mainapi.ValidateBaseURL(s)
}

func PositiveDurationValidator(value any) error {
	d, ok := value.(time.Duration)
	if !ok || d <= 0 {
		return fmt.Errorf("must be a positive duration, got %v", value)
	}
	return nil
}
