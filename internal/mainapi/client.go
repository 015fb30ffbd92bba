// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package mainapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/tidwall/gjson"

	"github.com/tfctl/auxgate/internal/log"
)

// maxBody caps how much of an auxiliary service response is read.
const maxBody = 8 << 20

// UpstreamError describes a failed call to the auxiliary service. Status is
// the HTTP status the main API answers with.
type UpstreamError struct {
	Status  int
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Client issues GETs against the auxiliary service. No retries.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for baseURL whose calls give up after timeout.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if err := ValidateBaseURL(baseURL); err != nil {
		return nil, err
	}

	hc := cleanhttp.DefaultPooledClient()
	hc.Timeout = timeout

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    hc,
	}, nil
}

// Fetch GETs path and returns the body. Any outcome other than a 2xx with a
// JSON body is an *UpstreamError: a non-2xx keeps its status and error text,
// a timeout is a 504 and everything else is a 502.
func (c *Client) Fetch(ctx context.Context, path string) ([]byte, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Errorf("auxiliary service call failed: url=%s", url)
		status := http.StatusBadGateway
		if isTimeout(err) {
			status = http.StatusGatewayTimeout
		}
		return nil, &UpstreamError{
			Status:  status,
			Message: fmt.Sprintf("auxiliary service unavailable: %v", err),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, &UpstreamError{
			Status:  http.StatusBadGateway,
			Message: fmt.Sprintf("failed to read auxiliary service response: %v", err),
			Err:     err,
		}
	}
	log.Debugf("auxiliary service: url=%s status=%d took=%s", url, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := ""
		if gjson.ValidBytes(body) {
			msg = gjson.GetBytes(body, "error").String()
		}
		if msg == "" {
			msg = fmt.Sprintf("auxiliary service returned %s", resp.Status)
		}
		return nil, &UpstreamError{Status: resp.StatusCode, Message: msg}
	}

	if !gjson.ValidBytes(body) {
		return nil, &UpstreamError{
			Status:  http.StatusBadGateway,
			Message: "auxiliary service returned invalid JSON",
		}
	}

	return body, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
