// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"

	"github.com/tfctl/auxgate/internal/log"
	"github.com/tfctl/auxgate/internal/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Options describes the plumbing shared by both services.
type Options struct {
	// Service names the process in logs, metrics and /healthz.
	Service        string
	MetricsEnabled bool
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// New returns an echo instance with the JSON serializer, error handler,
// access logging, /healthz and, when enabled, /metrics already in place.
// Callers add their own routes.
func New(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = JSONSerializer{}
	e.HTTPErrorHandler = errorHandler

	e.Use(AccessLog(opts.Service))
	if opts.MetricsEnabled {
		metrics.New(opts.Service).Mount(e)
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": opts.Service,
		})
	})

	return e
}

// WriteError renders {"error": msg} with the given status.
func WriteError(c echo.Context, status int, msg string) error {
	return c.JSON(status, ErrorBody{Error: msg})
}

// errorHandler renders errors that escape a handler, including echo's own
// 404/405, in the {"error": ...} shape.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	msg := err.Error()

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		msg = fmt.Sprint(he.Message)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = WriteError(c, status, msg)
	}
	if err != nil {
		log.WithError(err).Warn("failed to write error response")
	}
}

// AccessLog logs one line per request once the response is written.
func AccessLog(service string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			req, res := c.Request(), c.Response()
			log.WithFields(log.Fields{
				"service": service,
				"status":  res.Status,
				"size":    humanize.Bytes(uint64(res.Size)),
				"took":    time.Since(start).Round(time.Microsecond),
			}).Infof("%s %s", req.Method, req.URL.Path)
			return nil
		}
	}
}

// JSONSerializer plugs json-iterator into echo.
type JSONSerializer struct{}

// Serialize implements echo.JSONSerializer.
func (JSONSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

// Deserialize implements echo.JSONSerializer.
func (JSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := json.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}
