// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package httpx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestNew_Healthz(t *testing.T) {
	e := New(Options{Service: "aux"})

	rec := do(e, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","service":"aux"}`, rec.Body.String())
}

func TestNew_UnknownRouteIsJSON(t *testing.T) {
	e := New(Options{Service: "aux"})

	rec := do(e, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

func TestNew_PlainErrorIs500(t *testing.T) {
	e := New(Options{Service: "aux"})
	e.GET("/fail", func(c echo.Context) error {
		return errors.New("kaboom")
	})

	rec := do(e, http.MethodGet, "/fail")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"kaboom"}`, rec.Body.String())
}

func TestNew_Metrics(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		expected int
	}{
		{"enabled", true, http.StatusOK},
		{"disabled", false, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(Options{Service: "api", MetricsEnabled: tt.enabled})
			do(e, http.MethodGet, "/healthz")

			rec := do(e, http.MethodGet, "/metrics")
			assert.Equal(t, tt.expected, rec.Code)
			if tt.enabled {
				assert.Contains(t, rec.Body.String(), `route="/healthz"`)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	e := New(Options{Service: "aux"})
	e.GET("/gone", func(c echo.Context) error {
		return WriteError(c, http.StatusNotFound, "Parameter x not found")
	})

	rec := do(e, http.MethodGet, "/gone")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
	assert.JSONEq(t, `{"error":"Parameter x not found"}`, rec.Body.String())
}

func TestServeListener_GzipAndShutdown(t *testing.T) {
	names := make([]string, 200)
	for i := range names {
		names[i] = fmt.Sprintf("bucket-%03d", i)
	}

	e := New(Options{Service: "aux"})
	e.GET("/s3-buckets", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"buckets": names, "version": "1.0.0"})
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ServeListener(ctx, ln, e, true) }()

	req, err := http.NewRequest(http.MethodGet, "http://"+ln.Addr().String()+"/s3-buckets", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")

	// An explicit Accept-Encoding disables the transport's transparent
	// decompression, so the raw header is visible.
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServe_BadAddress(t *testing.T) {
	err := Serve(context.Background(), "not-an-address", http.NotFoundHandler(), false)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "not-an-address"))
}
