// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package auxiliary

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tfctl/auxgate/internal/httpx"
)

type bucketsResponse struct {
	Buckets []string `json:"buckets"`
	Version string   `json:"version"`
}

type parametersResponse struct {
	Parameters []string `json:"parameters"`
	Version    string   `json:"version"`
}

type valueResponse struct {
	Value   string `json:"value"`
	Version string `json:"version"`
}

type handler struct {
	svc     *Service
	version string
}

// NewHandler returns the auxiliary service's HTTP surface.
func NewHandler(cfg Config, svc *Service) *echo.Echo {
	h := &handler{svc: svc, version: cfg.Version}

	e := httpx.New(httpx.Options{Service: "auxiliary-service", MetricsEnabled: cfg.MetricsEnabled})
	e.GET("/s3-buckets", h.listBuckets)
	e.GET("/parameters", h.listParameters)
	e.GET("/parameter/:name", h.getParameter)
	return e
}

func (h *handler) listBuckets(c echo.Context) error {
	names, err := h.svc.ListBuckets(c.Request().Context())
	if err != nil {
		return httpx.WriteError(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, bucketsResponse{Buckets: names, Version: h.version})
}

func (h *handler) listParameters(c echo.Context) error {
	names, err := h.svc.ListParameters(c.Request().Context())
	if err != nil {
		return httpx.WriteError(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, parametersResponse{Parameters: names, Version: h.version})
}

func (h *handler) getParameter(c echo.Context) error {
	name := c.Param("name")
	if strings.Contains(name, "/") {
		return httpx.WriteError(c, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	}

	value, err := h.svc.GetParameter(c.Request().Context(), name)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, valueResponse{Value: value, Version: h.version})
	case IsParameterNotFound(err):
		return httpx.WriteError(c, http.StatusNotFound, fmt.Sprintf("Parameter %s not found", name))
	default:
		return httpx.WriteError(c, http.StatusInternalServerError, err.Error())
	}
}
