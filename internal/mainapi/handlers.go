// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package mainapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/tidwall/gjson"

	"github.com/tfctl/auxgate/internal/httpx"
)

// The payload fields are copied verbatim from the auxiliary service.
type bucketsResponse struct {
	Buckets                 jsoniter.RawMessage `json:"buckets"`
	MainAPIVersion          string              `json:"main_api_version"`
	AuxiliaryServiceVersion string              `json:"auxiliary_service_version"`
}

type parametersResponse struct {
	Parameters              jsoniter.RawMessage `json:"parameters"`
	MainAPIVersion          string              `json:"main_api_version"`
	AuxiliaryServiceVersion string              `json:"auxiliary_service_version"`
}

type valueResponse struct {
	Value                   jsoniter.RawMessage `json:"value"`
	MainAPIVersion          string              `json:"main_api_version"`
	AuxiliaryServiceVersion string              `json:"auxiliary_service_version"`
}

type handler struct {
	client  *Client
	version string
}

// NewHandler returns the main API's HTTP surface.
func NewHandler(cfg Config, client *Client) *echo.Echo {
	h := &handler{client: client, version: cfg.Version}

	e := httpx.New(httpx.Options{Service: "main-api", MetricsEnabled: cfg.MetricsEnabled})
	e.GET("/s3-buckets", h.listBuckets)
	e.GET("/parameters", h.listParameters)
	e.GET("/parameter/:name", h.getParameter)
	return e
}

func (h *handler) listBuckets(c echo.Context) error {
	raw, auxVersion, err := h.fetch(c, "/s3-buckets", "buckets")
	if err != nil {
		return writeUpstreamError(c, err)
	}
	return c.JSON(http.StatusOK, bucketsResponse{
		Buckets:                 raw,
		MainAPIVersion:          h.version,
		AuxiliaryServiceVersion: auxVersion,
	})
}

func (h *handler) listParameters(c echo.Context) error {
	raw, auxVersion, err := h.fetch(c, "/parameters", "parameters")
	if err != nil {
		return writeUpstreamError(c, err)
	}
	return c.JSON(http.StatusOK, parametersResponse{
		Parameters:              raw,
		MainAPIVersion:          h.version,
		AuxiliaryServiceVersion: auxVersion,
	})
}

func (h *handler) getParameter(c echo.Context) error {
	name := c.Param("name")
	if strings.Contains(name, "/") {
		return httpx.WriteError(c, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	}

	path := "/parameter/" + url.PathEscape(name)
	raw, auxVersion, err := h.fetch(c, path, "value")
	if err != nil {
		return writeUpstreamError(c, err)
	}
	return c.JSON(http.StatusOK, valueResponse{
		Value:                   raw,
		MainAPIVersion:          h.version,
		AuxiliaryServiceVersion: auxVersion,
	})
}

// fetch calls the auxiliary service and pulls out field and version. The
// field's JSON is returned raw; its shape is not checked.
func (h *handler) fetch(c echo.Context, path, field string) (jsoniter.RawMessage, string, error) {
	body, err := h.client.Fetch(c.Request().Context(), path)
	if err != nil {
		return nil, "", err
	}

	payload := gjson.GetBytes(body, field)
	if !payload.Exists() {
		return nil, "", &UpstreamError{
			Status:  http.StatusBadGateway,
			Message: fmt.Sprintf("auxiliary service response missing %q", field),
		}
	}
	auxVersion := gjson.GetBytes(body, "version")
	if !auxVersion.Exists() {
		return nil, "", &UpstreamError{
			Status:  http.StatusBadGateway,
			Message: `auxiliary service response missing "version"`,
		}
	}

	return jsoniter.RawMessage(payload.Raw), auxVersion.String(), nil
}

func writeUpstreamError(c echo.Context, err error) error {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return httpx.WriteError(c, ue.Status, ue.Message)
	}
	return httpx.WriteError(c, http.StatusBadGateway, err.Error())
}
