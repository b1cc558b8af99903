// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bmi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/bmicalc/bmicalc/pkg/defaults"
	bmierrors "github.com/bmicalc/bmicalc/pkg/errors"
	"github.com/bmicalc/bmicalc/pkg/serializer"
	"github.com/bmicalc/bmicalc/pkg/server"
)

// Query parameter names accepted by GET /v1/bmi.
const (
	QueryParamHeight     = "height"
	QueryParamHeightUnit = "heightUnit"
	QueryParamWeight     = "weight"
	QueryParamWeightUnit = "weightUnit"
)

// categoryCacheTTL can be overridden in tests.
var categoryCacheTTL = defaults.ResultCacheTTL

// BatchRequest is the body of POST /v1/bmi/batch and the input file of
// the batch command.
type BatchRequest struct {
	Requests []Request `json:"requests" yaml:"requests"`
}

// ParseRequestFromQuery builds a Request from URL query parameters. Units
// default to cm and kg when omitted.
func ParseRequestFromQuery(r *http.Request) (*Request, error) {
	q := r.URL.Query()

	height, err := parseFloatParam(q.Get(QueryParamHeight), QueryParamHeight)
	if err != nil {
		return nil, err
	}
	weight, err := parseFloatParam(q.Get(QueryParamWeight), QueryParamWeight)
	if err != nil {
		return nil, err
	}

	hu := q.Get(QueryParamHeightUnit)
	if hu == "" {
		hu = string(Centimeters)
	}
	wu := q.Get(QueryParamWeightUnit)
	if wu == "" {
		wu = string(Kilograms)
	}

	req, err := NewRequest(height, hu, weight, wu)
	if err != nil {
		return nil, bmierrors.Wrap(bmierrors.ErrCodeInvalidRequest, "unsupported unit", err)
	}
	return req, nil
}

func parseFloatParam(raw, name string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, bmierrors.WrapWithContext(bmierrors.ErrCodeInvalidRequest,
			fmt.Sprintf("missing required parameter %q", name), ErrInvalidInput,
			map[string]any{"parameter": name})
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, bmierrors.WrapWithContext(bmierrors.ErrCodeInvalidRequest,
			fmt.Sprintf("parameter %q must be a number", name),
			fmt.Errorf("%w: %w", ErrInvalidInput, err),
			map[string]any{"parameter": name, "value": raw})
	}
	return v, nil
}

// ParseRequestFromBody decodes a JSON or YAML Request and resolves its
// unit aliases.
func ParseRequestFromBody(body io.Reader, contentType string) (*Request, error) {
	var req Request
	if err := serializer.DecodeBody(body, contentType, defaults.MaxRequestBodyBytes, &req); err != nil {
		return nil, bmierrors.Wrap(bmierrors.ErrCodeInvalidRequest, "invalid request body", err)
	}
	if err := req.Normalize(); err != nil {
		return nil, bmierrors.Wrap(bmierrors.ErrCodeInvalidRequest, "unsupported unit", err)
	}
	return &req, nil
}

// ParseBatchFromBody decodes a JSON or YAML BatchRequest and resolves unit
// aliases of every item.
func ParseBatchFromBody(body io.Reader, contentType string) ([]Request, error) {
	var batch BatchRequest
	if err := serializer.DecodeBody(body, contentType, defaults.MaxRequestBodyBytes, &batch); err != nil {
		return nil, bmierrors.Wrap(bmierrors.ErrCodeInvalidRequest, "invalid request body", err)
	}
	return normalizeBatch(batch.Requests)
}

func normalizeBatch(reqs []Request) ([]Request, error) {
	for i := range reqs {
		if err := reqs[i].Normalize(); err != nil {
			return nil, bmierrors.WrapWithContext(bmierrors.ErrCodeInvalidRequest,
				fmt.Sprintf("request %d: unsupported unit", i), err,
				map[string]any{"index": i})
		}
	}
	return reqs, nil
}

// HandleCalculate serves GET /v1/bmi with query parameters and POST /v1/bmi
// with a JSON or YAML Request body.
func (c *Calculator) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.CalculateHandlerTimeout)
	defer cancel()

	var req *Request
	var err error

	switch r.Method {
	case http.MethodGet:
		req, err = ParseRequestFromQuery(r)
	case http.MethodPost:
		defer r.Body.Close()
		req, err = ParseRequestFromBody(r.Body, r.Header.Get("Content-Type"))
	default:
		writeMethodNotAllowed(w, r, http.MethodGet, http.MethodPost)
		return
	}

	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid BMI request", nil)
		return
	}

	result, err := c.Calculate(ctx, *req)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to calculate BMI", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, result)
}

// HandleBatch serves POST /v1/bmi/batch.
func (c *Calculator) HandleBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, r, http.MethodPost)
		return
	}
	defer r.Body.Close()

	ctx, cancel := context.WithTimeout(r.Context(), defaults.BatchHandlerTimeout)
	defer cancel()

	reqs, err := ParseBatchFromBody(r.Body, r.Header.Get("Content-Type"))
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid batch request", nil)
		return
	}

	result, err := c.CalculateBatch(ctx, reqs)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to calculate batch", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, result)
}

// HandleCategories serves GET /v1/categories. The response only changes
// between releases, so it's cacheable.
func (c *Calculator) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, r, http.MethodGet)
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(categoryCacheTTL.Seconds())))
	serializer.RespondJSON(w, http.StatusOK, c.CategoryList())
}

func writeMethodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	server.WriteError(w, r, http.StatusMethodNotAllowed, bmierrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": allowed,
		})
}
