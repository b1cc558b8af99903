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
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bmicalc/bmicalc/pkg/defaults"
	bmierrors "github.com/bmicalc/bmicalc/pkg/errors"
	"github.com/bmicalc/bmicalc/pkg/header"
)

// Option is a functional option for configuring a Calculator.
type Option func(*Calculator)

// WithVersion sets the producer version stamped into result headers.
func WithVersion(version string) Option {
	return func(c *Calculator) {
		c.Version = version
	}
}

// WithSource records which front end produced a result, such as "cli" or
// "api", in the result metadata.
func WithSource(source string) Option {
	return func(c *Calculator) {
		c.Source = source
	}
}

// WithMaxBatchSize sets the largest batch CalculateBatch accepts.
// Non-positive values are ignored.
func WithMaxBatchSize(n int) Option {
	return func(c *Calculator) {
		if n > 0 {
			c.MaxBatchSize = n
		}
	}
}

// Calculator produces BMI results. It holds no per-request state and is
// safe for concurrent use.
type Calculator struct {
	Version      string
	Source       string
	MaxBatchSize int
}

// NewCalculator returns a Calculator configured with the given options.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		MaxBatchSize: defaults.MaxBatchSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Calculate validates the request, converts it to metric units, computes
// the BMI and attaches its category and recommendations. Invalid input
// returns an INVALID_REQUEST StructuredError wrapping ErrInvalidInput or
// ErrUnknownUnit.
func (c *Calculator) Calculate(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, bmierrors.Wrap(bmierrors.ErrCodeTimeout, "calculation timed out", err)
		}
		return nil, bmierrors.Wrap(bmierrors.ErrCodeUnavailable, "calculation canceled", err)
	}

	start := time.Now()
	defer func() {
		calculationDuration.Observe(time.Since(start).Seconds())
	}()

	res, err := c.calculate(req)
	if err != nil {
		calculationRejects.Inc()
		return nil, err
	}

	calculationsTotal.WithLabelValues(res.Category.String()).Inc()
	bmiValues.Observe(res.BMI)

	slog.Debug("bmi calculated",
		"height", req.Height.Value,
		"heightUnit", req.Height.Unit,
		"weight", req.Weight.Value,
		"weightUnit", req.Weight.Unit,
		"bmi", res.BMI,
		"category", res.Category,
	)

	return res, nil
}

func (c *Calculator) calculate(req Request) (*Result, error) {
	if !req.Height.Unit.IsValid() || !req.Weight.Unit.IsValid() {
		return nil, bmierrors.WrapWithContext(bmierrors.ErrCodeInvalidRequest,
			"unsupported unit", ErrUnknownUnit, map[string]any{
				"heightUnit":           req.Height.Unit,
				"weightUnit":           req.Weight.Unit,
				"supportedHeightUnits": SupportedHeightUnits(),
				"supportedWeightUnits": SupportedWeightUnits(),
			})
	}

	heightM, weightKg := Convert(req.Height.Value, req.Height.Unit, req.Weight.Value, req.Weight.Unit)

	raw, err := ComputeBMI(heightM, weightKg)
	if err != nil {
		return nil, bmierrors.WrapWithContext(bmierrors.ErrCodeInvalidRequest,
			"invalid height or weight", err, map[string]any{
				"height":     req.Height.Value,
				"heightUnit": req.Height.Unit,
				"weight":     req.Weight.Value,
				"weightUnit": req.Weight.Unit,
			})
	}

	category := Classify(raw)

	res := &Result{
		Input:           req,
		HeightMeters:    RoundTo(heightM, 4),
		WeightKilograms: RoundTo(weightKg, 3),
		BMI:             RoundTo(raw, 1),
		Category:        category,
		Color:           category.Color(),
		Icon:            category.Icon(),
		Recommendations: RecommendationsFor(category),
	}
	res.Init(header.KindBMIResult, header.APIVersion, c.Version, c.headerOptions()...)

	return res, nil
}

// CalculateBatch calculates every request in order. The batch fails on the
// first invalid request; the error context carries its index.
func (c *Calculator) CalculateBatch(ctx context.Context, reqs []Request) (*BatchResult, error) {
	if len(reqs) == 0 {
		return nil, bmierrors.Wrap(bmierrors.ErrCodeInvalidRequest, "batch is empty", ErrInvalidInput)
	}
	if c.MaxBatchSize > 0 && len(reqs) > c.MaxBatchSize {
		return nil, bmierrors.WrapWithContext(bmierrors.ErrCodeInvalidRequest,
			fmt.Sprintf("batch size %d exceeds limit of %d", len(reqs), c.MaxBatchSize),
			ErrBatchTooLarge, map[string]any{
				"size":  len(reqs),
				"limit": c.MaxBatchSize,
			})
	}

	out := &BatchResult{Results: make([]*Result, 0, len(reqs))}
	for i, req := range reqs {
		res, err := c.Calculate(ctx, req)
		if err != nil {
			ctxInfo := map[string]any{"index": i}
			var se *bmierrors.StructuredError
			if errors.As(err, &se) {
				for k, v := range se.Context {
					ctxInfo[k] = v
				}
				return nil, bmierrors.WrapWithContext(se.Code,
					fmt.Sprintf("request %d: %s", i, se.Message), se.Cause, ctxInfo)
			}
			return nil, bmierrors.WrapWithContext(bmierrors.ErrCodeInternal,
				fmt.Sprintf("request %d failed", i), err, ctxInfo)
		}
		out.Results = append(out.Results, res)
	}

	out.Count = len(out.Results)
	out.Init(header.KindBatchResult, header.APIVersion, c.Version, c.headerOptions()...)
	return out, nil
}

// CategoryList returns all categories wrapped in a header.
func (c *Calculator) CategoryList() *CategoryList {
	l := &CategoryList{Categories: Categories()}
	l.Init(header.KindCategoryList, header.APIVersion, c.Version, c.headerOptions()...)
	return l
}

func (c *Calculator) headerOptions() []header.Option {
	if c.Source == "" {
		return nil
	}
	return []header.Option{header.WithMetadata("source", c.Source)}
}
