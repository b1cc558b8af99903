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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/bmicalc/bmicalc/pkg/bmi"
	"github.com/bmicalc/bmicalc/pkg/serializer"
)

func calcCmd() *cli.Command {
	return &cli.Command{
		Name:                  "calc",
		EnableShellCompletion: true,
		Usage:                 "Calculate BMI for a single height and weight",
		Description: `Calculate Body Mass Index from a height and a weight, classify the
result and print recommendations for its category.

Examples:
  bmi calc --height 170 --weight 70
  bmi calc --height 67 --height-unit in --weight 154 --weight-unit lb --format json
  bmi calc --height 170 --weight 70 --output cm://health/bmi-result`,
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:     "height",
				Usage:    "Height value, must be greater than zero",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "height-unit",
				Value:   string(bmi.Centimeters),
				Usage:   fmt.Sprintf("Height unit (supported values: %s)", strings.Join(bmi.SupportedHeightUnits(), ", ")),
				Sources: cli.EnvVars("BMI_HEIGHT_UNIT"),
			},
			&cli.FloatFlag{
				Name:     "weight",
				Usage:    "Weight value, must be greater than zero",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "weight-unit",
				Value:   string(bmi.Kilograms),
				Usage:   fmt.Sprintf("Weight unit (supported values: %s)", strings.Join(bmi.SupportedWeightUnits(), ", ")),
				Sources: cli.EnvVars("BMI_WEIGHT_UNIT"),
			},
			outputFlag(),
			formatFlag(),
			kubeconfigFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			req, err := buildRequestFromCmd(cmd)
			if err != nil {
				return fmt.Errorf("error parsing calc input: %w", err)
			}

			res, err := bmi.NewCalculator(bmi.WithVersion(version), bmi.WithSource(resultSource)).Calculate(ctx, *req)
			if err != nil {
				return fmt.Errorf("error calculating bmi: %w", err)
			}

			return writeResult(ctx, cmd, outFormat, res)
		},
	}
}

// buildRequestFromCmd constructs a bmi.Request from the calc flags.
func buildRequestFromCmd(cmd *cli.Command) (*bmi.Request, error) {
	return bmi.NewRequest(
		cmd.Float("height"),
		stringOption(cmd, configKeyHeightUnit),
		cmd.Float("weight"),
		stringOption(cmd, configKeyWeightUnit),
	)
}

// writeResult serializes v to the --output destination and prints the
// disclaimer.
func writeResult(ctx context.Context, cmd *cli.Command, format serializer.Format, v any) error {
	ser, err := newOutput(cmd, format)
	if err != nil {
		return fmt.Errorf("invalid output: %w", err)
	}
	defer func() {
		if err := serializer.Close(ser); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if err := ser.Serialize(ctx, v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	printDisclaimer(cmd)
	return nil
}
