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

	"github.com/urfave/cli/v3"

	"github.com/bmicalc/bmicalc/pkg/bmi"
	"github.com/bmicalc/bmicalc/pkg/defaults"
	"github.com/bmicalc/bmicalc/pkg/serializer"
)

func batchCmd() *cli.Command {
	return &cli.Command{
		Name:                  "batch",
		EnableShellCompletion: true,
		Usage:                 "Calculate BMI for a list of requests read from a file",
		Description: `Calculate BMI for every request in a JSON or YAML file. The file holds
a list of requests under "requests":

  requests:
    - height: {value: 170, unit: cm}
      weight: {value: 70, unit: kg}
    - height: {value: 67, unit: in}
      weight: {value: 154, unit: lb}

The input may also be "-" for stdin or a ConfigMap URI (cm://namespace/name).
The whole batch fails if any request is invalid.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"f"},
				Usage:    "Path or URI of the batch request file",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "max-batch-size",
				Value: defaults.MaxBatchSize,
				Usage: "Largest number of requests accepted",
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

			input := cmd.String("input")
			batch, err := serializer.FromFile[bmi.BatchRequest](input)
			if err != nil {
				return fmt.Errorf("failed to load batch from %q: %w", input, err)
			}

			for i := range batch.Requests {
				if err := batch.Requests[i].Normalize(); err != nil {
					return fmt.Errorf("request %d: %w", i, err)
				}
			}

			calc := bmi.NewCalculator(
				bmi.WithVersion(version),
				bmi.WithSource(resultSource),
				bmi.WithMaxBatchSize(int(cmd.Int("max-batch-size"))),
			)

			res, err := calc.CalculateBatch(ctx, batch.Requests)
			if err != nil {
				return fmt.Errorf("error calculating batch: %w", err)
			}

			return writeResult(ctx, cmd, outFormat, res)
		},
	}
}
