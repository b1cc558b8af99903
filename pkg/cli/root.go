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
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/bmicalc/bmicalc/pkg/logging"
)

const (
	name           = "bmi"
	versionDefault = "dev"
	resultSource   = "cli"

	disclaimer = "Note: BMI is a screening measure for educational purposes only and is not medical advice."
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the root command with os.Args and exits non-zero on error.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Body Mass Index calculator",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Description: `Calculate Body Mass Index from height and weight, classify it and
print recommendations for the resulting category.

Units:
  height: cm, inch (aliases: centimeters, in, inches)
  weight: kg, lb (aliases: kilograms, lbs, pounds)

Defaults for units and output format can be set in a YAML config file
(default $HOME/.bmi.yaml):

  height-unit: inch
  weight-unit: lb
  format: table`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "config file (default is $HOME/.bmi.yaml)",
				Sources: cli.EnvVars("BMI_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvVarLogLevel),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Suppress the disclaimer",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := initConfig(cmd.String("config")); err != nil {
				return ctx, err
			}
			initLogger(cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			calcCmd(),
			batchCmd(),
			categoriesCmd(),
		},
	}
}

// initLogger configures slog after flags and config are parsed so
// --log-level takes effect before any command executes. Logs go to stderr
// and stay out of the way of results on stdout.
func initLogger(level string) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", level)
}

// printDisclaimer writes the disclaimer to stderr unless suppressed.
func printDisclaimer(cmd *cli.Command) {
	if quiet(cmd) {
		return
	}
	fmt.Fprintln(cmd.Root().ErrWriter, disclaimer)
}
