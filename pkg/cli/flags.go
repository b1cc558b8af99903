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
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/bmicalc/bmicalc/pkg/k8s/client"
	"github.com/bmicalc/bmicalc/pkg/serializer"
)

// Shared flags are built fresh for each command.

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage: `Output destination. Supports file paths or ConfigMap URIs (cm://namespace/name).
	Defaults to stdout.`,
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatTable),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
		Sources: cli.EnvVars("BMI_FORMAT"),
	}
}

func kubeconfigFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "kubeconfig",
		Aliases: []string{"k"},
		Usage:   "Path to kubeconfig used for cm:// outputs (defaults to KUBECONFIG or ~/.kube/config)",
	}
}

// parseOutputFormat resolves --format, falling back to the config file.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(stringOption(cmd, configKeyFormat))
	if format.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v", format, serializer.SupportedFormats())
	}
	return format, nil
}

// newOutput returns the serializer for --output. Results go to the root
// command's writer when no destination is given.
func newOutput(cmd *cli.Command, format serializer.Format) (serializer.Serializer, error) {
	path := strings.TrimSpace(cmd.String("output"))
	if path == "" {
		return serializer.NewWriter(format, cmd.Root().Writer), nil
	}

	var opts []serializer.ConfigMapOption
	if kubeconfig := cmd.String("kubeconfig"); kubeconfig != "" && strings.HasPrefix(path, serializer.ConfigMapURIScheme) {
		kc, _, err := client.BuildKubeClient(kubeconfig)
		if err != nil {
			return nil, fmt.Errorf("failed to build kubernetes client: %w", err)
		}
		opts = append(opts, serializer.WithKubeClient(kc))
	}
	return serializer.NewOutput(format, path, opts...)
}
