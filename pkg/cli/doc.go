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

// Package cli implements the bmi command-line interface.
//
// # Commands
//
// calc - Calculate BMI for one height and weight:
//
//	bmi calc --height 170 --weight 70
//	bmi calc --height 67 --height-unit in --weight 154 --weight-unit lb --format json
//
// batch - Calculate BMI for a list of requests from a file:
//
//	bmi batch --input requests.yaml --output results.json --format json
//
// categories - Show category ranges, colors and recommendations:
//
//	bmi categories --format yaml
//
// # Global Flags
//
//	--config       Config file (default: $HOME/.bmi.yaml)
//	--log-level    debug, info, warn, error (env: LOG_LEVEL)
//	--quiet, -q    Suppress the disclaimer on stderr
//	--version, -v  Show version information
//
// # Output
//
//	--output, -o      File path or cm://namespace/name (default: stdout)
//	--format, -t      json, yaml, table (default: table, env: BMI_FORMAT)
//	--kubeconfig, -k  Kubeconfig for cm:// outputs
//
// # Configuration File
//
// Unit and format defaults can be set in YAML. Flags set on the command
// line take precedence, then BMI_* environment variables, then the file:
//
//	height-unit: inch
//	weight-unit: lb
//	format: json
//	quiet: true
//
// # Exit Codes
//
// The process exits 1 on any error, including invalid measurements such as
// a zero height or a negative weight.
package cli
