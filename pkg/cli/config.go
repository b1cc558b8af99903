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
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"github.com/urfave/cli/v3"
)

// Config file keys. Each mirrors the flag of the same name.
const (
	configKeyHeightUnit = "height-unit"
	configKeyWeightUnit = "weight-unit"
	configKeyFormat     = "format"
	configKeyQuiet      = "quiet"
)

var (
	configMu sync.RWMutex
	config   = viper.New()
)

// initConfig loads the config file. An explicit path must exist; otherwise
// .bmi.yaml is looked up in the home and current directories and is
// optional. BMI_* environment variables override file values.
func initConfig(cfgFile string) error {
	v := viper.New()
	v.SetEnvPrefix("BMI")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".bmi")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	configMu.Lock()
	config = v
	configMu.Unlock()
	return nil
}

// stringOption resolves a string flag: an explicitly set flag wins, then
// the config file, then the flag default.
func stringOption(cmd *cli.Command, flag string) string {
	if cmd.IsSet(flag) {
		return cmd.String(flag)
	}
	configMu.RLock()
	defer configMu.RUnlock()
	if v := config.GetString(flag); v != "" {
		return v
	}
	return cmd.String(flag)
}

func quiet(cmd *cli.Command) bool {
	if cmd.IsSet(configKeyQuiet) {
		return cmd.Bool(configKeyQuiet)
	}
	configMu.RLock()
	defer configMu.RUnlock()
	return config.GetBool(configKeyQuiet)
}
