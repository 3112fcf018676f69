/*
Copyright 2022 TrainCfg Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/traincfg/traincfg/pkg/lib/errors"
	"github.com/traincfg/traincfg/pkg/lib/exit"
	"github.com/traincfg/traincfg/pkg/lib/files"
	"github.com/traincfg/traincfg/pkg/lib/telemetry"
	"github.com/traincfg/traincfg/pkg/types/trainconfig"
)

var _validateCmd = &cobra.Command{
	Use:   "validate CONFIG_FILE",
	Short: "validate a training configuration file",
	Long: `This command checks a training configuration file: every key must be
recognized, parse to its declared type, fall within its allowed range,
and satisfy the cross-key constraints. All violations are reported.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initTelemetry()
		telemetry.Event("cli.validate")

		configPath := args[0]
		if !files.IsFile(configPath) {
			exit.Error(ErrorConfigFileNotFound(configPath))
		}

		errs := trainconfig.ValidateAll(configPath)
		if errors.HasError(errs) {
			for _, err := range errs[:len(errs)-1] {
				errors.PrintError(err)
			}
			exit.Error(errs[len(errs)-1])
		}

		fmt.Printf("%s is valid\n", configPath)
	},
}
