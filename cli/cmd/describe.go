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

	"github.com/traincfg/traincfg/pkg/lib/exit"
	"github.com/traincfg/traincfg/pkg/lib/files"
	"github.com/traincfg/traincfg/pkg/lib/table"
	"github.com/traincfg/traincfg/pkg/lib/telemetry"
	"github.com/traincfg/traincfg/pkg/types/trainconfig"
)

var _describeCmd = &cobra.Command{
	Use:   "describe CONFIG_FILE",
	Short: "describe a training configuration file",
	Long: `This command loads a training configuration file, applies defaults, and
prints the fully resolved experiment along with its content hash.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initTelemetry()
		telemetry.Event("cli.describe")

		configPath := args[0]
		if !files.IsFile(configPath) {
			exit.Error(ErrorConfigFileNotFound(configPath))
		}

		config, err := trainconfig.NewForFile(configPath)
		if err != nil {
			exit.Error(err)
		}

		fmt.Println(config.UserStr())

		var summary table.KeyValuePairs
		summary.Add("hash", config.Hash())
		summary.Add("gradient clipping", !config.ClippingDisabled())
		if len(config.KeyToDrop) > 0 {
			summary.Add("dropped labels", config.KeyToDrop)
		}
		summary.Print()
	},
}
