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
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/traincfg/traincfg/pkg/lib/exit"
	"github.com/traincfg/traincfg/pkg/lib/telemetry"
)

var _cmdStr string

var _flagDebug bool

var _localDir string
var _cliConfigPath string
var _clientIDPath string

func init() {
	homeDir, err := homedir.Dir()
	if err != nil {
		exit.Error(err)
	}

	_localDir = filepath.Join(homeDir, ".traincfg")
	err = os.MkdirAll(_localDir, os.ModePerm)
	if err != nil {
		exit.Error(err)
	}

	_cliConfigPath = filepath.Join(_localDir, "cli.yaml")
	_clientIDPath = filepath.Join(_localDir, "client-id.txt")

	cobra.EnablePrefixMatching = true

	_cmdStr = "traincfg"
	for _, arg := range os.Args[1:] {
		_cmdStr += " " + arg
	}
}

func initTelemetry() {
	telemetry.Init(telemetry.Config{
		Enabled: isTelemetryEnabled(),
		UserID:  clientID(),
		Properties: map[string]interface{}{
			"client_id": clientID(),
		},
		Environment: "cli",
		LogErrors:   false,
		BackoffMode: telemetry.NoBackoff,
	})
}

var _rootCmd = &cobra.Command{
	Use:     "traincfg",
	Aliases: []string{"tc"},
	Short:   "manage training experiment configuration files",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if _flagDebug {
			os.Setenv("TRAINCFG_DEBUG", "true")
		}
	},
}

// Copied from https://github.com/spf13/cobra/blob/master/command.go
var _helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "help about any command",
	Long: `help provides help for any command in the CLI.
Type ` + _rootCmd.Name() + ` help [path to command] for full details.`,
	Run: func(c *cobra.Command, args []string) {
		cmd, _, e := c.Root().Find(args)
		if cmd == nil || e != nil {
			c.Printf("Unknown help topic %#q\n", args)
			c.Root().Usage()
		} else {
			cmd.InitDefaultHelpFlag()
			cmd.Help()
		}
	},
}

func Execute() {
	defer exit.RecoverAndExit()
	_rootCmd.SetHelpCommand(_helpCmd)

	_rootCmd.PersistentFlags().BoolVar(&_flagDebug, "debug", false, "print stack traces for errors")
	_rootCmd.PersistentFlags().MarkHidden("debug")

	cobra.EnableCommandSorting = false

	_rootCmd.AddCommand(_validateCmd)
	_rootCmd.AddCommand(_describeCmd)
	_rootCmd.AddCommand(_hashCmd)
	_rootCmd.AddCommand(_initCmd)

	_rootCmd.AddCommand(_completionCmd)
	_rootCmd.AddCommand(_versionCmd)

	_rootCmd.Execute()

	exit.Ok()
}
