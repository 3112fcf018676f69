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

	"github.com/cortexlabs/yaml"

	cr "github.com/traincfg/traincfg/pkg/lib/configreader"
	"github.com/traincfg/traincfg/pkg/lib/errors"
	"github.com/traincfg/traincfg/pkg/lib/exit"
	"github.com/traincfg/traincfg/pkg/lib/files"
	"github.com/traincfg/traincfg/pkg/lib/pointer"
)

type cliConfig struct {
	Telemetry *bool `json:"telemetry,omitempty"`
}

var _cachedCLIConfig *cliConfig

var _cliConfigValidation = &cr.StructValidation{
	TreatNullAsEmpty: true,
	StructFieldValidations: []*cr.StructFieldValidation{
		{
			StructField: "Telemetry",
			BoolPtrValidation: &cr.BoolPtrValidation{
				Required: false,
			},
		},
	},
}

func readCLIConfig() *cliConfig {
	if _cachedCLIConfig != nil {
		return _cachedCLIConfig
	}

	if !files.IsFile(_cliConfigPath) {
		// first run: persist the default so opting out is an edit away
		config := &cliConfig{Telemetry: pointer.Bool(true)}
		if err := writeCLIConfig(config); err != nil {
			exit.Error(err)
		}
		return _cachedCLIConfig
	}

	config := &cliConfig{}
	errs := cr.ParseYAMLFile(config, _cliConfigValidation, _cliConfigPath)
	if errors.HasError(errs) {
		exit.Error(errors.FirstError(errs...))
	}

	_cachedCLIConfig = config
	return _cachedCLIConfig
}

func writeCLIConfig(config *cliConfig) error {
	configBytes, err := yaml.Marshal(config)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := files.WriteFile(configBytes, _cliConfigPath); err != nil {
		return err
	}

	_cachedCLIConfig = config
	return nil
}

func isTelemetryEnabled() bool {
	if os.Getenv("TRAINCFG_TELEMETRY_DISABLE") == "true" {
		return false
	}

	config := readCLIConfig()
	if config.Telemetry != nil {
		return *config.Telemetry
	}
	return true
}
