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

	"github.com/traincfg/traincfg/pkg/lib/errors"
)

const (
	ErrExperimentDirExists = "cli.experiment_dir_exists"
	ErrConfigFileNotFound  = "cli.config_file_not_found"
)

func ErrorExperimentDirExists(path string) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrExperimentDirExists,
		Message: fmt.Sprintf("%s already exists; remove it or choose a different experiment name", path),
	})
}

func ErrorConfigFileNotFound(path string) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrConfigFileNotFound,
		Message: fmt.Sprintf("%s is not a file", path),
	})
}
