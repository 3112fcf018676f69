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
	"path/filepath"

	"github.com/spf13/cobra"

	cr "github.com/traincfg/traincfg/pkg/lib/configreader"
	"github.com/traincfg/traincfg/pkg/lib/exit"
	"github.com/traincfg/traincfg/pkg/lib/files"
	"github.com/traincfg/traincfg/pkg/lib/pointer"
	"github.com/traincfg/traincfg/pkg/lib/prompt"
	s "github.com/traincfg/traincfg/pkg/lib/strings"
	"github.com/traincfg/traincfg/pkg/lib/telemetry"
	"github.com/traincfg/traincfg/pkg/types/trainconfig"
)

var _flagInitInteractive bool

func init() {
	_initCmd.Flags().BoolVarP(&_flagInitInteractive, "interactive", "i", false, "prompt for the required keys")
}

const _starterConfigTemplate = `dataset: %s
ds_size: 60000
number_of_entries: 60000
number_of_entries_test: 10000
binary_mnist_task: False
key_to_drop: []
model: %s
resumed_model:
optimizer: %s
criterion: %s
lr: %s
momentum: 0.9
decay: 0.0005
batch_size: %d
test_batch_size: %d
epochs: %d
dp: False
num_microbatches: 1
S: inf
sigma: 0
z: 0
mu: 0
csigma: 0
save_model: False
save_on_epochs: []
scheduler: False
multi_gpu: False
count_norm_cosine_per_batch: False
`

type initAnswers struct {
	Dataset   string
	Model     string
	Optimizer string
	Criterion string
	LR        float64
	BatchSize int
	Epochs    int
}

func defaultInitAnswers() *initAnswers {
	return &initAnswers{
		Dataset:   trainconfig.MNISTDataset.String(),
		Model:     trainconfig.RegressionNetModel.String(),
		Optimizer: trainconfig.SGDOptimizer.String(),
		Criterion: trainconfig.MSECriterion.String(),
		LR:        0.01,
		BatchSize: 256,
		Epochs:    200,
	}
}

func promptInitAnswers(answers *initAnswers) error {
	return cr.ReadPrompt(answers, &cr.PromptValidation{
		PromptItemValidations: []*cr.PromptItemValidation{
			{
				StructField: "Dataset",
				PromptOpts:  &prompt.Options{Prompt: "dataset"},
				StringValidation: &cr.StringValidation{
					Default:       answers.Dataset,
					AllowedValues: trainconfig.DatasetStrings(),
				},
			},
			{
				StructField: "Model",
				PromptOpts:  &prompt.Options{Prompt: "model"},
				StringValidation: &cr.StringValidation{
					Default:       answers.Model,
					AllowedValues: trainconfig.ModelStrings(),
				},
			},
			{
				StructField: "Optimizer",
				PromptOpts:  &prompt.Options{Prompt: "optimizer"},
				StringValidation: &cr.StringValidation{
					Default:       answers.Optimizer,
					AllowedValues: trainconfig.OptimizerStrings(),
				},
			},
			{
				StructField: "Criterion",
				PromptOpts:  &prompt.Options{Prompt: "criterion"},
				StringValidation: &cr.StringValidation{
					Default:       answers.Criterion,
					AllowedValues: trainconfig.CriterionStrings(),
				},
			},
			{
				StructField: "LR",
				PromptOpts:  &prompt.Options{Prompt: "learning rate"},
				Float64Validation: &cr.Float64Validation{
					Default:     answers.LR,
					GreaterThan: pointer.Float64(0),
				},
			},
			{
				StructField: "BatchSize",
				PromptOpts:  &prompt.Options{Prompt: "batch size"},
				IntValidation: &cr.IntValidation{
					Default:     answers.BatchSize,
					GreaterThan: pointer.Int(0),
				},
			},
			{
				StructField: "Epochs",
				PromptOpts:  &prompt.Options{Prompt: "epochs"},
				IntValidation: &cr.IntValidation{
					Default:     answers.Epochs,
					GreaterThan: pointer.Int(0),
				},
			},
		},
		PrintNewLineIfPrompted: true,
	})
}

var _initCmd = &cobra.Command{
	Use:   "init EXPERIMENT_NAME",
	Short: "create a starter training configuration",
	Long: `This command creates a directory for a new experiment containing a
training configuration file with a complete set of keys to edit.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initTelemetry()
		telemetry.Event("cli.init")

		experimentDir := args[0]
		if files.IsDir(experimentDir) || files.IsFile(experimentDir) {
			exit.Error(ErrorExperimentDirExists(experimentDir))
		}

		answers := defaultInitAnswers()
		if _flagInitInteractive {
			if err := promptInitAnswers(answers); err != nil {
				exit.Error(err)
			}
		}

		starterConfig := fmt.Sprintf(_starterConfigTemplate,
			answers.Dataset,
			answers.Model,
			answers.Optimizer,
			answers.Criterion,
			s.Float64(answers.LR),
			answers.BatchSize,
			answers.BatchSize,
			answers.Epochs,
		)

		if err := files.CreateDir(experimentDir); err != nil {
			exit.Error(err)
		}

		configPath := filepath.Join(experimentDir, "traincfg.yaml")
		if err := files.WriteFile([]byte(starterConfig), configPath); err != nil {
			exit.Error(err)
		}

		fmt.Printf("created %s\n", configPath)
	},
}
