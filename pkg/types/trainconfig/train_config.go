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

package trainconfig

import (
	"math"

	cr "github.com/traincfg/traincfg/pkg/lib/configreader"
	"github.com/traincfg/traincfg/pkg/lib/errors"
	"github.com/traincfg/traincfg/pkg/lib/hash"
	"github.com/traincfg/traincfg/pkg/lib/pointer"
	"github.com/traincfg/traincfg/pkg/lib/sets/intset"
	"github.com/traincfg/traincfg/pkg/lib/slices"
	"github.com/traincfg/traincfg/pkg/lib/table"
)

// Config is the typed, immutable-after-load record for a training
// experiment. KeyToDrop is both the label exclusion set and the minority
// group in the binary task; use DroppedKeys() and MinorityGroup() instead
// of reading the field directly.
type Config struct {
	Dataset                 Dataset   `json:"dataset"`
	DsSize                  int       `json:"ds_size"`
	NumberOfEntries         int       `json:"number_of_entries"`
	NumberOfEntriesTest     int       `json:"number_of_entries_test"`
	BinaryMNISTTask         bool      `json:"binary_mnist_task"`
	KeyToDrop               []int     `json:"key_to_drop"`
	Model                   Model     `json:"model"`
	DenseNetDepth           int       `json:"densenet_depth"`
	ResumedModel            *string   `json:"resumed_model"`
	Optimizer               Optimizer `json:"optimizer"`
	Criterion               Criterion `json:"criterion"`
	LR                      float64   `json:"lr"`
	Momentum                float64   `json:"momentum"`
	Decay                   float64   `json:"decay"`
	BatchSize               int       `json:"batch_size"`
	TestBatchSize           int       `json:"test_batch_size"`
	Epochs                  int       `json:"epochs"`
	DP                      bool      `json:"dp"`
	NumMicrobatches         int       `json:"num_microbatches"`
	S                       float64   `json:"S"`
	Sigma                   float64   `json:"sigma"`
	Z                       float64   `json:"z"`
	Mu                      float64   `json:"mu"`
	CSigma                  float64   `json:"csigma"`
	SaveModel               bool      `json:"save_model"`
	SaveOnEpochs            []int     `json:"save_on_epochs"`
	Scheduler               bool      `json:"scheduler"`
	MultiGPU                bool      `json:"multi_gpu"`
	CountNormCosinePerBatch bool      `json:"count_norm_cosine_per_batch"`
}

var Validation = &cr.StructValidation{
	StructFieldValidations: []*cr.StructFieldValidation{
		{
			StructField: "Dataset",
			StringValidation: &cr.StringValidation{
				Required:      true,
				AllowedValues: DatasetStrings(),
			},
			Parser: func(str string) (interface{}, error) {
				return DatasetFromString(str), nil
			},
		},
		{
			StructField: "DsSize",
			IntValidation: &cr.IntValidation{
				Required:    true,
				GreaterThan: pointer.Int(0),
			},
		},
		{
			StructField: "NumberOfEntries",
			IntValidation: &cr.IntValidation{
				Required:    true,
				GreaterThan: pointer.Int(0),
			},
		},
		{
			StructField: "NumberOfEntriesTest",
			IntValidation: &cr.IntValidation{
				Required:    true,
				GreaterThan: pointer.Int(0),
			},
		},
		{
			StructField:    "BinaryMNISTTask",
			BoolValidation: &cr.BoolValidation{},
		},
		{
			StructField: "KeyToDrop",
			IntListValidation: &cr.IntListValidation{
				Default:        []int{},
				AllowEmpty:     true,
				CastSingleItem: true,
				DisallowDups:   true,
			},
		},
		{
			StructField: "Model",
			StringValidation: &cr.StringValidation{
				Required:      true,
				AllowedValues: ModelStrings(),
			},
			Parser: func(str string) (interface{}, error) {
				return ModelFromString(str), nil
			},
		},
		{
			StructField: "DenseNetDepth",
			IntValidation: &cr.IntValidation{
				GreaterThanOrEqualTo: pointer.Int(0),
			},
		},
		{
			StructField: "ResumedModel",
			StringPtrValidation: &cr.StringPtrValidation{
				AllowExplicitNull: true,
			},
		},
		{
			StructField: "Optimizer",
			StringValidation: &cr.StringValidation{
				Required:      true,
				AllowedValues: OptimizerStrings(),
			},
			Parser: func(str string) (interface{}, error) {
				return OptimizerFromString(str), nil
			},
		},
		{
			StructField: "Criterion",
			StringValidation: &cr.StringValidation{
				Required:      true,
				AllowedValues: CriterionStrings(),
			},
			Parser: func(str string) (interface{}, error) {
				return CriterionFromString(str), nil
			},
		},
		{
			StructField: "LR",
			Float64Validation: &cr.Float64Validation{
				Required:    true,
				GreaterThan: pointer.Float64(0),
			},
		},
		{
			StructField: "Momentum",
			Float64Validation: &cr.Float64Validation{
				GreaterThanOrEqualTo: pointer.Float64(0),
				LessThan:             pointer.Float64(1),
			},
		},
		{
			StructField: "Decay",
			Float64Validation: &cr.Float64Validation{
				GreaterThanOrEqualTo: pointer.Float64(0),
			},
		},
		{
			StructField: "BatchSize",
			IntValidation: &cr.IntValidation{
				Required:    true,
				GreaterThan: pointer.Int(0),
			},
		},
		{
			// defaults to the training batch size
			StructField:  "TestBatchSize",
			DefaultField: "BatchSize",
			IntValidation: &cr.IntValidation{
				GreaterThan: pointer.Int(0),
			},
		},
		{
			StructField: "Epochs",
			IntValidation: &cr.IntValidation{
				Required:    true,
				GreaterThan: pointer.Int(0),
			},
		},
		{
			StructField:    "DP",
			BoolValidation: &cr.BoolValidation{},
		},
		{
			StructField: "NumMicrobatches",
			IntValidation: &cr.IntValidation{
				Default:     1,
				GreaterThan: pointer.Int(0),
			},
		},
		{
			StructField: "S",
			Float64Validation: &cr.Float64Validation{
				Default:     math.Inf(1),
				CanBeInf:    true,
				GreaterThan: pointer.Float64(0),
			},
		},
		{
			StructField: "Sigma",
			Float64Validation: &cr.Float64Validation{
				GreaterThanOrEqualTo: pointer.Float64(0),
			},
		},
		{
			StructField: "Z",
			Float64Validation: &cr.Float64Validation{
				GreaterThanOrEqualTo: pointer.Float64(0),
			},
		},
		{
			StructField:       "Mu",
			Float64Validation: &cr.Float64Validation{},
		},
		{
			StructField:       "CSigma",
			Float64Validation: &cr.Float64Validation{},
		},
		{
			StructField:    "SaveModel",
			BoolValidation: &cr.BoolValidation{},
		},
		{
			StructField: "SaveOnEpochs",
			IntListValidation: &cr.IntListValidation{
				Default:      []int{},
				AllowEmpty:   true,
				DisallowDups: true,
			},
		},
		{
			StructField:    "Scheduler",
			BoolValidation: &cr.BoolValidation{},
		},
		{
			StructField:    "MultiGPU",
			BoolValidation: &cr.BoolValidation{},
		},
		{
			StructField:    "CountNormCosinePerBatch",
			BoolValidation: &cr.BoolValidation{},
		},
	},
	Required: true,
}

// NewForFile loads, types, and validates the experiment config at path. A
// failed load returns an error and no record.
func NewForFile(path string) (*Config, error) {
	config := &Config{}
	errs := cr.ParseYAMLFile(config, Validation, path)
	if errors.HasError(errs) {
		return nil, errors.FirstError(errs...)
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}

	return config, nil
}

// NewFromBytes is NewForFile for an in-memory document.
func NewFromBytes(data []byte) (*Config, error) {
	config := &Config{}
	errs := cr.ParseYAMLBytes(config, Validation, data)
	if errors.HasError(errs) {
		return nil, errors.FirstError(errs...)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ValidateAll runs the full load against path and returns every violation
// rather than just the first.
func ValidateAll(path string) []error {
	config := &Config{}
	errs := cr.ParseYAMLFile(config, Validation, path)
	if errors.HasError(errs) {
		return errs
	}

	if err := config.Validate(); err != nil {
		return []error{errors.Wrap(err, path)}
	}

	return nil
}

// Validate checks the cross-field invariants that the per-key validations
// cannot express.
func (cc *Config) Validate() error {
	if cc.BatchSize%cc.NumMicrobatches != 0 {
		return ErrorMicrobatchesDontDivideBatch(cc.NumMicrobatches, cc.BatchSize)
	}

	if cc.DP {
		noiseFromSigma := cc.Sigma > 0
		noiseFromZ := cc.Z > 0 && !cc.ClippingDisabled()
		if !noiseFromSigma && !noiseFromZ {
			return ErrorNoiseUnresolved()
		}
	}

	for _, epoch := range cc.SaveOnEpochs {
		if epoch < 1 || epoch > cc.Epochs {
			return ErrorSaveEpochOutOfRange(epoch, cc.Epochs)
		}
	}

	if numClasses := cc.Dataset.NumClasses(); numClasses > 0 {
		for _, label := range cc.KeyToDrop {
			if label < 0 || label >= numClasses {
				return ErrorInvalidClassLabel(label, cc.Dataset)
			}
		}
	}

	if cc.BinaryMNISTTask {
		if cc.Dataset != MNISTDataset {
			return ErrorBinaryTaskRequiresMNIST(cc.Dataset)
		}
		if len(cc.KeyToDrop) == 0 {
			return ErrorBinaryTaskRequiresDrop()
		}
	}

	if cc.Model == DenseNetModel && cc.DenseNetDepth == 0 {
		return ErrorDenseNetDepthRequired()
	}
	if cc.Model != DenseNetModel && cc.DenseNetDepth != 0 {
		return ErrorDenseNetDepthNotApplicable(cc.Model)
	}

	return nil
}

// ClippingDisabled reports whether the clipping norm bound is infinite,
// which disables gradient clipping downstream.
func (cc *Config) ClippingDisabled() bool {
	return math.IsInf(cc.S, 1)
}

// DroppedKeys returns the class labels excluded from the dataset.
func (cc *Config) DroppedKeys() intset.Set {
	return intset.FromSlice(cc.KeyToDrop)
}

// MinorityGroup returns the labels treated as the underrepresented group
// in binary-task mode (the same labels as DroppedKeys, by convention).
func (cc *Config) MinorityGroup() []int {
	return slices.CopyInts(cc.KeyToDrop)
}

// Hash is a stable digest of the resolved record (defaults applied).
func (cc *Config) Hash() string {
	return hash.String(cc.UserStr())
}

func (cc *Config) UserTable() table.KeyValuePairs {
	var items table.KeyValuePairs

	items.Add(DatasetKey, cc.Dataset.String())
	items.Add(DsSizeKey, cc.DsSize)
	items.Add(NumberOfEntriesKey, cc.NumberOfEntries)
	items.Add(NumberOfEntriesTestKey, cc.NumberOfEntriesTest)
	items.Add(BinaryMNISTTaskKey, cc.BinaryMNISTTask)
	items.Add(KeyToDropKey, cc.KeyToDrop)

	items.Add(ModelKey, cc.Model.String())
	if cc.Model == DenseNetModel {
		items.Add(DenseNetDepthKey, cc.DenseNetDepth)
	}
	if cc.ResumedModel != nil {
		items.Add(ResumedModelKey, *cc.ResumedModel)
	}

	items.Add(OptimizerKey, cc.Optimizer.String())
	items.Add(CriterionKey, cc.Criterion.String())
	items.Add(LRKey, cc.LR)
	items.Add(MomentumKey, cc.Momentum)
	items.Add(DecayKey, cc.Decay)
	items.Add(BatchSizeKey, cc.BatchSize)
	items.Add(TestBatchSizeKey, cc.TestBatchSize)
	items.Add(EpochsKey, cc.Epochs)

	items.Add(DPKey, cc.DP)
	items.Add(NumMicrobatchesKey, cc.NumMicrobatches)
	items.Add(SKey, cc.S)
	items.Add(SigmaKey, cc.Sigma)
	items.Add(ZKey, cc.Z)
	items.Add(MuKey, cc.Mu)
	items.Add(CSigmaKey, cc.CSigma)

	items.Add(SaveModelKey, cc.SaveModel)
	items.Add(SaveOnEpochsKey, cc.SaveOnEpochs)
	items.Add(SchedulerKey, cc.Scheduler)
	items.Add(MultiGPUKey, cc.MultiGPU)
	items.Add(CountNormCosinePerBatchKey, cc.CountNormCosinePerBatch)

	return items
}

func (cc *Config) UserStr() string {
	return cc.UserTable().String()
}
