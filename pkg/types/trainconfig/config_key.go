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

const (
	DatasetKey                 = "dataset"
	DsSizeKey                  = "ds_size"
	NumberOfEntriesKey         = "number_of_entries"
	NumberOfEntriesTestKey     = "number_of_entries_test"
	BinaryMNISTTaskKey         = "binary_mnist_task"
	KeyToDropKey               = "key_to_drop"
	ModelKey                   = "model"
	DenseNetDepthKey           = "densenet_depth"
	ResumedModelKey            = "resumed_model"
	OptimizerKey               = "optimizer"
	CriterionKey               = "criterion"
	LRKey                      = "lr"
	MomentumKey                = "momentum"
	DecayKey                   = "decay"
	BatchSizeKey               = "batch_size"
	TestBatchSizeKey           = "test_batch_size"
	EpochsKey                  = "epochs"
	DPKey                      = "dp"
	NumMicrobatchesKey         = "num_microbatches"
	SKey                       = "S"
	SigmaKey                   = "sigma"
	ZKey                       = "z"
	MuKey                      = "mu"
	CSigmaKey                  = "csigma"
	SaveModelKey               = "save_model"
	SaveOnEpochsKey            = "save_on_epochs"
	SchedulerKey               = "scheduler"
	MultiGPUKey                = "multi_gpu"
	CountNormCosinePerBatchKey = "count_norm_cosine_per_batch"
)
