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
	"fmt"

	"github.com/traincfg/traincfg/pkg/lib/errors"
	s "github.com/traincfg/traincfg/pkg/lib/strings"
)

const (
	ErrMicrobatchesDontDivideBatch = "trainconfig.microbatches_dont_divide_batch"
	ErrNoiseUnresolved             = "trainconfig.noise_unresolved"
	ErrSaveEpochOutOfRange         = "trainconfig.save_epoch_out_of_range"
	ErrInvalidClassLabel           = "trainconfig.invalid_class_label"
	ErrBinaryTaskRequiresDrop      = "trainconfig.binary_task_requires_dropped_key"
	ErrBinaryTaskRequiresMNIST     = "trainconfig.binary_task_requires_mnist"
	ErrDenseNetDepthNotApplicable  = "trainconfig.densenet_depth_not_applicable"
	ErrDenseNetDepthRequired       = "trainconfig.densenet_depth_required"
)

func ErrorMicrobatchesDontDivideBatch(numMicrobatches int, batchSize int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrMicrobatchesDontDivideBatch,
		Message: fmt.Sprintf("%s (%d) must evenly divide %s (%d)", NumMicrobatchesKey, numMicrobatches, BatchSizeKey, batchSize),
	})
}

func ErrorNoiseUnresolved() error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrNoiseUnresolved,
		Message: fmt.Sprintf("when %s is enabled, either %s must be greater than 0, or %s must be greater than 0 with a finite %s", DPKey, SigmaKey, ZKey, SKey),
	})
}

func ErrorSaveEpochOutOfRange(epoch int, epochs int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrSaveEpochOutOfRange,
		Message: fmt.Sprintf("%s: %d is not in the range of trained epochs (1 to %d)", SaveOnEpochsKey, epoch, epochs),
	})
}

func ErrorInvalidClassLabel(label int, dataset Dataset) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidClassLabel,
		Message: fmt.Sprintf("%d is not a valid class label for the %s dataset (valid labels are 0 to %d)", label, dataset.String(), dataset.NumClasses()-1),
	})
}

func ErrorBinaryTaskRequiresDrop() error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrBinaryTaskRequiresDrop,
		Message: fmt.Sprintf("%s must name at least one class label when %s is enabled", KeyToDropKey, BinaryMNISTTaskKey),
	})
}

func ErrorBinaryTaskRequiresMNIST(dataset Dataset) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrBinaryTaskRequiresMNIST,
		Message: fmt.Sprintf("%s can only be enabled when %s is %s (got %s)", BinaryMNISTTaskKey, DatasetKey, s.UserStr(MNISTDataset.String()), s.UserStr(dataset.String())),
	})
}

func ErrorDenseNetDepthNotApplicable(model Model) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrDenseNetDepthNotApplicable,
		Message: fmt.Sprintf("%s can only be set when %s is %s (got %s)", DenseNetDepthKey, ModelKey, s.UserStr(DenseNetModel.String()), s.UserStr(model.String())),
	})
}

func ErrorDenseNetDepthRequired() error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrDenseNetDepthRequired,
		Message: fmt.Sprintf("%s must be set when %s is %s", DenseNetDepthKey, ModelKey, s.UserStr(DenseNetModel.String())),
	})
}
