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
	"testing"

	cr "github.com/traincfg/traincfg/pkg/lib/configreader"
	"github.com/traincfg/traincfg/pkg/lib/errors"
	"github.com/stretchr/testify/require"
)

const _completeConfig = `
dataset: mnist
ds_size: 60000
number_of_entries: 60000
number_of_entries_test: 10000
binary_mnist_task: False
key_to_drop: [8,]
model: regressionnet
resumed_model:
optimizer: SGD
criterion: mse
lr: 0.01
momentum: 0.9
decay: 0.0005
batch_size: 256
test_batch_size: 1024
epochs: 200
dp: True
num_microbatches: 256
S: inf
sigma: 1.4
z: 0.8
mu: 0
csigma: 0
save_model: True
save_on_epochs: [10, 50, 100, 200]
scheduler: False
multi_gpu: False
count_norm_cosine_per_batch: False
`

const _minimalConfig = `
dataset: mnist
ds_size: 60000
number_of_entries: 60000
number_of_entries_test: 10000
model: regressionnet
optimizer: Adam
criterion: cross_entropy
lr: 0.001
batch_size: 32
epochs: 10
`

func TestCompleteConfig(t *testing.T) {
	config, err := NewFromBytes([]byte(_completeConfig))
	require.NoError(t, err)

	require.Equal(t, MNISTDataset, config.Dataset)
	require.Equal(t, 60000, config.DsSize)
	require.Equal(t, RegressionNetModel, config.Model)
	require.Equal(t, SGDOptimizer, config.Optimizer)
	require.Equal(t, MSECriterion, config.Criterion)
	require.Equal(t, 0.01, config.LR)
	require.Equal(t, 0.9, config.Momentum)
	require.Equal(t, 256, config.BatchSize)
	require.Equal(t, 1024, config.TestBatchSize)
	require.Equal(t, 200, config.Epochs)
	require.True(t, config.DP)
	require.Equal(t, 1.4, config.Sigma)
	require.Equal(t, 0.8, config.Z)
	require.Nil(t, config.ResumedModel)
	require.Equal(t, []int{10, 50, 100, 200}, config.SaveOnEpochs)
}

func TestMinimalConfigDefaults(t *testing.T) {
	config, err := NewFromBytes([]byte(_minimalConfig))
	require.NoError(t, err)

	require.Equal(t, 32, config.TestBatchSize)
	require.Equal(t, 1, config.NumMicrobatches)
	require.Equal(t, float64(0), config.Momentum)
	require.Equal(t, float64(0), config.Decay)
	require.True(t, math.IsInf(config.S, 1))
	require.False(t, config.DP)
	require.False(t, config.SaveModel)
	require.Equal(t, []int{}, config.KeyToDrop)
	require.Equal(t, []int{}, config.SaveOnEpochs)
	require.Nil(t, config.ResumedModel)
}

func TestLoadIsIdempotent(t *testing.T) {
	config1, err := NewFromBytes([]byte(_completeConfig))
	require.NoError(t, err)
	config2, err := NewFromBytes([]byte(_completeConfig))
	require.NoError(t, err)

	require.Equal(t, config1, config2)
	require.Equal(t, config1.Hash(), config2.Hash())
}

func TestInfClippingBound(t *testing.T) {
	config, err := NewFromBytes([]byte(_completeConfig))
	require.NoError(t, err)
	require.True(t, math.IsInf(config.S, 1))
	require.True(t, config.ClippingDisabled())

	config, err = NewFromBytes([]byte(_minimalConfig + "S: 5.67\n"))
	require.NoError(t, err)
	require.Equal(t, 5.67, config.S)
	require.False(t, config.ClippingDisabled())
}

func TestKeyToDropTrailingComma(t *testing.T) {
	// a trailing comma inside a flow sequence parses as a single-element list
	config, err := NewFromBytes([]byte(_completeConfig))
	require.NoError(t, err)
	require.Equal(t, []int{8}, config.KeyToDrop)
	require.True(t, config.DroppedKeys().Has(8))
	require.Equal(t, []int{8}, config.MinorityGroup())
}

func TestKeyToDropScalar(t *testing.T) {
	config, err := NewFromBytes([]byte(_minimalConfig + "key_to_drop: 3\n"))
	require.NoError(t, err)
	require.Equal(t, []int{3}, config.KeyToDrop)
}

func TestMissingRequiredKey(t *testing.T) {
	configStr := `
dataset: mnist
ds_size: 60000
number_of_entries: 60000
number_of_entries_test: 10000
model: regressionnet
optimizer: SGD
criterion: mse
lr: 0.01
batch_size: 32
`
	_, err := NewFromBytes([]byte(configStr))
	require.Error(t, err)
	require.Equal(t, cr.ErrMustBeDefined, errors.GetKind(err))
}

func TestUnknownKeyRejected(t *testing.T) {
	_, err := NewFromBytes([]byte(_minimalConfig + "learning_rate: 0.01\n"))
	require.Error(t, err)
	require.Equal(t, cr.ErrUnsupportedKey, errors.GetKind(err))
}

func TestMomentumRange(t *testing.T) {
	_, err := NewFromBytes([]byte(_minimalConfig + "momentum: 1.5\n"))
	require.Error(t, err)
	require.Equal(t, cr.ErrMustBeLessThan, errors.GetKind(err))
}

func TestBadEnumValue(t *testing.T) {
	configStr := `
dataset: cifar10
ds_size: 50000
number_of_entries: 50000
number_of_entries_test: 10000
model: regressionnet
optimizer: SGD
criterion: mse
lr: 0.01
batch_size: 32
epochs: 10
`
	_, err := NewFromBytes([]byte(configStr))
	require.Error(t, err)
	require.Equal(t, cr.ErrInvalidStr, errors.GetKind(err))
}

func TestMicrobatchDivisibility(t *testing.T) {
	_, err := NewFromBytes([]byte(_minimalConfig + "num_microbatches: 5\n"))
	require.Error(t, err)
	require.Equal(t, ErrMicrobatchesDontDivideBatch, errors.GetKind(err))
}

func TestNoiseMustBeResolved(t *testing.T) {
	_, err := NewFromBytes([]byte(_minimalConfig + "dp: True\n"))
	require.Error(t, err)
	require.Equal(t, ErrNoiseUnresolved, errors.GetKind(err))

	// sigma alone is enough, even with clipping disabled
	_, err = NewFromBytes([]byte(_minimalConfig + "dp: True\nsigma: 1.1\n"))
	require.NoError(t, err)

	config, err := NewFromBytes([]byte(_minimalConfig + "dp: True\nsigma: 1.1\nz: 0.8\nS: inf\n"))
	require.NoError(t, err)
	require.True(t, config.ClippingDisabled())

	// z without a finite clipping bound is not
	_, err = NewFromBytes([]byte(_minimalConfig + "dp: True\nz: 0.8\n"))
	require.Error(t, err)
	require.Equal(t, ErrNoiseUnresolved, errors.GetKind(err))

	_, err = NewFromBytes([]byte(_minimalConfig + "dp: True\nz: 0.8\nS: 4\n"))
	require.NoError(t, err)
}

func TestSaveEpochRange(t *testing.T) {
	_, err := NewFromBytes([]byte(_minimalConfig + "save_on_epochs: [5, 11]\n"))
	require.Error(t, err)
	require.Equal(t, ErrSaveEpochOutOfRange, errors.GetKind(err))

	_, err = NewFromBytes([]byte(_minimalConfig + "save_on_epochs: [1, 10]\n"))
	require.NoError(t, err)
}

func TestClassLabelRange(t *testing.T) {
	_, err := NewFromBytes([]byte(_minimalConfig + "key_to_drop: [10]\n"))
	require.Error(t, err)
	require.Equal(t, ErrInvalidClassLabel, errors.GetKind(err))

	_, err = NewFromBytes([]byte(_minimalConfig + "key_to_drop: [-1]\n"))
	require.Error(t, err)
	require.Equal(t, ErrInvalidClassLabel, errors.GetKind(err))
}

func TestBinaryTaskRules(t *testing.T) {
	_, err := NewFromBytes([]byte(_minimalConfig + "binary_mnist_task: True\n"))
	require.Error(t, err)
	require.Equal(t, ErrBinaryTaskRequiresDrop, errors.GetKind(err))

	_, err = NewFromBytes([]byte(_minimalConfig + "binary_mnist_task: True\nkey_to_drop: [8]\n"))
	require.NoError(t, err)
}

func TestDenseNetDepthRules(t *testing.T) {
	_, err := NewFromBytes([]byte(_minimalConfig + "densenet_depth: 100\n"))
	require.Error(t, err)
	require.Equal(t, ErrDenseNetDepthNotApplicable, errors.GetKind(err))

	denseStr := `
dataset: mnist
ds_size: 60000
number_of_entries: 60000
number_of_entries_test: 10000
model: densenet
optimizer: SGD
criterion: cross_entropy
lr: 0.1
batch_size: 64
epochs: 100
`
	_, err = NewFromBytes([]byte(denseStr))
	require.Error(t, err)
	require.Equal(t, ErrDenseNetDepthRequired, errors.GetKind(err))

	config, err := NewFromBytes([]byte(denseStr + "densenet_depth: 100\n"))
	require.NoError(t, err)
	require.Equal(t, 100, config.DenseNetDepth)
}

func TestResumedModel(t *testing.T) {
	config, err := NewFromBytes([]byte(_minimalConfig + "resumed_model: checkpoints/epoch_50.pt\n"))
	require.NoError(t, err)
	require.NotNil(t, config.ResumedModel)
	require.Equal(t, "checkpoints/epoch_50.pt", *config.ResumedModel)
}

func TestHashChangesWithConfig(t *testing.T) {
	config1, err := NewFromBytes([]byte(_minimalConfig))
	require.NoError(t, err)
	config2, err := NewFromBytes([]byte(_minimalConfig + "momentum: 0.9\n"))
	require.NoError(t, err)
	require.NotEqual(t, config1.Hash(), config2.Hash())
}

func TestUserStrContainsAllKeys(t *testing.T) {
	config, err := NewFromBytes([]byte(_completeConfig))
	require.NoError(t, err)
	userStr := config.UserStr()
	require.Contains(t, userStr, DatasetKey)
	require.Contains(t, userStr, EpochsKey)
	require.Contains(t, userStr, "inf")
}
