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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptimizerFromString(t *testing.T) {
	require.Equal(t, SGDOptimizer, OptimizerFromString("SGD"))
	require.Equal(t, AdamOptimizer, OptimizerFromString("Adam"))
	require.Equal(t, UnknownOptimizer, OptimizerFromString("sgd"))
	require.Equal(t, []string{"SGD", "Adam"}, OptimizerStrings())
}

func TestCriterionFromString(t *testing.T) {
	require.Equal(t, MSECriterion, CriterionFromString("mse"))
	require.Equal(t, CrossEntropyCriterion, CriterionFromString("cross_entropy"))
	require.Equal(t, UnknownCriterion, CriterionFromString("nll"))
}

func TestDatasetNumClasses(t *testing.T) {
	require.Equal(t, 10, MNISTDataset.NumClasses())
	require.Equal(t, 0, LFWDataset.NumClasses())
	require.Equal(t, 0, IMDBWikiDataset.NumClasses())
}

func TestModelRoundTrip(t *testing.T) {
	for _, str := range ModelStrings() {
		model := ModelFromString(str)
		require.NotEqual(t, UnknownModel, model)
		require.Equal(t, str, model.String())
	}
}
