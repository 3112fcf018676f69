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

package configreader

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/traincfg/traincfg/pkg/lib/errors"
	"github.com/traincfg/traincfg/pkg/lib/pointer"
)

func TestFloat64FromInterface(t *testing.T) {
	val, err := Float64(float64(0.25), &Float64Validation{})
	require.NoError(t, err)
	require.Equal(t, 0.25, val)

	// integer-typed YAML values are accepted for float fields
	val, err = Float64(int(3), &Float64Validation{})
	require.NoError(t, err)
	require.Equal(t, float64(3), val)

	_, err = Float64("not-a-number", &Float64Validation{})
	require.Error(t, err)
	require.Equal(t, ErrInvalidPrimitiveType, errors.GetKind(err))
}

func TestFloat64InfLiteral(t *testing.T) {
	// the bare "inf" literal is not resolved by the YAML parser, so it
	// arrives as a string and must be accepted for inf-able fields
	val, err := Float64("inf", &Float64Validation{CanBeInf: true})
	require.NoError(t, err)
	require.True(t, math.IsInf(val, 1))

	val, err = Float64(".inf", &Float64Validation{CanBeInf: true})
	require.NoError(t, err)
	require.True(t, math.IsInf(val, 1))

	_, err = Float64("inf", &Float64Validation{})
	require.Error(t, err)
	require.Equal(t, ErrCannotBeInfinity, errors.GetKind(err))
}

func TestFloat64Bounds(t *testing.T) {
	v := &Float64Validation{
		GreaterThan:       pointer.Float64(0),
		LessThanOrEqualTo: pointer.Float64(1),
	}

	val, err := ValidateFloat64Provided(0.5, v)
	require.NoError(t, err)
	require.Equal(t, 0.5, val)

	_, err = ValidateFloat64Provided(0, v)
	require.Error(t, err)
	require.Equal(t, ErrMustBeGreaterThan, errors.GetKind(err))

	_, err = ValidateFloat64Provided(1.5, v)
	require.Error(t, err)
	require.Equal(t, ErrMustBeLessThanOrEqualTo, errors.GetKind(err))
}

func TestFloat64InfRespectsBounds(t *testing.T) {
	v := &Float64Validation{
		CanBeInf:    true,
		GreaterThan: pointer.Float64(0),
	}

	val, err := ValidateFloat64Provided(math.Inf(1), v)
	require.NoError(t, err)
	require.True(t, math.IsInf(val, 1))

	_, err = ValidateFloat64Provided(math.Inf(-1), v)
	require.Error(t, err)
	require.Equal(t, ErrMustBeGreaterThan, errors.GetKind(err))
}

func TestFloat64AllowedValues(t *testing.T) {
	v := &Float64Validation{
		AllowedValues: []float64{0.1, 0.2},
	}

	_, err := ValidateFloat64Provided(0.3, v)
	require.Error(t, err)
	require.Equal(t, ErrInvalidFloat64, errors.GetKind(err))
}

func TestFloat64Missing(t *testing.T) {
	_, err := ValidateFloat64Missing(&Float64Validation{Required: true})
	require.Error(t, err)
	require.Equal(t, ErrMustBeDefined, errors.GetKind(err))

	val, err := ValidateFloat64Missing(&Float64Validation{Default: 0.9})
	require.NoError(t, err)
	require.Equal(t, 0.9, val)
}
