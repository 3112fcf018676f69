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
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/traincfg/traincfg/pkg/lib/errors"
	"github.com/traincfg/traincfg/pkg/lib/pointer"
)

type SimpleConfig struct {
	Key1 bool `json:"key1,omitempty"`
	Key2 bool `json:"key2"`
}

func TestSimple(t *testing.T) {
	structValidation := &StructValidation{
		StructFieldValidations: []*StructFieldValidation{
			{
				StructField: "Key1",
				BoolValidation: &BoolValidation{
					Required: true,
				},
			},
			{
				StructField: "Key2",
				BoolValidation: &BoolValidation{
					Default: true,
				},
			},
		},
		Required:     true,
		ShortCircuit: true,
	}

	configData := MustReadYAMLStr(
		`
    key1: true
    `)

	expected := &SimpleConfig{
		Key1: true,
		Key2: true,
	}

	testConfig(structValidation, configData, expected, t)
}

type ScalarsConfig struct {
	Str     string  `json:"str"`
	Num     int     `json:"num"`
	Rate    float64 `json:"rate"`
	Enabled bool    `json:"enabled"`
	Epochs  []int   `json:"epochs"`
}

func scalarsValidation() *StructValidation {
	return &StructValidation{
		StructFieldValidations: []*StructFieldValidation{
			{
				StructField: "Str",
				StringValidation: &StringValidation{
					Required: true,
				},
			},
			{
				StructField: "Num",
				IntValidation: &IntValidation{
					Required:    true,
					GreaterThan: pointer.Int(0),
				},
			},
			{
				StructField: "Rate",
				Float64Validation: &Float64Validation{
					Default:              0.01,
					GreaterThan:          pointer.Float64(0),
					LessThanOrEqualTo:    pointer.Float64(1),
					GreaterThanOrEqualTo: nil,
				},
			},
			{
				StructField: "Enabled",
				BoolValidation: &BoolValidation{
					Default: false,
				},
			},
			{
				StructField: "Epochs",
				IntListValidation: &IntListValidation{
					Default:      []int{},
					AllowEmpty:   true,
					DisallowDups: true,
				},
			},
		},
		Required: true,
	}
}

func TestScalars(t *testing.T) {
	configData := MustReadYAMLStr(
		`
    str: mnist
    num: 4
    rate: 0.5
    enabled: True
    epochs: [1, 2, 3]
    `)

	expected := &ScalarsConfig{
		Str:     "mnist",
		Num:     4,
		Rate:    0.5,
		Enabled: true,
		Epochs:  []int{1, 2, 3},
	}

	testConfig(scalarsValidation(), configData, expected, t)
}

func TestScalarsDefaults(t *testing.T) {
	configData := MustReadYAMLStr(
		`
    str: mnist
    num: 4
    `)

	expected := &ScalarsConfig{
		Str:    "mnist",
		Num:    4,
		Rate:   0.01,
		Epochs: []int{},
	}

	testConfig(scalarsValidation(), configData, expected, t)
}

func TestMissingRequired(t *testing.T) {
	configData := MustReadYAMLStr(
		`
    str: mnist
    `)

	config := &ScalarsConfig{}
	errs := Struct(config, configData, scalarsValidation())
	require.NotEmpty(t, errs)
	require.Equal(t, ErrMustBeDefined, errors.GetKind(errs[0]))
}

func TestUnsupportedKey(t *testing.T) {
	configData := MustReadYAMLStr(
		`
    str: mnist
    num: 4
    extra_key: 1
    `)

	config := &ScalarsConfig{}
	errs := Struct(config, configData, scalarsValidation())
	require.NotEmpty(t, errs)
	require.Equal(t, ErrUnsupportedKey, errors.GetKind(errs[0]))
}

func TestRangeViolations(t *testing.T) {
	configData := MustReadYAMLStr(
		`
    str: mnist
    num: 0
    `)

	config := &ScalarsConfig{}
	errs := Struct(config, configData, scalarsValidation())
	require.NotEmpty(t, errs)
	require.Equal(t, ErrMustBeGreaterThan, errors.GetKind(errs[0]))

	configData = MustReadYAMLStr(
		`
    str: mnist
    num: 4
    rate: 1.5
    `)

	config = &ScalarsConfig{}
	errs = Struct(config, configData, scalarsValidation())
	require.NotEmpty(t, errs)
	require.Equal(t, ErrMustBeLessThanOrEqualTo, errors.GetKind(errs[0]))
}

func TestIntListCastSingleItem(t *testing.T) {
	structValidation := &StructValidation{
		StructFieldValidations: []*StructFieldValidation{
			{
				StructField: "Epochs",
				IntListValidation: &IntListValidation{
					CastSingleItem: true,
				},
			},
		},
		Required: true,
	}

	type listConfig struct {
		Epochs []int `json:"epochs"`
	}

	configData := MustReadYAMLStr(
		`
    epochs: 8
    `)

	expected := &listConfig{Epochs: []int{8}}
	testConfig(structValidation, configData, expected, t)

	// a trailing comma inside a flow sequence parses as a single-element list
	configData = MustReadYAMLStr(
		`
    epochs: [8,]
    `)

	testConfig(structValidation, configData, expected, t)
}

func TestIntListDuplicates(t *testing.T) {
	structValidation := &StructValidation{
		StructFieldValidations: []*StructFieldValidation{
			{
				StructField: "Epochs",
				IntListValidation: &IntListValidation{
					DisallowDups: true,
				},
			},
		},
		Required: true,
	}

	type listConfig struct {
		Epochs []int `json:"epochs"`
	}

	configData := MustReadYAMLStr(
		`
    epochs: [1, 2, 2]
    `)

	config := &listConfig{}
	errs := Struct(config, configData, structValidation)
	require.NotEmpty(t, errs)
	require.Equal(t, ErrDuplicatedValue, errors.GetKind(errs[0]))
}

type DependentConfig struct {
	BatchSize     int `json:"batch_size"`
	TestBatchSize int `json:"test_batch_size"`
}

func TestDefaultField(t *testing.T) {
	structValidation := &StructValidation{
		StructFieldValidations: []*StructFieldValidation{
			{
				StructField: "BatchSize",
				IntValidation: &IntValidation{
					Required: true,
				},
			},
			{
				StructField:   "TestBatchSize",
				DefaultField:  "BatchSize",
				IntValidation: &IntValidation{},
			},
		},
		Required: true,
	}

	configData := MustReadYAMLStr(
		`
    batch_size: 32
    `)

	expected := &DependentConfig{
		BatchSize:     32,
		TestBatchSize: 32,
	}

	testConfig(structValidation, configData, expected, t)

	configData = MustReadYAMLStr(
		`
    batch_size: 32
    test_batch_size: 64
    `)

	expected = &DependentConfig{
		BatchSize:     32,
		TestBatchSize: 64,
	}

	testConfig(structValidation, configData, expected, t)
}

type ParsedConfig struct {
	Level int `json:"level"`
}

func TestParser(t *testing.T) {
	structValidation := &StructValidation{
		StructFieldValidations: []*StructFieldValidation{
			{
				StructField: "Level",
				StringValidation: &StringValidation{
					Required:      true,
					AllowedValues: []string{"low", "high"},
				},
				Parser: func(str string) (interface{}, error) {
					if str == "low" {
						return 1, nil
					}
					return 2, nil
				},
			},
		},
		Required: true,
	}

	configData := MustReadYAMLStr(
		`
    level: high
    `)

	expected := &ParsedConfig{Level: 2}
	testConfig(structValidation, configData, expected, t)
}

func TestNullConfig(t *testing.T) {
	structValidation := &StructValidation{
		StructFieldValidations: []*StructFieldValidation{},
		Required:               true,
	}

	errs := Struct(&SimpleConfig{}, nil, structValidation)
	require.NotEmpty(t, errs)
	require.Equal(t, ErrCannotBeEmptyOrNull, errors.GetKind(errs[0]))
}

func testConfig(structValidation *StructValidation, configData interface{}, expected interface{}, t *testing.T) {
	config := reflect.New(reflect.TypeOf(expected).Elem()).Interface()

	errs := Struct(config, configData, structValidation)

	if errs != nil {
		for _, err := range errs {
			fmt.Println("ERROR: " + errors.Message(err))
		}
	}
	require.Empty(t, errs)

	require.Equal(t, expected, config)
}
