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

	"github.com/traincfg/traincfg/pkg/lib/cast"
	"github.com/traincfg/traincfg/pkg/lib/errors"
	"github.com/traincfg/traincfg/pkg/lib/prompt"
	"github.com/traincfg/traincfg/pkg/lib/slices"
	s "github.com/traincfg/traincfg/pkg/lib/strings"
)

type Float64Validation struct {
	Required              bool
	Default               float64
	TreatNullAsZero       bool
	AllowedValues         []float64
	CantBeSpecifiedErrStr *string
	CanBeInf              bool // allow the "inf" literal (positive infinity)
	GreaterThan           *float64
	GreaterThanOrEqualTo  *float64
	LessThan              *float64
	LessThanOrEqualTo     *float64
	Validator             func(float64) (float64, error)
}

func Float64(inter interface{}, v *Float64Validation) (float64, error) {
	if inter == nil {
		if v.TreatNullAsZero {
			return ValidateFloat64Provided(0, v)
		}
		return 0, ErrorCannotBeNull(v.Required)
	}
	casted, castOk := cast.InterfaceToFloat64(inter)
	if !castOk {
		return 0, ErrorInvalidPrimitiveType(inter, PrimTypeFloat)
	}
	return ValidateFloat64Provided(casted, v)
}

func Float64FromInterfaceMap(key string, iMap map[string]interface{}, v *Float64Validation) (float64, error) {
	inter, ok := ReadInterfaceMapValue(key, iMap)
	if !ok {
		val, err := ValidateFloat64Missing(v)
		if err != nil {
			return 0, errors.Wrap(err, key)
		}
		return val, nil
	}
	val, err := Float64(inter, v)
	if err != nil {
		return 0, errors.Wrap(err, key)
	}
	return val, nil
}

func Float64FromStr(valStr string, v *Float64Validation) (float64, error) {
	if valStr == "" {
		return ValidateFloat64Missing(v)
	}
	casted, castOk := s.ParseFloat64(valStr)
	if !castOk {
		return 0, ErrorInvalidPrimitiveType(valStr, PrimTypeFloat)
	}
	return ValidateFloat64Provided(casted, v)
}

func Float64FromEnv(envVarName string, v *Float64Validation) (float64, error) {
	valStr := ReadEnvVar(envVarName)
	if valStr == nil || *valStr == "" {
		val, err := ValidateFloat64Missing(v)
		if err != nil {
			return 0, errors.Wrap(err, EnvVar(envVarName))
		}
		return val, nil
	}
	val, err := Float64FromStr(*valStr, v)
	if err != nil {
		return 0, errors.Wrap(err, EnvVar(envVarName))
	}
	return val, nil
}

func Float64FromPrompt(promptOpts *prompt.Options, v *Float64Validation) (float64, error) {
	promptOpts.DefaultStr = s.Float64(v.Default)
	valStr := prompt.Prompt(promptOpts)
	if valStr == "" {
		return ValidateFloat64Missing(v)
	}
	return Float64FromStr(valStr, v)
}

func ValidateFloat64Missing(v *Float64Validation) (float64, error) {
	if v.Required {
		return 0, ErrorMustBeDefined()
	}
	return validateFloat64(v.Default, v)
}

func ValidateFloat64Provided(val float64, v *Float64Validation) (float64, error) {
	if v.CantBeSpecifiedErrStr != nil {
		return 0, ErrorFieldCantBeSpecified(*v.CantBeSpecifiedErrStr)
	}
	return validateFloat64(val, v)
}

func validateFloat64(val float64, v *Float64Validation) (float64, error) {
	if math.IsInf(val, 0) && !v.CanBeInf {
		return 0, ErrorCannotBeInfinity(val)
	}

	if v.GreaterThan != nil {
		if val <= *v.GreaterThan {
			return 0, ErrorMustBeGreaterThan(val, *v.GreaterThan)
		}
	}
	if v.GreaterThanOrEqualTo != nil {
		if val < *v.GreaterThanOrEqualTo {
			return 0, ErrorMustBeGreaterThanOrEqualTo(val, *v.GreaterThanOrEqualTo)
		}
	}
	if v.LessThan != nil {
		if val >= *v.LessThan {
			return 0, ErrorMustBeLessThan(val, *v.LessThan)
		}
	}
	if v.LessThanOrEqualTo != nil {
		if val > *v.LessThanOrEqualTo {
			return 0, ErrorMustBeLessThanOrEqualTo(val, *v.LessThanOrEqualTo)
		}
	}

	if v.AllowedValues != nil {
		if !slices.HasFloat64(v.AllowedValues, val) {
			return 0, ErrorInvalidFloat64(val, v.AllowedValues[0], v.AllowedValues[1:]...)
		}
	}

	if v.Validator != nil {
		return v.Validator(val)
	}
	return val, nil
}
