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
	"github.com/traincfg/traincfg/pkg/lib/cast"
	"github.com/traincfg/traincfg/pkg/lib/errors"
	"github.com/traincfg/traincfg/pkg/lib/prompt"
	"github.com/traincfg/traincfg/pkg/lib/slices"
	s "github.com/traincfg/traincfg/pkg/lib/strings"
)

type IntValidation struct {
	Required              bool
	Default               int
	TreatNullAsZero       bool
	AllowedValues         []int
	CantBeSpecifiedErrStr *string
	GreaterThan           *int
	GreaterThanOrEqualTo  *int
	LessThan              *int
	LessThanOrEqualTo     *int
	MultipleOf            *int
	Validator             func(int) (int, error)
}

func Int(inter interface{}, v *IntValidation) (int, error) {
	if inter == nil {
		if v.TreatNullAsZero {
			return ValidateIntProvided(0, v)
		}
		return 0, ErrorCannotBeNull(v.Required)
	}
	casted, castOk := cast.InterfaceToInt(inter)
	if !castOk {
		return 0, ErrorInvalidPrimitiveType(inter, PrimTypeInt)
	}
	return ValidateIntProvided(casted, v)
}

func IntFromInterfaceMap(key string, iMap map[string]interface{}, v *IntValidation) (int, error) {
	inter, ok := ReadInterfaceMapValue(key, iMap)
	if !ok {
		val, err := ValidateIntMissing(v)
		if err != nil {
			return 0, errors.Wrap(err, key)
		}
		return val, nil
	}
	val, err := Int(inter, v)
	if err != nil {
		return 0, errors.Wrap(err, key)
	}
	return val, nil
}

func IntFromStr(valStr string, v *IntValidation) (int, error) {
	if valStr == "" {
		return ValidateIntMissing(v)
	}
	casted, castOk := s.ParseInt(valStr)
	if !castOk {
		return 0, ErrorInvalidPrimitiveType(valStr, PrimTypeInt)
	}
	return ValidateIntProvided(casted, v)
}

func IntFromEnv(envVarName string, v *IntValidation) (int, error) {
	valStr := ReadEnvVar(envVarName)
	if valStr == nil || *valStr == "" {
		val, err := ValidateIntMissing(v)
		if err != nil {
			return 0, errors.Wrap(err, EnvVar(envVarName))
		}
		return val, nil
	}
	val, err := IntFromStr(*valStr, v)
	if err != nil {
		return 0, errors.Wrap(err, EnvVar(envVarName))
	}
	return val, nil
}

func IntFromPrompt(promptOpts *prompt.Options, v *IntValidation) (int, error) {
	promptOpts.DefaultStr = s.Int(v.Default)
	valStr := prompt.Prompt(promptOpts)
	if valStr == "" {
		return ValidateIntMissing(v)
	}
	return IntFromStr(valStr, v)
}

func ValidateIntMissing(v *IntValidation) (int, error) {
	if v.Required {
		return 0, ErrorMustBeDefined()
	}
	return validateInt(v.Default, v)
}

func ValidateIntProvided(val int, v *IntValidation) (int, error) {
	if v.CantBeSpecifiedErrStr != nil {
		return 0, ErrorFieldCantBeSpecified(*v.CantBeSpecifiedErrStr)
	}
	return validateInt(val, v)
}

func validateInt(val int, v *IntValidation) (int, error) {
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
	if v.MultipleOf != nil {
		if *v.MultipleOf == 0 || val%*v.MultipleOf != 0 {
			return 0, ErrorIsNotMultiple(val, *v.MultipleOf)
		}
	}

	if v.AllowedValues != nil {
		if !slices.HasInt(v.AllowedValues, val) {
			return 0, ErrorInvalidInt(val, v.AllowedValues[0], v.AllowedValues[1:]...)
		}
	}

	if v.Validator != nil {
		return v.Validator(val)
	}
	return val, nil
}
