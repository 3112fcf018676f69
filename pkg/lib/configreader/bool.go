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
	s "github.com/traincfg/traincfg/pkg/lib/strings"
)

type BoolValidation struct {
	Required              bool
	Default               bool
	TreatNullAsFalse      bool
	CantBeSpecifiedErrStr *string
	Validator             func(bool) (bool, error)
}

func Bool(inter interface{}, v *BoolValidation) (bool, error) {
	if inter == nil {
		if v.TreatNullAsFalse {
			return ValidateBoolProvided(false, v)
		}
		return false, ErrorCannotBeNull(v.Required)
	}
	casted, castOk := cast.InterfaceToBool(inter)
	if !castOk {
		return false, ErrorInvalidPrimitiveType(inter, PrimTypeBool)
	}
	return ValidateBoolProvided(casted, v)
}

func BoolFromInterfaceMap(key string, iMap map[string]interface{}, v *BoolValidation) (bool, error) {
	inter, ok := ReadInterfaceMapValue(key, iMap)
	if !ok {
		val, err := ValidateBoolMissing(v)
		if err != nil {
			return false, errors.Wrap(err, key)
		}
		return val, nil
	}
	val, err := Bool(inter, v)
	if err != nil {
		return false, errors.Wrap(err, key)
	}
	return val, nil
}

func BoolFromStr(valStr string, v *BoolValidation) (bool, error) {
	if valStr == "" {
		return ValidateBoolMissing(v)
	}
	casted, castOk := s.ParseBool(valStr)
	if !castOk {
		return false, ErrorInvalidPrimitiveType(valStr, PrimTypeBool)
	}
	return ValidateBoolProvided(casted, v)
}

func BoolFromEnv(envVarName string, v *BoolValidation) (bool, error) {
	valStr := ReadEnvVar(envVarName)
	if valStr == nil || *valStr == "" {
		val, err := ValidateBoolMissing(v)
		if err != nil {
			return false, errors.Wrap(err, EnvVar(envVarName))
		}
		return val, nil
	}
	val, err := BoolFromStr(*valStr, v)
	if err != nil {
		return false, errors.Wrap(err, EnvVar(envVarName))
	}
	return val, nil
}

func BoolFromPrompt(promptOpts *prompt.Options, v *BoolValidation) (bool, error) {
	promptOpts.DefaultStr = s.Bool(v.Default)
	valStr := prompt.Prompt(promptOpts)
	if valStr == "" {
		return ValidateBoolMissing(v)
	}
	return BoolFromStr(valStr, v)
}

func ValidateBoolMissing(v *BoolValidation) (bool, error) {
	if v.Required {
		return false, ErrorMustBeDefined()
	}
	return validateBool(v.Default, v)
}

func ValidateBoolProvided(val bool, v *BoolValidation) (bool, error) {
	if v.CantBeSpecifiedErrStr != nil {
		return false, ErrorFieldCantBeSpecified(*v.CantBeSpecifiedErrStr)
	}
	return validateBool(val, v)
}

func validateBool(val bool, v *BoolValidation) (bool, error) {
	if v.Validator != nil {
		return v.Validator(val)
	}
	return val, nil
}
