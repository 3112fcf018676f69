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
	"regexp"

	"github.com/traincfg/traincfg/pkg/lib/cast"
	"github.com/traincfg/traincfg/pkg/lib/errors"
	"github.com/traincfg/traincfg/pkg/lib/prompt"
	"github.com/traincfg/traincfg/pkg/lib/slices"
)

type StringValidation struct {
	Required                   bool
	Default                    string
	AllowEmpty                 bool
	TreatNullAsEmpty           bool
	AllowedValues              []string
	HiddenAllowedValues        []string // allowed, but not listed in error messages
	CantBeSpecifiedErrStr      *string
	MinLength                  int
	MaxLength                  int
	AlphaNumericDashUnderscore bool
	Validator                  func(string) (string, error)
}

var _alphaNumericDashUnderscoreRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func String(inter interface{}, v *StringValidation) (string, error) {
	if inter == nil {
		if v.TreatNullAsEmpty {
			return ValidateStringProvided("", v)
		}
		return "", ErrorCannotBeNull(v.Required)
	}
	casted, castOk := cast.InterfaceToStr(inter)
	if !castOk {
		return "", ErrorInvalidPrimitiveType(inter, PrimTypeString)
	}
	return ValidateStringProvided(casted, v)
}

func StringFromInterfaceMap(key string, iMap map[string]interface{}, v *StringValidation) (string, error) {
	inter, ok := ReadInterfaceMapValue(key, iMap)
	if !ok {
		val, err := ValidateStringMissing(v)
		if err != nil {
			return "", errors.Wrap(err, key)
		}
		return val, nil
	}
	val, err := String(inter, v)
	if err != nil {
		return "", errors.Wrap(err, key)
	}
	return val, nil
}

func StringFromStr(valStr string, v *StringValidation) (string, error) {
	return ValidateStringProvided(valStr, v)
}

func StringFromEnv(envVarName string, v *StringValidation) (string, error) {
	valStr := ReadEnvVar(envVarName)
	if valStr == nil || *valStr == "" {
		val, err := ValidateStringMissing(v)
		if err != nil {
			return "", errors.Wrap(err, EnvVar(envVarName))
		}
		return val, nil
	}
	val, err := StringFromStr(*valStr, v)
	if err != nil {
		return "", errors.Wrap(err, EnvVar(envVarName))
	}
	return val, nil
}

func StringFromPrompt(promptOpts *prompt.Options, v *StringValidation) (string, error) {
	promptOpts.DefaultStr = v.Default
	valStr := prompt.Prompt(promptOpts)
	if valStr == "" {
		return ValidateStringMissing(v)
	}
	return StringFromStr(valStr, v)
}

func ValidateStringMissing(v *StringValidation) (string, error) {
	if v.Required {
		if len(v.AllowedValues) > 0 {
			vals := make([]interface{}, len(v.AllowedValues))
			for i := range v.AllowedValues {
				vals[i] = v.AllowedValues[i]
			}
			return "", ErrorMustBeDefined(vals...)
		}
		return "", ErrorMustBeDefined()
	}
	return validateString(v.Default, v)
}

func ValidateStringProvided(val string, v *StringValidation) (string, error) {
	if v.CantBeSpecifiedErrStr != nil {
		return "", ErrorFieldCantBeSpecified(*v.CantBeSpecifiedErrStr)
	}
	return validateString(val, v)
}

func validateString(val string, v *StringValidation) (string, error) {
	if !v.AllowEmpty {
		if len(val) == 0 {
			return "", ErrorCannotBeEmpty()
		}
	}

	if v.MinLength != 0 {
		if len(val) < v.MinLength {
			return "", ErrorTooShort(val, v.MinLength)
		}
	}
	if v.MaxLength != 0 {
		if len(val) > v.MaxLength {
			return "", ErrorTooLong(val, v.MaxLength)
		}
	}

	if v.AlphaNumericDashUnderscore {
		if !_alphaNumericDashUnderscoreRegex.MatchString(val) {
			return "", ErrorAlphaNumericDashUnderscore(val)
		}
	}

	if v.AllowedValues != nil {
		if !slices.HasString(v.AllowedValues, val) && !slices.HasString(v.HiddenAllowedValues, val) {
			return "", ErrorInvalidStr(val, v.AllowedValues[0], v.AllowedValues[1:]...)
		}
	}

	if v.Validator != nil {
		return v.Validator(val)
	}
	return val, nil
}
