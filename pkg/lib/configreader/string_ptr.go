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
)

type StringPtrValidation struct {
	Required              bool
	Default               *string
	AllowExplicitNull     bool
	AllowEmpty            bool
	AllowedValues         []string
	CantBeSpecifiedErrStr *string
	MinLength             int
	MaxLength             int
	Validator             func(string) (string, error)
}

func makeStringValValidation(v *StringPtrValidation) *StringValidation {
	return &StringValidation{
		AllowEmpty:    v.AllowEmpty,
		AllowedValues: v.AllowedValues,
		MinLength:     v.MinLength,
		MaxLength:     v.MaxLength,
	}
}

func StringPtr(inter interface{}, v *StringPtrValidation) (*string, error) {
	if inter == nil {
		return ValidateStringPtrProvided(nil, v)
	}
	casted, castOk := cast.InterfaceToStr(inter)
	if !castOk {
		return nil, ErrorInvalidPrimitiveType(inter, PrimTypeString)
	}
	return ValidateStringPtrProvided(&casted, v)
}

func StringPtrFromInterfaceMap(key string, iMap map[string]interface{}, v *StringPtrValidation) (*string, error) {
	inter, ok := ReadInterfaceMapValue(key, iMap)
	if !ok {
		val, err := ValidateStringPtrMissing(v)
		if err != nil {
			return nil, errors.Wrap(err, key)
		}
		return val, nil
	}
	val, err := StringPtr(inter, v)
	if err != nil {
		return nil, errors.Wrap(err, key)
	}
	return val, nil
}

func StringPtrFromStr(valStr string, v *StringPtrValidation) (*string, error) {
	if valStr == "" {
		return ValidateStringPtrMissing(v)
	}
	return ValidateStringPtrProvided(&valStr, v)
}

func StringPtrFromPrompt(promptOpts *prompt.Options, v *StringPtrValidation) (*string, error) {
	if v.Default != nil && promptOpts.DefaultStr == "" {
		promptOpts.DefaultStr = *v.Default
	}
	valStr := prompt.Prompt(promptOpts)
	if valStr == "" {
		return ValidateStringPtrMissing(v)
	}
	return StringPtrFromStr(valStr, v)
}

func ValidateStringPtrMissing(v *StringPtrValidation) (*string, error) {
	if v.Required {
		return nil, ErrorMustBeDefined()
	}
	return validateStringPtr(v.Default, v)
}

func ValidateStringPtrProvided(val *string, v *StringPtrValidation) (*string, error) {
	if v.CantBeSpecifiedErrStr != nil {
		return nil, ErrorFieldCantBeSpecified(*v.CantBeSpecifiedErrStr)
	}

	if !v.AllowExplicitNull && val == nil {
		return nil, ErrorCannotBeNull(v.Required)
	}
	return validateStringPtr(val, v)
}

func validateStringPtr(val *string, v *StringPtrValidation) (*string, error) {
	if val != nil {
		validated, err := validateString(*val, makeStringValValidation(v))
		if err != nil {
			return nil, err
		}
		val = &validated
	}

	if v.Validator != nil && val != nil {
		validated, err := v.Validator(*val)
		if err != nil {
			return nil, err
		}
		val = &validated
	}
	return val, nil
}
