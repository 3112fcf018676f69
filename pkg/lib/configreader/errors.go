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
	"strings"

	"github.com/traincfg/traincfg/pkg/lib/errors"
	s "github.com/traincfg/traincfg/pkg/lib/strings"
)

const (
	ErrParseConfig                = "configreader.parse_config"
	ErrUnsupportedFieldValidation = "configreader.unsupported_field_validation"
	ErrUnsupportedKey             = "configreader.unsupported_key"
	ErrInvalidYAML                = "configreader.invalid_yaml"
	ErrTooLong                    = "configreader.too_long"
	ErrTooShort                   = "configreader.too_short"
	ErrAlphaNumericDashUnderscore = "configreader.alpha_numeric_dash_underscore"
	ErrInvalidFloat64             = "configreader.invalid_float64"
	ErrInvalidInt                 = "configreader.invalid_int"
	ErrInvalidStr                 = "configreader.invalid_str"
	ErrMustBeLessThanOrEqualTo    = "configreader.must_be_less_than_or_equal_to"
	ErrMustBeLessThan             = "configreader.must_be_less_than"
	ErrMustBeGreaterThanOrEqualTo = "configreader.must_be_greater_than_or_equal_to"
	ErrMustBeGreaterThan          = "configreader.must_be_greater_than"
	ErrIsNotMultiple              = "configreader.is_not_multiple"
	ErrCannotBeInfinity           = "configreader.cannot_be_infinity"
	ErrInvalidPrimitiveType       = "configreader.invalid_primitive_type"
	ErrDuplicatedValue            = "configreader.duplicated_value"
	ErrTooFewElements             = "configreader.too_few_elements"
	ErrTooManyElements            = "configreader.too_many_elements"
	ErrCannotSetStructField       = "configreader.cannot_set_struct_field"
	ErrCannotBeNull               = "configreader.cannot_be_null"
	ErrCannotBeEmpty              = "configreader.cannot_be_empty"
	ErrCannotBeEmptyOrNull        = "configreader.cannot_be_empty_or_null"
	ErrMustBeDefined              = "configreader.must_be_defined"
	ErrFieldCantBeSpecified       = "configreader.field_cant_be_specified"
)

func ErrorParseConfig() error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrParseConfig,
		Message: "failed to parse config file",
	})
}

func ErrorUnsupportedFieldValidation() error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrUnsupportedFieldValidation,
		Message: "undefined or unsupported field validation",
	})
}

func ErrorUnsupportedKey(key interface{}) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrUnsupportedKey,
		Message: fmt.Sprintf("key %s is not supported", s.UserStr(key)),
	})
}

func ErrorInvalidYAML(err error) error {
	str := strings.TrimPrefix(errors.Message(err), "yaml: ")
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidYAML,
		Message: fmt.Sprintf("invalid yaml: %s", str),
	})
}

func ErrorTooLong(provided string, maxLen int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrTooLong,
		Message: fmt.Sprintf("%s must be no more than %d characters", s.UserStr(provided), maxLen),
	})
}

func ErrorTooShort(provided string, minLen int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrTooShort,
		Message: fmt.Sprintf("%s must be no fewer than %d characters", s.UserStr(provided), minLen),
	})
}

func ErrorAlphaNumericDashUnderscore(provided string) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrAlphaNumericDashUnderscore,
		Message: fmt.Sprintf("%s must contain only letters, numbers, underscores, and dashes", s.UserStr(provided)),
	})
}

func ErrorInvalidFloat64(provided float64, allowed float64, allowedVals ...float64) error {
	allAllowedVals := append(allowedVals, allowed)
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidFloat64,
		Message: fmt.Sprintf("invalid value (got %s, must be %s)", s.UserStr(provided), s.UserStrsOr(allAllowedVals)),
	})
}

func ErrorInvalidInt(provided int, allowed int, allowedVals ...int) error {
	allAllowedVals := append(allowedVals, allowed)
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidInt,
		Message: fmt.Sprintf("invalid value (got %s, must be %s)", s.UserStr(provided), s.UserStrsOr(allAllowedVals)),
	})
}

func ErrorInvalidStr(provided string, allowed string, allowedVals ...string) error {
	allAllowedVals := append(allowedVals, allowed)
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidStr,
		Message: fmt.Sprintf("invalid value (got %s, must be %s)", s.UserStr(provided), s.UserStrsOr(allAllowedVals)),
	})
}

func ErrorMustBeLessThanOrEqualTo(provided interface{}, boundary interface{}) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrMustBeLessThanOrEqualTo,
		Message: fmt.Sprintf("%s must be less than or equal to %s", s.UserStr(provided), s.UserStr(boundary)),
	})
}

func ErrorMustBeLessThan(provided interface{}, boundary interface{}) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrMustBeLessThan,
		Message: fmt.Sprintf("%s must be less than %s", s.UserStr(provided), s.UserStr(boundary)),
	})
}

func ErrorMustBeGreaterThanOrEqualTo(provided interface{}, boundary interface{}) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrMustBeGreaterThanOrEqualTo,
		Message: fmt.Sprintf("%s must be greater than or equal to %s", s.UserStr(provided), s.UserStr(boundary)),
	})
}

func ErrorMustBeGreaterThan(provided interface{}, boundary interface{}) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrMustBeGreaterThan,
		Message: fmt.Sprintf("%s must be greater than %s", s.UserStr(provided), s.UserStr(boundary)),
	})
}

func ErrorIsNotMultiple(provided interface{}, multiple interface{}) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrIsNotMultiple,
		Message: fmt.Sprintf("%s is not a multiple of %s", s.UserStr(provided), s.UserStr(multiple)),
	})
}

func ErrorCannotBeInfinity(provided float64) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrCannotBeInfinity,
		Message: fmt.Sprintf("%s: value cannot be infinite", s.UserStr(provided)),
	})
}

func ErrorInvalidPrimitiveType(provided interface{}, allowedType PrimitiveType, allowedTypes ...PrimitiveType) error {
	allAllowedTypes := append(allowedTypes, allowedType)
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidPrimitiveType,
		Message: fmt.Sprintf("%s: invalid type (expected %s)", s.UserStr(provided), s.StrsOr(PrimitiveTypes(allAllowedTypes).StringList())),
	})
}

func ErrorDuplicatedValue(val interface{}) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrDuplicatedValue,
		Message: fmt.Sprintf("%s is duplicated", s.UserStr(val)),
	})
}

func ErrorTooFewElements(minLength int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrTooFewElements,
		Message: fmt.Sprintf("must contain at least %d elements", minLength),
	})
}

func ErrorTooManyElements(maxLength int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrTooManyElements,
		Message: fmt.Sprintf("must contain at most %d elements", maxLength),
	})
}

func ErrorCannotSetStructField() error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrCannotSetStructField,
		Message: "unable to set struct field",
	})
}

func ErrorCannotBeNull(isRequired bool) error {
	message := "cannot be null"
	if isRequired {
		message = "cannot be null (and must be defined)"
	}
	return errors.WithStack(&errors.Error{
		Kind:    ErrCannotBeNull,
		Message: message,
	})
}

func ErrorCannotBeEmpty() error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrCannotBeEmpty,
		Message: "cannot be empty",
	})
}

func ErrorCannotBeEmptyOrNull(isRequired bool) error {
	message := "cannot be empty or null"
	if isRequired {
		message = "cannot be empty or null (and must be defined)"
	}
	return errors.WithStack(&errors.Error{
		Kind:    ErrCannotBeEmptyOrNull,
		Message: message,
	})
}

func ErrorMustBeDefined(validValues ...interface{}) error {
	message := "must be defined"
	if len(validValues) > 0 {
		message = fmt.Sprintf("must be defined, and set to %s", s.UserStrsOr(validValues))
	}
	return errors.WithStack(&errors.Error{
		Kind:    ErrMustBeDefined,
		Message: message,
	})
}

func ErrorFieldCantBeSpecified(errMsg string) error {
	message := errMsg
	if message == "" {
		message = "cannot be specified"
	}
	return errors.WithStack(&errors.Error{
		Kind:    ErrFieldCantBeSpecified,
		Message: message,
	})
}

func EnvVar(envVarName string) string {
	return fmt.Sprintf("environment variable \"%s\"", envVarName)
}
