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

package errors

import (
	"fmt"
	"io"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Kind used for errors which did not originate from this codebase
const ErrNotTrainCfgError = "error"

type Error struct {
	Kind        string
	Message     string
	Metadata    interface{} // won't be printed
	NoTelemetry bool
	NoPrint     bool
	Cause       error
	stack       *stack
}

func (err *Error) Error() string {
	return err.Message
}

func (err *Error) StackTrace() pkgerrors.StackTrace {
	stackTrace := make([]pkgerrors.Frame, len(*err.stack))
	for i := 0; i < len(stackTrace); i++ {
		stackTrace[i] = pkgerrors.Frame((*err.stack)[i])
	}
	return stackTrace
}

func WithStack(err error) error {
	if err == nil {
		return nil
	}

	traincfgError := getTrainCfgError(err)

	if traincfgError == nil {
		traincfgError = &Error{
			Kind:    ErrNotTrainCfgError,
			Message: strings.TrimSpace(err.Error()),
			Cause:   err,
		}
	}

	if traincfgError.stack == nil {
		traincfgError.stack = callers()
	}

	return traincfgError
}

func Wrap(err error, strs ...string) error {
	if err == nil {
		return nil
	}

	traincfgError := WithStack(err).(*Error)

	strs = removeEmptyStrs(strs)
	strs = append(strs, traincfgError.Message)
	traincfgError.Message = strings.Join(strs, ": ")

	return traincfgError
}

// adds to the end of the error message (without adding any whitespace or punctuation)
func Append(err error, str string) error {
	if err == nil {
		return nil
	}

	traincfgError := WithStack(err).(*Error)
	traincfgError.Message = traincfgError.Message + str
	return traincfgError
}

func getTrainCfgError(err error) *Error {
	if traincfgError, ok := err.(*Error); ok {
		return traincfgError
	}
	return nil
}

func GetKind(err error) string {
	if traincfgError, ok := err.(*Error); ok {
		return traincfgError.Kind
	}
	return ErrNotTrainCfgError
}

func GetMetadata(err error) interface{} {
	if traincfgError, ok := err.(*Error); ok {
		return traincfgError.Metadata
	}
	return nil
}

func IsNoTelemetry(err error) bool {
	if traincfgError, ok := err.(*Error); ok {
		return traincfgError.NoTelemetry
	}
	return false
}

func SetNoTelemetry(err error) error {
	traincfgError := WithStack(err).(*Error)
	traincfgError.NoTelemetry = true
	return traincfgError
}

func IsNoPrint(err error) bool {
	if traincfgError, ok := err.(*Error); ok {
		return traincfgError.NoPrint
	}
	return false
}

func SetNoPrint(err error) error {
	traincfgError := WithStack(err).(*Error)
	traincfgError.NoPrint = true
	return traincfgError
}

// Returns nil if no cause
func Cause(err error) error {
	if traincfgError, ok := err.(*Error); ok {
		return traincfgError.Cause
	}
	return nil
}

func CauseOrSelf(err error) error {
	if traincfgError, ok := err.(*Error); ok {
		if traincfgError.Cause != nil {
			return traincfgError.Cause
		}
	}
	return err
}

func (err *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			io.WriteString(s, err.Message)
			err.stack.Format(s, verb)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, err.Message)
	case 'q':
		fmt.Fprintf(s, "%q", err.Message)
	}
}

func CastRecoverError(errInterface interface{}, strs ...string) error {
	var err error
	var ok bool
	err, ok = errInterface.(error)
	if !ok {
		err = &Error{
			Kind:    ErrNotTrainCfgError,
			Message: fmt.Sprint(errInterface),
		}
	}
	return Wrap(err, strs...)
}

func removeEmptyStrs(strs []string) []string {
	var cleanStrs []string
	for _, str := range strs {
		if str != "" {
			cleanStrs = append(cleanStrs, str)
		}
	}
	return cleanStrs
}
