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
	"os"
	"strings"
)

func Message(err error, strs ...string) string {
	wrappedErr := Wrap(err, strs...)
	return strings.TrimSpace(wrappedErr.Error())
}

func MessageFirstLine(err error, strs ...string) string {
	message := Message(err, strs...)
	return strings.Split(message, "\n")[0]
}

func PrintError(err error, strs ...string) {
	fmt.Fprintln(os.Stderr, "error:", Message(err, strs...))
}

// PrintErrorForUser also prints the stack trace when debug printing is enabled
func PrintErrorForUser(err error, strs ...string) {
	PrintError(err, strs...)
	if PrintStacktraceEnabled() {
		PrintStacktrace(err)
	}
}

func PrintStacktrace(err error) {
	fmt.Fprintf(os.Stderr, "%+v\n", err)
}

func PrintStacktraceEnabled() bool {
	return strings.ToLower(os.Getenv("TRAINCFG_DEBUG")) == "true"
}
