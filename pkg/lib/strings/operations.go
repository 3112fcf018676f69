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

package strings

import (
	"strings"
)

func EnsureSuffix(str string, suffix string) string {
	if !strings.HasSuffix(str, suffix) {
		return str + suffix
	}
	return str
}

func EnsureSingleTrailingNewLine(str string) string {
	return strings.TrimRight(str, "\n") + "\n"
}

func MaskString(str string, numPlain int) string {
	if numPlain > len(str)/2 {
		numPlain = len(str) / 2
	}
	return strings.Repeat("*", len(str)-numPlain) + str[len(str)-numPlain:]
}

func RemoveDuplicateSpaces(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

func TrimPrefixAndWhitespace(str string, prefix string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(str), prefix))
}
