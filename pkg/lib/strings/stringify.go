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
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

func Bool(val bool) string {
	return strconv.FormatBool(val)
}

func Int(val int) string {
	return strconv.Itoa(val)
}

func Int64(val int64) string {
	return strconv.FormatInt(val, 10)
}

// Float64 renders infinities with the same literal the config file format
// uses, so resolved values round-trip through describe/init output.
func Float64(val float64) string {
	if math.IsInf(val, 1) {
		return "inf"
	}
	if math.IsInf(val, -1) {
		return "-inf"
	}
	return strconv.FormatFloat(val, 'g', -1, 64)
}

func YesNo(val bool) string {
	if val {
		return "yes"
	}
	return "no"
}

// UserStr is how values are quoted in user-facing error messages: strings
// in double quotes, everything else in its literal form.
func UserStr(val interface{}) string {
	switch casted := val.(type) {
	case string:
		return fmt.Sprintf("%q", casted)
	case bool:
		return Bool(casted)
	case int:
		return Int(casted)
	case int64:
		return Int64(casted)
	case float64:
		return Float64(casted)
	case fmt.Stringer:
		return fmt.Sprintf("%q", casted.String())
	}
	return ObjFlatNoQuotes(val)
}

func UserStrs(vals interface{}) []string {
	v := reflect.ValueOf(vals)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return []string{UserStr(vals)}
	}
	strs := make([]string, v.Len())
	for i := 0; i < v.Len(); i++ {
		strs[i] = UserStr(v.Index(i).Interface())
	}
	return strs
}

// ObjFlatNoQuotes renders a value on a single line without quoting strings
// (used for table output).
func ObjFlatNoQuotes(val interface{}) string {
	if val == nil {
		return "<null>"
	}
	switch casted := val.(type) {
	case string:
		return casted
	case bool:
		return Bool(casted)
	case int:
		return Int(casted)
	case int64:
		return Int64(casted)
	case float64:
		return Float64(casted)
	case fmt.Stringer:
		return casted.String()
	case error:
		return casted.Error()
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return "<null>"
		}
		return ObjFlatNoQuotes(v.Elem().Interface())
	case reflect.Slice, reflect.Array:
		items := make([]string, v.Len())
		for i := 0; i < v.Len(); i++ {
			items[i] = ObjFlatNoQuotes(v.Index(i).Interface())
		}
		return "[" + strings.Join(items, ", ") + "]"
	}

	return fmt.Sprintf("%v", val)
}

func StrsSentence(strs []string, lastJoinWord string) string {
	switch len(strs) {
	case 0:
		return ""
	case 1:
		return strs[0]
	case 2:
		return fmt.Sprintf("%s %s %s", strs[0], lastJoinWord, strs[1])
	default:
		lastIdx := len(strs) - 1
		return fmt.Sprintf("%s, %s %s", strings.Join(strs[:lastIdx], ", "), lastJoinWord, strs[lastIdx])
	}
}

func StrsOr(strs []string) string {
	return StrsSentence(strs, "or")
}

func StrsAnd(strs []string) string {
	return StrsSentence(strs, "and")
}

func UserStrsOr(vals interface{}) string {
	return StrsOr(UserStrs(vals))
}

func UserStrsAnd(vals interface{}) string {
	return StrsAnd(UserStrs(vals))
}

func Index(index int) string {
	return fmt.Sprintf("index %d", index)
}
